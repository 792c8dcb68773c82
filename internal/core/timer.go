package core

import "time"

// DefaultTPS is the generation rate used when none is configured.
const DefaultTPS = 30

// FixedStep paces simulation steps at a steady steps-per-second rate. At most
// one step is reported per call; time owed beyond one period is dropped so a
// slow frame never turns into a burst of catch-up steps.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.Reset()
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = DefaultTPS
	}
	f.step = time.Second / time.Duration(tps)
}

// Period returns the duration between two steps.
func (f *FixedStep) Period() time.Duration { return f.step }

// Reset forgets elapsed time so the next check fires immediately. Used when
// a paused simulation starts again.
func (f *FixedStep) Reset() {
	f.last = time.Time{}
	f.accumulator = f.step
}

// ShouldStepAt reports whether the simulation should advance by one tick at
// the given clock reading.
func (f *FixedStep) ShouldStepAt(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	if delta < 0 {
		delta = 0
	}
	f.last = now
	f.accumulator += delta
	if f.accumulator < f.step {
		return false
	}
	f.accumulator = (f.accumulator - f.step) % f.step
	return true
}
