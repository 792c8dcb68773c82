// Package headless advances an engine without a window and reports on the
// run.
package headless

import (
	"fmt"
	"image/png"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"lifegrid/internal/engine"
	"lifegrid/internal/render"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// Result records one headless run.
type Result struct {
	Label       string
	Generations int
	Workers     int
	Initial     int
	Final       int
	Peak        int
	PeakGen     int
	Chunks      int
	Elapsed     time.Duration
	// Populations holds the population before the first step and after each
	// step, so it has Generations+1 entries.
	Populations []float64
}

// Run steps eng gens times, recording the population after each step.
func Run(eng *engine.Engine, label string, gens int) Result {
	initial := eng.Store().Population()
	res := Result{
		Label:       label,
		Generations: gens,
		Workers:     eng.Workers(),
		Initial:     initial,
		Peak:        initial,
		Populations: make([]float64, 0, gens+1),
	}
	res.Populations = append(res.Populations, float64(initial))

	start := time.Now()
	for i := 0; i < gens; i++ {
		eng.StepOnce()
		pop := eng.Population()
		res.Populations = append(res.Populations, float64(pop))
		if pop > res.Peak {
			res.Peak, res.PeakGen = pop, eng.Generation()
		}
	}
	res.Elapsed = time.Since(start)
	res.Final = eng.Store().Population()
	res.Chunks = eng.Store().Len()
	return res
}

// Summary formats the result as a styled table with a population plot.
func Summary(res Result) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("lifegrid: " + res.Label))
	b.WriteString("\n")

	rate := "n/a"
	if res.Elapsed > 0 && res.Generations > 0 {
		rate = fmt.Sprintf("%.0f gen/s", float64(res.Generations)/res.Elapsed.Seconds())
	}
	rows := [][2]string{
		{"generations", fmt.Sprint(res.Generations)},
		{"workers", fmt.Sprint(res.Workers)},
		{"initial pop", fmt.Sprint(res.Initial)},
		{"final pop", fmt.Sprint(res.Final)},
		{"peak pop", fmt.Sprintf("%d (gen %d)", res.Peak, res.PeakGen)},
		{"live chunks", fmt.Sprint(res.Chunks)},
		{"elapsed", res.Elapsed.Round(time.Millisecond).String()},
		{"speed", rate},
	}
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = labelStyle.Render(r[0]) + valueStyle.Render(r[1])
	}
	b.WriteString(boxStyle.Render(strings.Join(lines, "\n")))

	if len(res.Populations) > 1 {
		chart := asciigraph.Plot(res.Populations,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption("population"))
		b.WriteString("\n")
		b.WriteString(graphStyle.Render(chart))
	}
	b.WriteString("\n")
	return b.String()
}

// Snapshot renders the engine's current view onto a width x height raster.
func Snapshot(eng *engine.Engine, r *render.Renderer, width, height int) *render.Raster {
	raster := render.NewRaster(width, height)
	r.Draw(raster, eng.Viewport(), eng.Store(), float64(width), float64(height))
	return raster
}

// WritePNG encodes a raster to path.
func WritePNG(path string, raster *render.Raster) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, raster.Image()); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
