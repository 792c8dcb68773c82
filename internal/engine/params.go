package engine

import (
	"strconv"

	"lifegrid/internal/core"
)

// Parameters reports the values shown on the HUD.
func (e *Engine) Parameters() core.ParameterSnapshot {
	tools := e.tools.Config()
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "Simulation",
				Params: []core.Parameter{
					intParam("generation", "Generation", e.generation),
					intParam("population", "Population", e.population),
					intParam(core.ParamSpeed, "Speed", e.speed),
					boolParam(core.ParamRunning, "Running", e.running),
				},
			},
			{
				Name: "Brush",
				Params: []core.Parameter{
					stringParam("tool", "Tool", string(tools.Tool)),
					intParam(core.ParamBrushSize, "Brush size", tools.BrushSize),
					stringParam("shape", "Shape", string(tools.Shape)),
					stringParam("pattern", "Pattern", tools.Pattern),
				},
			},
			{
				Name: "View",
				Params: []core.Parameter{
					floatParam(core.ParamZoom, "Zoom", e.view.Zoom),
				},
			},
		},
	}
}

// ParameterControls lists the values the HUD may adjust.
func (e *Engine) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: core.ParamSpeed, Label: "Speed", Type: core.ParamTypeInt, Step: 5, Min: MinSpeed, Max: MaxSpeed},
		{Key: core.ParamBrushSize, Label: "Brush size", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 50},
		{Key: core.ParamZoom, Label: "Zoom", Type: core.ParamTypeFloat, Step: 0.1, Min: e.view.MinZoom, Max: e.view.MaxZoom},
	}
}

// SetIntParameter updates an integer control. It reports whether key is known.
func (e *Engine) SetIntParameter(key string, value int) bool {
	switch key {
	case core.ParamSpeed:
		e.SetSpeed(value)
	case core.ParamBrushSize:
		e.SetBrushSize(value)
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a float control. It reports whether key is known.
func (e *Engine) SetFloatParameter(key string, value float64) bool {
	if key != core.ParamZoom {
		return false
	}
	e.SetZoom(value)
	return true
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func floatParam(key, label string, v float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(v, 'f', 2, 64)}
}

func boolParam(key, label string, v bool) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: strconv.FormatBool(v)}
}

func stringParam(key, label, v string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Value: v}
}
