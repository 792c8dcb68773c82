// Package config loads engine and front-end settings from YAML and flags.
package config

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"lifegrid/internal/core"
	"lifegrid/internal/engine"
	"lifegrid/internal/pattern"
	"lifegrid/internal/render"
	"lifegrid/internal/tool"
	"lifegrid/internal/viewport"
)

// Config holds all settings shared by the front ends.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	View       ViewConfig       `yaml:"view"`
	Brush      BrushConfig      `yaml:"brush"`
	Theme      ThemeConfig      `yaml:"theme"`
	Window     WindowConfig     `yaml:"window"`
	Soup       SoupConfig       `yaml:"soup"`
}

// SimulationConfig controls stepping.
type SimulationConfig struct {
	Speed   int `yaml:"speed"`   // generations per second
	Workers int `yaml:"workers"` // goroutines evaluating chunks
}

// ViewConfig controls the viewport and grid lines.
type ViewConfig struct {
	CellSize float64 `yaml:"cell_size"` // pixels per cell at zoom 1
	MinZoom  float64 `yaml:"min_zoom"`
	MaxZoom  float64 `yaml:"max_zoom"`
	Zoom     float64 `yaml:"zoom"`
	HideGrid bool    `yaml:"hide_grid"`
}

// BrushConfig is the initial tool selection.
type BrushConfig struct {
	Tool    string `yaml:"tool"`
	Size    int    `yaml:"size"`
	Shape   string `yaml:"shape"`
	Pattern string `yaml:"pattern"`
}

// ThemeConfig holds hex colours.
type ThemeConfig struct {
	Background string `yaml:"background"`
	Grid       string `yaml:"grid"`
	Cell       string `yaml:"cell"`
}

// WindowConfig sizes the GUI window.
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SoupConfig describes an optional random fill around the origin at start.
type SoupConfig struct {
	Seed    int64   `yaml:"seed"`
	Density float64 `yaml:"density"`
	Radius  int     `yaml:"radius"`
}

// Default returns the configuration used when no file or flag overrides it.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads configuration from a YAML file. Missing fields keep defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Simulation.Speed == 0 {
		c.Simulation.Speed = core.DefaultTPS
	}
	if c.Simulation.Workers == 0 {
		c.Simulation.Workers = runtime.NumCPU()
	}
	if c.View.CellSize == 0 {
		c.View.CellSize = viewport.DefaultBaseCellSize
	}
	if c.View.MinZoom == 0 {
		c.View.MinZoom = viewport.DefaultMinZoom
	}
	if c.View.MaxZoom == 0 {
		c.View.MaxZoom = viewport.DefaultMaxZoom
	}
	if c.View.Zoom == 0 {
		c.View.Zoom = 1
	}
	if c.Brush.Tool == "" {
		c.Brush.Tool = string(tool.Move)
	}
	if c.Brush.Size == 0 {
		c.Brush.Size = 1
	}
	if c.Brush.Shape == "" {
		c.Brush.Shape = string(tool.Circle)
	}
	if c.Brush.Pattern == "" {
		c.Brush.Pattern = pattern.None
	}
	if c.Theme.Background == "" {
		c.Theme.Background = render.DefaultBackground
	}
	if c.Theme.Grid == "" {
		c.Theme.Grid = render.DefaultGrid
	}
	if c.Theme.Cell == "" {
		c.Theme.Cell = render.DefaultCell
	}
	if c.Window.Width == 0 {
		c.Window.Width = 1280
	}
	if c.Window.Height == 0 {
		c.Window.Height = 800
	}
	if c.Soup.Radius == 0 {
		c.Soup.Radius = 40
	}
}

// Validate rejects settings the engine cannot honour.
func (c *Config) Validate() error {
	if c.Simulation.Speed < 0 {
		return fmt.Errorf("simulation.speed must be positive, got %d", c.Simulation.Speed)
	}
	if c.View.MinZoom > c.View.MaxZoom {
		return fmt.Errorf("view.min_zoom %.2f exceeds view.max_zoom %.2f", c.View.MinZoom, c.View.MaxZoom)
	}
	if _, ok := tool.ParseKind(c.Brush.Tool); !ok {
		return fmt.Errorf("unknown brush.tool %q", c.Brush.Tool)
	}
	if _, ok := tool.ParseShape(c.Brush.Shape); !ok {
		return fmt.Errorf("unknown brush.shape %q", c.Brush.Shape)
	}
	if c.Soup.Density < 0 || c.Soup.Density > 1 {
		return fmt.Errorf("soup.density must be within [0,1], got %.2f", c.Soup.Density)
	}
	if _, err := c.RenderTheme(); err != nil {
		return err
	}
	return nil
}

// RenderTheme parses the theme colours.
func (c *Config) RenderTheme() (render.Theme, error) {
	t, err := render.ParseTheme(c.Theme.Background, c.Theme.Grid, c.Theme.Cell)
	if err != nil {
		return render.Theme{}, fmt.Errorf("theme: %w", err)
	}
	return t, nil
}

// ToolConfig converts the brush section into the tool controller's config.
func (c *Config) ToolConfig() tool.Config {
	return tool.Config{
		Tool:      tool.Kind(c.Brush.Tool),
		BrushSize: c.Brush.Size,
		Shape:     tool.Shape(c.Brush.Shape),
		Pattern:   c.Brush.Pattern,
	}
}

// Engine converts the configuration into engine settings.
func (c *Config) Engine() engine.Config {
	return engine.Config{
		Speed:    c.Simulation.Speed,
		Workers:  c.Simulation.Workers,
		CellSize: c.View.CellSize,
		MinZoom:  c.View.MinZoom,
		MaxZoom:  c.View.MaxZoom,
		Zoom:     c.View.Zoom,
		Tools:    c.ToolConfig(),
	}
}

// Renderer builds a renderer with the configured theme and grid setting.
func (c *Config) Renderer() (*render.Renderer, error) {
	theme, err := c.RenderTheme()
	if err != nil {
		return nil, err
	}
	return &render.Renderer{Theme: theme, ShowGrid: !c.View.HideGrid}, nil
}

// SoupRect is the square the start-up soup is scattered over.
func (c *Config) SoupRect() core.Rect {
	return core.RectAround(core.Point{}, c.Soup.Radius)
}

// Bind attaches the configuration to the provided FlagSet. Flags override
// values loaded from a file when parsed afterwards.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Simulation.Speed, "speed", c.Simulation.Speed, "generations per second")
	fs.IntVar(&c.Simulation.Workers, "workers", c.Simulation.Workers, "goroutines evaluating chunks")
	fs.Float64Var(&c.View.CellSize, "cell", c.View.CellSize, "pixels per cell at zoom 1")
	fs.Float64Var(&c.View.Zoom, "zoom", c.View.Zoom, "initial zoom")
	fs.BoolVar(&c.View.HideGrid, "nogrid", c.View.HideGrid, "hide grid lines")
	fs.StringVar(&c.Brush.Tool, "tool", c.Brush.Tool, "initial tool: move, brush or eraser")
	fs.IntVar(&c.Brush.Size, "brush", c.Brush.Size, "brush radius in cells")
	fs.StringVar(&c.Brush.Shape, "shape", c.Brush.Shape, "brush shape: circle or square")
	fs.StringVar(&c.Brush.Pattern, "pattern", c.Brush.Pattern, "stamp pattern or none")
	fs.StringVar(&c.Theme.Cell, "cell-color", c.Theme.Cell, "live cell colour")
	fs.IntVar(&c.Window.Width, "width", c.Window.Width, "window width")
	fs.IntVar(&c.Window.Height, "height", c.Window.Height, "window height")
	fs.Int64Var(&c.Soup.Seed, "seed", c.Soup.Seed, "seed for the random soup")
	fs.Float64Var(&c.Soup.Density, "density", c.Soup.Density, "random soup density, 0 disables")
	fs.IntVar(&c.Soup.Radius, "radius", c.Soup.Radius, "random soup radius in cells")
}

// Parse builds a configuration from command-line arguments. A -config flag
// names a YAML file whose values the remaining flags override. Callers may
// register their own flags on fs before calling Parse.
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	path := configPath(args)
	cfg := Default()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	fs.String("config", path, "YAML configuration file")
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// configPath finds the value of -config among args without parsing the rest.
func configPath(args []string) string {
	for i := 0; i < len(args); i++ {
		if args[i] == "--" {
			return ""
		}
		a := strings.TrimPrefix(strings.TrimPrefix(args[i], "-"), "-")
		if a == "config" && i+1 < len(args) {
			return args[i+1]
		}
		if v, ok := strings.CutPrefix(a, "config="); ok {
			return v
		}
	}
	return ""
}
