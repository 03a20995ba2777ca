package config

import (
	"fmt"
	"sort"

	"github.com/gogpu/vgbuf/format"
	"github.com/gogpu/vgbuf/render"
)

// Config is one buffer test run.
type Config struct {
	Output   string
	Function string

	Target BufferSpec
	Source BufferSpec

	Matrix        render.Matrix
	PatternMatrix render.Matrix
	Rect          render.Rect
	Path          render.Path

	Blend       render.Blend
	FillRule    render.FillRule
	Filter      render.Filter
	PatternMode render.PatternMode

	Color        render.Color
	PatternColor render.Color
	SourceColor  render.Color

	// Scissor is nil when no clip rectangle was requested.
	Scissor *Scissor
}

// Default returns the configuration used when no options are given.
func Default() Config {
	return Config{
		Output:        "target.png",
		Function:      "vg_lite_draw_custom",
		Target:        BufferSpec{Width: 480, Height: 480, Format: format.BGRA8888},
		Source:        BufferSpec{Width: 240, Height: 240, Format: format.BGRA8888},
		Matrix:        render.Identity(),
		PatternMatrix: render.Identity(),
		Rect:          render.Rect{Width: 480, Height: 480},
		Path:          *render.TrianglePath(),
		Blend:         render.BlendSrcOver,
		FillRule:      render.FillEvenOdd,
		Filter:        render.FilterBiLinear,
		PatternMode:   render.PatternColor,
		SourceColor:   0xFFFF0000,
	}
}

type setter func(c *Config, v string) error

var setters = map[string]setter{
	"output": func(c *Config, v string) error { c.Output = v; return nil },
	"func":   func(c *Config, v string) error { c.Function = v; return nil },
	"target": func(c *Config, v string) (err error) {
		c.Target, err = assign(c.Target, v, ParseBuffer)
		return err
	},
	"source": func(c *Config, v string) (err error) {
		c.Source, err = assign(c.Source, v, ParseBuffer)
		return err
	},
	"matrix": func(c *Config, v string) (err error) {
		c.Matrix, err = assign(c.Matrix, v, ParseMatrix)
		return err
	},
	"pattern-matrix": func(c *Config, v string) (err error) {
		c.PatternMatrix, err = assign(c.PatternMatrix, v, ParseMatrix)
		return err
	},
	"rect": func(c *Config, v string) (err error) {
		c.Rect, err = assign(c.Rect, v, ParseRect)
		return err
	},
	"path-bounding-box": func(c *Config, v string) (err error) {
		c.Path.BoundingBox, err = assign(c.Path.BoundingBox, v, ParseBoundingBox)
		return err
	},
	"blend":        func(c *Config, v string) error { c.Blend = render.ParseBlend(v); return nil },
	"fill-rule":    func(c *Config, v string) error { c.FillRule = render.ParseFillRule(v); return nil },
	"filter":       func(c *Config, v string) error { c.Filter = render.ParseFilter(v); return nil },
	"pattern-mode": func(c *Config, v string) error { c.PatternMode = render.ParsePatternMode(v); return nil },
	"color": func(c *Config, v string) (err error) {
		c.Color, err = assign(c.Color, v, ParseColor)
		return err
	},
	"pattern-color": func(c *Config, v string) (err error) {
		c.PatternColor, err = assign(c.PatternColor, v, ParseColor)
		return err
	},
	"source-color": func(c *Config, v string) (err error) {
		c.SourceColor, err = assign(c.SourceColor, v, ParseColor)
		return err
	},
	"scissor": func(c *Config, v string) error {
		s, err := ParseScissor(v)
		if err != nil {
			return err
		}
		c.Scissor = &s
		return nil
	},
}

// assign parses v and keeps old when parsing fails.
func assign[T any](old T, v string, parse func(string) (T, error)) (T, error) {
	n, err := parse(v)
	if err != nil {
		return old, err
	}
	return n, nil
}

// Set applies one option by its long name, e.g. Set("blend",
// "VG_LITE_BLEND_SCREEN"). On error c is unchanged.
func (c *Config) Set(option, value string) error {
	fn, ok := setters[option]
	if !ok {
		return fmt.Errorf("config: unknown option %q: %w", option, ErrInvalidArgument)
	}
	return fn(c, value)
}

// Options returns the option names accepted by Set.
func Options() []string {
	names := make([]string, 0, len(setters))
	for n := range setters {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
