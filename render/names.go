// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/vgbuf/internal/errs"
	"github.com/gogpu/vgbuf/internal/logger"
)

// ErrUnknownName is returned by the Lookup functions for a name that is not
// a driver parameter. It is a configuration error and wraps
// errs.InvalidArgument.
var ErrUnknownName = fmt.Errorf("render: unknown parameter name: %w", errs.InvalidArgument)

// Blend is the compositing mode of a blit or draw.
type Blend uint8

const (
	BlendNone Blend = iota
	BlendSrcOver
	BlendDstOver
	BlendSrcIn
	BlendDstIn
	BlendMultiply
	BlendScreen
	BlendDarken
	BlendLighten
	BlendAdditive
	BlendSubtract
	BlendSubtractLVGL
	BlendNormalLVGL
	BlendAdditiveLVGL
	BlendMultiplyLVGL
	BlendPremultiplySrcOver
)

// FillRule selects how path interiors are determined.
type FillRule uint8

const (
	FillEvenOdd FillRule = iota
	FillNonZero
)

// Filter is the sampling filter for blits.
type Filter uint8

const (
	FilterPoint Filter = iota
	FilterLinear
	FilterBiLinear
	FilterGaussian
)

// PatternMode is the behavior of pattern fills outside the pattern image.
type PatternMode uint8

const (
	PatternColor PatternMode = iota
	PatternPad
	PatternRepeat
	PatternReflect
)

var blendNames = []string{
	"VG_LITE_BLEND_NONE",
	"VG_LITE_BLEND_SRC_OVER",
	"VG_LITE_BLEND_DST_OVER",
	"VG_LITE_BLEND_SRC_IN",
	"VG_LITE_BLEND_DST_IN",
	"VG_LITE_BLEND_MULTIPLY",
	"VG_LITE_BLEND_SCREEN",
	"VG_LITE_BLEND_DARKEN",
	"VG_LITE_BLEND_LIGHTEN",
	"VG_LITE_BLEND_ADDITIVE",
	"VG_LITE_BLEND_SUBTRACT",
	"VG_LITE_BLEND_SUBTRACT_LVGL",
	"VG_LITE_BLEND_NORMAL_LVGL",
	"VG_LITE_BLEND_ADDITIVE_LVGL",
	"VG_LITE_BLEND_MULTIPLY_LVGL",
	"VG_LITE_BLEND_PREMULTIPLY_SRC_OVER",
}

var fillRuleNames = []string{
	"VG_LITE_FILL_EVEN_ODD",
	"VG_LITE_FILL_NON_ZERO",
}

var filterNames = []string{
	"VG_LITE_FILTER_POINT",
	"VG_LITE_FILTER_LINEAR",
	"VG_LITE_FILTER_BI_LINEAR",
	"VG_LITE_FILTER_GAUSSIAN",
}

var patternModeNames = []string{
	"VG_LITE_PATTERN_COLOR",
	"VG_LITE_PATTERN_PAD",
	"VG_LITE_PATTERN_REPEAT",
	"VG_LITE_PATTERN_REFLECT",
}

func enumString[T ~uint8](names []string, v T, kind string) string {
	if int(v) < len(names) {
		return names[v]
	}
	return fmt.Sprintf("%s(%d)", kind, uint8(v))
}

func lookupEnum[T ~uint8](names []string, name, kind string) (T, error) {
	for i, n := range names {
		if n == name {
			return T(i), nil
		}
	}
	return 0, fmt.Errorf("render: %s %q: %w", kind, name, ErrUnknownName)
}

// parseEnum resolves name and falls back to the zero value with a warning.
func parseEnum[T ~uint8](names []string, name, kind string) T {
	v, err := lookupEnum[T](names, name, kind)
	if err != nil {
		logger.Get().Warn("unknown identifier, using default",
			"kind", kind, "name", name, "default", names[0])
	}
	return v
}

func (b Blend) String() string       { return enumString(blendNames, b, "Blend") }
func (f FillRule) String() string    { return enumString(fillRuleNames, f, "FillRule") }
func (f Filter) String() string      { return enumString(filterNames, f, "Filter") }
func (p PatternMode) String() string { return enumString(patternModeNames, p, "PatternMode") }

// LookupBlend resolves a blend name exactly.
func LookupBlend(name string) (Blend, error) { return lookupEnum[Blend](blendNames, name, "blend") }

// LookupFillRule resolves a fill rule name exactly.
func LookupFillRule(name string) (FillRule, error) {
	return lookupEnum[FillRule](fillRuleNames, name, "fill rule")
}

// LookupFilter resolves a filter name exactly.
func LookupFilter(name string) (Filter, error) {
	return lookupEnum[Filter](filterNames, name, "filter")
}

// LookupPatternMode resolves a pattern mode name exactly.
func LookupPatternMode(name string) (PatternMode, error) {
	return lookupEnum[PatternMode](patternModeNames, name, "pattern mode")
}

// ParseBlend resolves a blend name, returning BlendNone for unknown names.
func ParseBlend(name string) Blend { return parseEnum[Blend](blendNames, name, "blend") }

// ParseFillRule resolves a fill rule name, returning FillEvenOdd for
// unknown names.
func ParseFillRule(name string) FillRule {
	return parseEnum[FillRule](fillRuleNames, name, "fill rule")
}

// ParseFilter resolves a filter name, returning FilterPoint for unknown
// names.
func ParseFilter(name string) Filter { return parseEnum[Filter](filterNames, name, "filter") }

// ParsePatternMode resolves a pattern mode name, returning PatternColor for
// unknown names.
func ParsePatternMode(name string) PatternMode {
	return parseEnum[PatternMode](patternModeNames, name, "pattern mode")
}
