// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/vgbuf"
	"github.com/gogpu/vgbuf/internal/errs"
)

var (
	// ErrNotSupported is returned for operations a driver cannot perform.
	ErrNotSupported = errors.New("render: operation not supported")

	// ErrInvalidTarget is returned when a target or source buffer is nil
	// or not allocated.
	ErrInvalidTarget = fmt.Errorf("render: buffer not allocated: %w", errs.InvalidArgument)
)

// Feature is an optional accelerator capability.
type Feature uint32

const (
	// FeatureScissor is rectangular clipping via Driver.SetScissor.
	FeatureScissor Feature = 1 << iota

	// FeatureYUV is sampling from YUV source buffers.
	FeatureYUV

	// FeaturePattern is pattern fills via Driver.DrawPattern.
	FeaturePattern

	// FeatureCompressed is sampling from block-compressed source buffers.
	FeatureCompressed
)

// Driver issues operations against allocated buffers.
//
// Operations may be queued; a buffer must not be freed or read back until
// Finish returns. Matrices and rectangles may be nil, meaning identity and
// the whole target respectively.
//
// Thread Safety: Drivers are NOT thread-safe.
type Driver interface {
	// Clear fills rect of target with color.
	Clear(target *vgbuf.Buffer, rect *Rect, color Color) error

	// Blit composites source onto target through m.
	Blit(target, source *vgbuf.Buffer, m *Matrix, blend Blend, color Color, filter Filter) error

	// BlitRect composites the rect region of source onto target through m.
	BlitRect(target, source *vgbuf.Buffer, rect *Rect, m *Matrix, blend Blend, color Color, filter Filter) error

	// Draw fills path into target.
	Draw(target *vgbuf.Buffer, path *Path, rule FillRule, m *Matrix, blend Blend, color Color) error

	// DrawPattern fills path into target with pattern as paint.
	DrawPattern(target *vgbuf.Buffer, path *Path, rule FillRule, pathMatrix *Matrix,
		pattern *vgbuf.Buffer, patternMatrix *Matrix, blend Blend, mode PatternMode,
		patternColor Color, color Color, filter Filter) error

	// SetScissor restricts subsequent operations to the half-open
	// rectangle [x, right) x [y, bottom).
	SetScissor(x, y, right, bottom int) error

	// QueryFeature reports whether the driver supports f.
	QueryFeature(f Feature) bool

	// Flush submits queued operations without waiting.
	Flush() error

	// Finish submits queued operations and waits for them to complete.
	Finish() error
}

func checkBuffer(b *vgbuf.Buffer) error {
	if b == nil || !b.Allocated() {
		return ErrInvalidTarget
	}
	return nil
}
