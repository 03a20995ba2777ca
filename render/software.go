// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/vgbuf"
	"github.com/gogpu/vgbuf/internal/logger"
)

// SoftwareDriver is a CPU reference Driver.
//
// It implements clears for the packed 32, 24 and 16-bit formats plus A8 and
// L8, and blits between buffers of the same format under an identity or
// whole-pixel translation with every blend mode. Path rasterization belongs
// to the accelerator; Draw and DrawPattern return ErrNotSupported.
//
// Operations are synchronous, so Flush and Finish only report the number of
// operations executed since the last call.
type SoftwareDriver struct {
	scissor *Rect
	ops     int
}

// NewSoftwareDriver creates a software driver with no scissor set.
func NewSoftwareDriver() *SoftwareDriver {
	return &SoftwareDriver{}
}

// Clear fills rect ∩ target ∩ scissor with color.
func (d *SoftwareDriver) Clear(target *vgbuf.Buffer, rect *Rect, color Color) error {
	if err := checkBuffer(target); err != nil {
		return err
	}
	px, ok := encodeColor(target.Format, color)
	if !ok {
		return fmt.Errorf("render: clear %s: %w", target.Format, ErrNotSupported)
	}
	area := d.clip(target, rect)
	bpp := len(px)
	for y := area.Y; y < area.Y+area.Height; y++ {
		row := target.Row(y)
		for x := area.X; x < area.X+area.Width; x++ {
			copy(row[x*bpp:], px)
		}
	}
	d.ops++
	return nil
}

// Blit composites the whole of source onto target at the translation
// given by m.
func (d *SoftwareDriver) Blit(target, source *vgbuf.Buffer, m *Matrix, mode Blend, color Color, filter Filter) error {
	if err := checkBuffer(source); err != nil {
		return err
	}
	return d.BlitRect(target, source, nil, m, mode, color, filter)
}

// BlitRect composites the rect region of source onto target. Only
// same-format blits under an identity or whole-pixel translation are
// supported. BlendNone copies raw pixels of any addressable format; the
// other modes need 8-bit channels. The filter is irrelevant without
// scaling and the paint color is ignored.
func (d *SoftwareDriver) BlitRect(target, source *vgbuf.Buffer, rect *Rect, m *Matrix, mode Blend, color Color, filter Filter) error {
	if err := checkBuffer(target); err != nil {
		return err
	}
	if err := checkBuffer(source); err != nil {
		return err
	}
	if target.Format != source.Format {
		return fmt.Errorf("render: blit %s to %s: %w", source.Format, target.Format, ErrNotSupported)
	}
	bpp := bytesPerPixel(source.Format)
	if bpp == 0 {
		return fmt.Errorf("render: blit %s: %w", source.Format, ErrNotSupported)
	}
	ch, ok := channelLayout(source.Format)
	if mode != BlendNone && (!ok || !mode.valid()) {
		return fmt.Errorf("render: blit %s with %s: %w", source.Format, mode, ErrNotSupported)
	}
	dx, dy := 0, 0
	if m != nil {
		if dx, dy, ok = m.IntegerTranslation(); !ok {
			return fmt.Errorf("render: blit with non-translation matrix: %w", ErrNotSupported)
		}
	}

	src := Rect{Width: source.Width, Height: source.Height}
	if rect != nil {
		src = src.Intersect(*rect)
	}
	dst := d.clip(target, &Rect{X: src.X + dx, Y: src.Y + dy, Width: src.Width, Height: src.Height})

	for y := dst.Y; y < dst.Y+dst.Height; y++ {
		drow := target.Row(y)[dst.X*bpp : (dst.X+dst.Width)*bpp]
		sx := dst.X - dx
		srow := source.Row(y - dy)[sx*bpp : (sx+dst.Width)*bpp]
		if mode == BlendNone {
			copy(drow, srow)
			continue
		}
		for i := 0; i < len(srow); i += bpp {
			ch.store(drow[i:], mode.apply(ch.load(srow[i:]), ch.load(drow[i:])))
		}
	}
	d.ops++
	return nil
}

// Draw reports ErrNotSupported.
func (d *SoftwareDriver) Draw(target *vgbuf.Buffer, path *Path, rule FillRule, m *Matrix, blend Blend, color Color) error {
	if err := checkBuffer(target); err != nil {
		return err
	}
	return fmt.Errorf("render: draw: %w", ErrNotSupported)
}

// DrawPattern reports ErrNotSupported.
func (d *SoftwareDriver) DrawPattern(target *vgbuf.Buffer, path *Path, rule FillRule, pathMatrix *Matrix,
	pattern *vgbuf.Buffer, patternMatrix *Matrix, blend Blend, mode PatternMode,
	patternColor Color, color Color, filter Filter) error {
	if err := checkBuffer(target); err != nil {
		return err
	}
	if err := checkBuffer(pattern); err != nil {
		return err
	}
	return fmt.Errorf("render: draw pattern: %w", ErrNotSupported)
}

// SetScissor restricts subsequent operations. A rectangle covering no
// pixels is accepted and suppresses all output.
func (d *SoftwareDriver) SetScissor(x, y, right, bottom int) error {
	if right < x || bottom < y {
		return fmt.Errorf("render: scissor (%d,%d)-(%d,%d): %w", x, y, right, bottom, ErrInvalidTarget)
	}
	d.scissor = &Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
	return nil
}

// QueryFeature reports FeatureScissor only.
func (d *SoftwareDriver) QueryFeature(f Feature) bool {
	return f == FeatureScissor
}

// Flush is a no-op; operations are synchronous.
func (d *SoftwareDriver) Flush() error {
	return nil
}

// Finish completes the current batch.
func (d *SoftwareDriver) Finish() error {
	if d.ops > 0 {
		logger.Get().Debug("software driver finished", "ops", d.ops)
	}
	d.ops = 0
	return nil
}

func (d *SoftwareDriver) clip(target *vgbuf.Buffer, rect *Rect) Rect {
	area := Rect{Width: target.Width, Height: target.Height}
	if rect != nil {
		area = area.Intersect(*rect)
	}
	if d.scissor != nil {
		area = area.Intersect(*d.scissor)
	}
	return area
}

// Ensure SoftwareDriver implements Driver.
var _ Driver = (*SoftwareDriver)(nil)
