// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/vgbuf/format"
	"github.com/gogpu/vgbuf/internal/blend"
)

// bytesPerPixel returns the storage size of one pixel for the formats the
// software driver can address directly, or 0.
func bytesPerPixel(f format.PixelFormat) int {
	p := f.Params()
	if p.Divisor != 1 || f.Family() == format.FamilyYUV || f.IsCompressed() {
		return 0
	}
	if _, ok := encodeColor(f, 0); !ok {
		return 0
	}
	return p.Multiplier
}

// channels gives the byte index of each 8-bit channel within a pixel. A
// negative index marks an absent channel: absent alpha reads as opaque and
// absent color reads as zero.
type channels struct {
	r, g, b, a int8
}

var channelLayouts = map[format.PixelFormat]channels{
	format.RGBA8888: {0, 1, 2, 3},
	format.RGBX8888: {0, 1, 2, -1},
	format.BGRA8888: {2, 1, 0, 3},
	format.BGRX8888: {2, 1, 0, -1},
	format.ARGB8888: {1, 2, 3, 0},
	format.XRGB8888: {1, 2, 3, -1},
	format.ABGR8888: {3, 2, 1, 0},
	format.XBGR8888: {3, 2, 1, -1},
	format.RGB888:   {0, 1, 2, -1},
	format.BGR888:   {2, 1, 0, -1},
	format.A8:       {-1, -1, -1, 0},
	format.L8:       {0, 0, 0, -1},
}

func channelLayout(f format.PixelFormat) (channels, bool) {
	switch f {
	case format.SRGBA8888, format.LRGBA8888:
		f = format.RGBA8888
	case format.SBGRA8888, format.LBGRA8888:
		f = format.BGRA8888
	case format.SARGB8888, format.LARGB8888:
		f = format.ARGB8888
	case format.SABGR8888, format.LABGR8888:
		f = format.ABGR8888
	case format.VGA8:
		f = format.A8
	case format.SL8, format.LL8:
		f = format.L8
	}
	c, ok := channelLayouts[f]
	return c, ok
}

func at(p []byte, i int8, absent uint8) uint8 {
	if i < 0 {
		return absent
	}
	return p[i]
}

// load reads one straight-alpha pixel and premultiplies it.
func (c channels) load(p []byte) blend.Pixel {
	return blend.Premultiply(at(p, c.r, 0), at(p, c.g, 0), at(p, c.b, 0), at(p, c.a, 0xFF))
}

// store writes px back in straight alpha. Formats without an alpha channel
// store the color composited over black.
func (c channels) store(p []byte, px blend.Pixel) {
	r, g, b, a := px.Straight()
	if c.a < 0 {
		r, g, b = px.R, px.G, px.B
	}
	for _, ch := range [...]struct {
		i int8
		v uint8
	}{{c.r, r}, {c.g, g}, {c.b, b}, {c.a, a}} {
		if ch.i >= 0 {
			p[ch.i] = ch.v
		}
	}
}

// encodeColor converts c to the byte sequence of one pixel in f.
func encodeColor(f format.PixelFormat, c Color) ([]byte, bool) {
	r, g, b, a := c.R(), c.G(), c.B(), c.A()
	switch f {
	case format.RGBA8888, format.SRGBA8888, format.LRGBA8888:
		return []byte{r, g, b, a}, true
	case format.RGBX8888, format.SRGBX8888, format.LRGBX8888:
		return []byte{r, g, b, 0xFF}, true
	case format.BGRA8888, format.SBGRA8888, format.LBGRA8888:
		return []byte{b, g, r, a}, true
	case format.BGRX8888, format.SBGRX8888, format.LBGRX8888:
		return []byte{b, g, r, 0xFF}, true
	case format.ARGB8888, format.SARGB8888, format.LARGB8888:
		return []byte{a, r, g, b}, true
	case format.XRGB8888, format.SXRGB8888, format.LXRGB8888:
		return []byte{0xFF, r, g, b}, true
	case format.ABGR8888, format.SABGR8888, format.LABGR8888:
		return []byte{a, b, g, r}, true
	case format.XBGR8888, format.SXBGR8888, format.LXBGR8888:
		return []byte{0xFF, b, g, r}, true
	case format.RGB888:
		return []byte{r, g, b}, true
	case format.BGR888:
		return []byte{b, g, r}, true
	case format.RGB565, format.SRGB565:
		v := uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
		return []byte{byte(v), byte(v >> 8)}, true
	case format.BGR565, format.SBGR565:
		v := uint16(b>>3)<<11 | uint16(g>>2)<<5 | uint16(r>>3)
		return []byte{byte(v), byte(v >> 8)}, true
	case format.A8, format.VGA8:
		return []byte{a}, true
	case format.L8, format.SL8, format.LL8:
		return []byte{luminance(r, g, b)}, true
	}
	return nil, false
}

// luminance uses BT.601 weights in 8.8 fixed point.
func luminance(r, g, b uint8) uint8 {
	return uint8((77*uint32(r) + 150*uint32(g) + 29*uint32(b)) >> 8)
}

func (b Blend) valid() bool {
	return int(b) < blend.Count
}

// apply blends s onto d with the equation of b.
func (b Blend) apply(s, d blend.Pixel) blend.Pixel {
	return blend.Apply(blend.Mode(b), s, d)
}
