// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"encoding/binary"
	"math"
)

// Color is a packed 32-bit color in AABBGGRR order: red occupies the low
// byte and alpha the high byte.
type Color uint32

// RGBA returns a Color from 8-bit channels.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r))
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c >> 16) }

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// Rect is an integer rectangle in pixels.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersect returns the intersection of r and o.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.X+r.Width, o.X+o.Width)
	y1 := min(r.Y+r.Height, o.Y+o.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Matrix is a 3x3 row-major transform applied to column vectors.
type Matrix struct {
	M [3][3]float32
}

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{M: [3][3]float32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// Multiply returns m * o.
func (m Matrix) Multiply(o Matrix) Matrix {
	var r Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var s float32
			for k := 0; k < 3; k++ {
				s += m.M[i][k] * o.M[k][j]
			}
			r.M[i][j] = s
		}
	}
	return r
}

// Translate post-multiplies m by a translation.
func (m Matrix) Translate(tx, ty float32) Matrix {
	t := Identity()
	t.M[0][2] = tx
	t.M[1][2] = ty
	return m.Multiply(t)
}

// Scale post-multiplies m by a scale.
func (m Matrix) Scale(sx, sy float32) Matrix {
	s := Identity()
	s.M[0][0] = sx
	s.M[1][1] = sy
	return m.Multiply(s)
}

// IntegerTranslation reports whether m is a pure translation by whole
// pixels and returns the offsets.
func (m Matrix) IntegerTranslation() (dx, dy int, ok bool) {
	t := m
	t.M[0][2], t.M[1][2] = 0, 0
	if !t.IsIdentity() {
		return 0, 0, false
	}
	tx, ty := float64(m.M[0][2]), float64(m.M[1][2])
	if tx != math.Trunc(tx) || ty != math.Trunc(ty) {
		return 0, 0, false
	}
	return int(tx), int(ty), true
}

// PathFormat is the coordinate encoding of path data.
type PathFormat uint8

const (
	PathFormatS8 PathFormat = iota
	PathFormatS16
	PathFormatS32
	PathFormatFP32
)

// PathQuality is the anti-aliasing level requested for a path.
type PathQuality uint8

const (
	QualityHigh PathQuality = iota
	QualityMedium
	QualityLow
)

// Path opcodes.
const (
	OpEnd   = 0x00
	OpClose = 0x01
	OpMove  = 0x02
	OpLine  = 0x04
)

// Path is opaque vector path data handed to the accelerator as-is.
type Path struct {
	Format      PathFormat
	Quality     PathQuality
	Data        []byte
	BoundingBox [4]float32
}

// TrianglePath returns the S16 triangle used when no path is configured.
func TrianglePath() *Path {
	words := []int16{
		OpMove, 0, 0,
		OpLine, 100, 100,
		OpLine, 0, 100,
		OpClose,
		OpEnd,
	}
	data := make([]byte, 0, len(words)*2)
	for _, w := range words {
		data = binary.LittleEndian.AppendUint16(data, uint16(w))
	}
	return &Path{
		Format:      PathFormatS16,
		Quality:     QualityHigh,
		Data:        data,
		BoundingBox: [4]float32{0, 0, 100, 100},
	}
}
