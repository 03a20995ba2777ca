// Package blend implements the accelerator's blend equations on 8-bit
// premultiplied RGBA.
//
// Each equation is applied to every channel, alpha included, with Sa and
// Da being the source and destination alpha:
//
//	None                S
//	SrcOver             S + D*(1-Sa)
//	DstOver             S*(1-Da) + D
//	SrcIn               S*Da
//	DstIn               D*Sa
//	Multiply            S*(1-Da) + D*(1-Sa) + S*D
//	Screen              S + D - S*D
//	Darken              min(SrcOver, DstOver)
//	Lighten             max(SrcOver, DstOver)
//	Additive            S + D
//	Subtract            D*(1-Sa)
//	SubtractLVGL        D - S
//	NormalLVGL          S + D*(1-Sa)
//	AdditiveLVGL        S + D
//	MultiplyLVGL        S*D + D*(1-Sa)
//	PremultiplySrcOver  S + D*(1-Sa)
//
// The LVGL variants are written for non-premultiplied sources scaled by
// Sa; on premultiplied input that scaling is already done.
package blend

// Mode selects a blend equation. The order matches render.Blend.
type Mode uint8

const (
	None Mode = iota
	SrcOver
	DstOver
	SrcIn
	DstIn
	Multiply
	Screen
	Darken
	Lighten
	Additive
	Subtract
	SubtractLVGL
	NormalLVGL
	AdditiveLVGL
	MultiplyLVGL
	PremultiplySrcOver

	modeCount
)

// Count is the number of modes.
const Count = int(modeCount)

// Pixel is a premultiplied RGBA color.
type Pixel struct {
	R, G, B, A uint8
}

// channelFunc blends one channel. sa and da are the pixel alphas.
type channelFunc func(s, d, sa, da uint8) uint8

var funcs = [modeCount]channelFunc{
	None:    func(s, _, _, _ uint8) uint8 { return s },
	SrcOver: srcOver,
	DstOver: func(s, d, _, da uint8) uint8 { return addClamp(mul(s, 255-da), d) },
	SrcIn:   func(s, _, _, da uint8) uint8 { return mul(s, da) },
	DstIn:   func(_, d, sa, _ uint8) uint8 { return mul(d, sa) },
	Multiply: func(s, d, sa, da uint8) uint8 {
		return addClamp(addClamp(mul(s, 255-da), mul(d, 255-sa)), mul(s, d))
	},
	Screen: screen,
	Darken: func(s, d, sa, da uint8) uint8 {
		return min(srcOver(s, d, sa, da), addClamp(mul(s, 255-da), d))
	},
	Lighten: func(s, d, sa, da uint8) uint8 {
		return max(srcOver(s, d, sa, da), addClamp(mul(s, 255-da), d))
	},
	Additive:     func(s, d, _, _ uint8) uint8 { return addClamp(s, d) },
	Subtract:     func(_, d, sa, _ uint8) uint8 { return mul(d, 255-sa) },
	SubtractLVGL: func(s, d, _, _ uint8) uint8 { return subClamp(d, s) },
	NormalLVGL:   srcOver,
	AdditiveLVGL: func(s, d, _, _ uint8) uint8 { return addClamp(s, d) },
	MultiplyLVGL: func(s, d, sa, _ uint8) uint8 {
		return addClamp(mul(s, d), mul(d, 255-sa))
	},
	PremultiplySrcOver: srcOver,
}

func screen(s, d, _, _ uint8) uint8 {
	return uint8(min(uint16(s)+uint16(d)-uint16(mul(s, d)), 255))
}

func srcOver(s, d, sa, _ uint8) uint8 {
	return addClamp(s, mul(d, 255-sa))
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m < modeCount
}

// Apply blends s onto d. Unknown modes behave like None.
func Apply(m Mode, s, d Pixel) Pixel {
	if !m.Valid() {
		return s
	}
	f := funcs[m]
	return Pixel{
		R: f(s.R, d.R, s.A, d.A),
		G: f(s.G, d.G, s.A, d.A),
		B: f(s.B, d.B, s.A, d.A),
		A: f(s.A, d.A, s.A, d.A),
	}
}

// Premultiply converts a straight-alpha color.
func Premultiply(r, g, b, a uint8) Pixel {
	return Pixel{R: mul(r, a), G: mul(g, a), B: mul(b, a), A: a}
}

// Straight converts p back to straight alpha. Fully transparent pixels
// become transparent black.
func (p Pixel) Straight() (r, g, b, a uint8) {
	if p.A == 0 {
		return 0, 0, 0, 0
	}
	if p.A == 255 {
		return p.R, p.G, p.B, 255
	}
	return div(p.R, p.A), div(p.G, p.A), div(p.B, p.A), p.A
}
