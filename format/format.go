// Package format describes the pixel formats understood by the VG-Lite
// vector accelerator and the per-format layout parameters used to size
// buffers for it.
//
// The set of formats is closed. Every PixelFormat has exactly one entry in
// the format table; Params is total and never fails, even for values outside
// the enumeration.
package format

import "fmt"

// PixelFormat identifies a buffer pixel layout.
//
// The declaration order matters: the linear YUV range (YUY2..NV16) and the
// tiled YUV range (YUY2Tiled..AYUY2Tiled) are contiguous, matching the
// accelerator's own enumeration.
type PixelFormat uint16

const (
	RGBA8888 PixelFormat = iota
	BGRA8888
	RGBX8888
	BGRX8888
	RGB565
	BGR565
	RGBA4444
	BGRA4444
	BGRA5551
	A4
	A8
	L8
	YUYV

	YUY2
	ANV12
	AYUY2
	NV12
	YV12
	YV24
	YV16
	NV16

	YUY2Tiled
	NV12Tiled
	ANV12Tiled
	AYUY2Tiled

	RGBA2222
	BGRA2222
	ABGR2222
	ARGB2222
	ABGR4444
	ARGB4444
	ABGR8888
	ARGB8888
	ABGR1555
	RGBA5551
	ARGB1555
	XBGR8888
	XRGB8888
	RGBA8888ETC2EAC
	RGB888
	BGR888
	ABGR8565
	BGRA5658
	ARGB8565
	RGBA5658
	ABGR8565Planar
	BGRA5658Planar
	ARGB8565Planar
	RGBA5658Planar

	Index1
	Index2
	Index4
	Index8

	// Legacy OpenVG formats. The s/l prefix selects sRGB or linear color
	// space; Pre marks premultiplied alpha.
	SRGBX8888
	SRGBA8888
	SRGBA8888Pre
	LRGBX8888
	LRGBA8888
	LRGBA8888Pre
	SXRGB8888
	SARGB8888
	SARGB8888Pre
	LXRGB8888
	LARGB8888
	LARGB8888Pre
	SBGRX8888
	SBGRA8888
	SBGRA8888Pre
	LBGRX8888
	LBGRA8888
	LBGRA8888Pre
	SXBGR8888
	SABGR8888
	SABGR8888Pre
	LXBGR8888
	LABGR8888
	LABGR8888Pre
	SRGBA5551
	SRGBA4444
	SARGB1555
	SARGB4444
	SBGRA5551
	SBGRA4444
	SABGR1555
	SABGR4444
	SRGB565
	SBGR565
	SL8
	LL8
	VGA8
	VGBW1
	VGA4
	VGA1

	formatCount
)

// Default is the format substituted for names that do not resolve.
const Default = BGRA8888

// Family groups formats that share a storage model.
type Family uint8

const (
	FamilyPacked Family = iota
	FamilyAlpha
	FamilyIndexed
	FamilyYUV
	FamilyCompressed
	FamilyOpenVG
)

func (f Family) String() string {
	switch f {
	case FamilyPacked:
		return "packed"
	case FamilyAlpha:
		return "alpha"
	case FamilyIndexed:
		return "indexed"
	case FamilyYUV:
		return "yuv"
	case FamilyCompressed:
		return "compressed"
	case FamilyOpenVG:
		return "openvg"
	default:
		return fmt.Sprintf("Family(%d)", uint8(f))
	}
}

// PlaneLayout names the sub-plane arrangement of a planar format.
type PlaneLayout uint8

const (
	// PlanesNone is a single interleaved plane.
	PlanesNone PlaneLayout = iota
	// PlanesNV12 is a luma plane followed by interleaved 4:2:0 chroma.
	PlanesNV12
	// PlanesANV12 is PlanesNV12 followed by a full-resolution alpha plane.
	PlanesANV12
	// PlanesNV16 is a luma plane followed by interleaved 4:2:2 chroma.
	PlanesNV16
	// PlanesYV12 is luma, then V, then U, each chroma plane 4:2:0.
	PlanesYV12
	// PlanesYV16 is luma, then V, then U, each chroma plane 4:2:2.
	PlanesYV16
	// PlanesYV24 is luma, then V, then U, all full resolution.
	PlanesYV24
)

// String returns the canonical accelerator name of the format, for example
// "VG_LITE_BGRA8888". Values outside the enumeration print as
// "PixelFormat(N)".
func (f PixelFormat) String() string {
	if f >= formatCount {
		return fmt.Sprintf("PixelFormat(%d)", uint16(f))
	}
	return table[f].name
}

// IsValid reports whether f belongs to the enumeration.
func (f PixelFormat) IsValid() bool {
	return f < formatCount
}

// Family returns the storage family of f.
func (f PixelFormat) Family() Family {
	return f.entry().family
}

// Planes returns the sub-plane arrangement of f.
func (f PixelFormat) Planes() PlaneLayout {
	return f.entry().planes
}

// IsPlanar reports whether f places sub-planes inside its own allocation.
// The planar 8565 formats keep their alpha plane outside the buffer and
// report false.
func (f PixelFormat) IsPlanar() bool {
	return f.entry().planes != PlanesNone
}

// IsCompressed reports whether f is block compressed. Compressed buffers
// must be 16 pixels wide and 4 rows high multiples.
func (f PixelFormat) IsCompressed() bool {
	return f.entry().family == FamilyCompressed
}

// NeedsUVSwizzle reports whether f is in the linear YUV range whose height
// is rounded to 4 rows and whose chroma is read with U/V swizzle.
func (f PixelFormat) NeedsUVSwizzle() bool {
	return f >= YUY2 && f <= NV16
}

// IsTiled reports whether f is in the tiled YUV range.
func (f PixelFormat) IsTiled() bool {
	return f >= YUY2Tiled && f <= AYUY2Tiled
}

// All returns every format in enumeration order.
func All() []PixelFormat {
	all := make([]PixelFormat, formatCount)
	for i := range all {
		all[i] = PixelFormat(i)
	}
	return all
}
