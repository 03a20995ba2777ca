// Package layout computes the memory layout of accelerator buffers: row
// stride, adjusted height, total allocation size and the placement of
// chroma and alpha sub-planes.
//
// All functions are pure and safe for concurrent use.
package layout

import (
	"fmt"

	"github.com/gogpu/vgbuf/format"
	"github.com/gogpu/vgbuf/internal/errs"
)

// DefaultAddressAlignment is the whole-buffer base address alignment
// required by the accelerator on most targets.
const DefaultAddressAlignment = 64

// MinAddressAlignment is the smallest base alignment accepted.
const MinAddressAlignment = 4

// MaxSize bounds the total size of a single buffer.
const MaxSize = 1 << 40

const (
	// Compressed formats are encoded in 16x4 pixel tiles.
	compressedTileWidth  = 16
	compressedTileHeight = 4

	// YUV formats in the swizzle and tiled ranges round height to 4 rows.
	yuvRowGranularity = 4
)

// ErrInvalidArgument wraps every argument error returned by this package.
var ErrInvalidArgument = errs.InvalidArgument

// Planes holds sub-plane byte offsets from the buffer base. Zero means the
// plane is absent.
type Planes struct {
	UV    int
	V     int
	Alpha int
}

// Layout is the computed memory layout of one buffer.
type Layout struct {
	Format format.PixelFormat

	// Width is the width in pixels.
	Width int

	// Height is the adjusted height in rows. It may exceed RequestedHeight
	// for formats that round height to a tile granularity.
	Height int

	// RequestedHeight is the height the caller asked for.
	RequestedHeight int

	// RowBytes is the unpadded size of one row.
	RowBytes int

	// Stride is the byte distance between consecutive rows.
	Stride int

	// Size is the allocation size, a non-zero multiple of the address
	// alignment that covers Height*Stride bytes.
	Size int

	Tiled     bool
	UVSwizzle bool
	Planes    Planes
}

// AlignUp rounds n up to a multiple of align. align must be a power of two.
func AlignUp(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// ValidateAddressAlignment reports whether align is usable as a base
// address alignment: a power of two between MinAddressAlignment and
// MaxSize.
func ValidateAddressAlignment(align int) error {
	if align < MinAddressAlignment || align > MaxSize || !isPowerOfTwo(align) {
		return fmt.Errorf("layout: %w: address alignment %d must be a power of two in [%d, %d]",
			ErrInvalidArgument, align, MinAddressAlignment, uint64(MaxSize))
	}
	return nil
}

// RowBytes returns the number of bytes needed to hold width pixels of f.
//
// Sub-byte formats round up: a row of 100 one-bit pixels needs 13 bytes,
// not 12, so the last partial byte is never cut off.
func RowBytes(width int, f format.PixelFormat) int {
	p := f.Params()
	return int(ceilDiv(uint64(width)*uint64(p.Multiplier), uint64(p.Divisor)))
}

func ceilDiv(n, d uint64) uint64 {
	return (n + d - 1) / d
}

// Compute derives the layout of a width x height buffer of format f whose
// base address is aligned to addressAlign bytes.
//
// Compute fails with ErrInvalidArgument when a dimension is negative, the
// alignment is not a power of two of at least MinAddressAlignment, the
// format is block compressed and the dimensions are not tile multiples, or
// the resulting size exceeds MaxSize. Zero dimensions are accepted and
// produce a one-alignment-unit allocation.
func Compute(width, height int, f format.PixelFormat, addressAlign int) (Layout, error) {
	if err := ValidateAddressAlignment(addressAlign); err != nil {
		return Layout{}, err
	}
	if width < 0 || height < 0 {
		return Layout{}, fmt.Errorf("layout: %w: negative dimensions %dx%d",
			ErrInvalidArgument, width, height)
	}
	if width > MaxSize || height > MaxSize {
		return Layout{}, tooLarge(width, height, f)
	}
	if f.IsCompressed() && (width%compressedTileWidth != 0 || height%compressedTileHeight != 0) {
		return Layout{}, fmt.Errorf("layout: %w: %s needs width multiple of %d and height multiple of %d, got %dx%d",
			ErrInvalidArgument, f, compressedTileWidth, compressedTileHeight, width, height)
	}

	l := Layout{
		Format:          f,
		Width:           width,
		Height:          height,
		RequestedHeight: height,
	}

	switch {
	case f.NeedsUVSwizzle():
		l.Height = AlignUp(height, yuvRowGranularity)
		l.UVSwizzle = true
	case f.IsTiled():
		l.Height = AlignUp(height, yuvRowGranularity)
		l.Tiled = true
	}

	// width and height are at most MaxSize, so neither the row product nor
	// the stride rounding can wrap. The total is checked by division first.
	p := f.Params()
	rowBytes := ceilDiv(uint64(width)*uint64(p.Multiplier), uint64(p.Divisor))
	stride := (rowBytes + uint64(p.Alignment) - 1) &^ uint64(p.Alignment-1)
	if stride > MaxSize || (stride != 0 && uint64(l.Height) > MaxSize/stride) {
		return Layout{}, tooLarge(width, height, f)
	}
	total := uint64(l.Height) * stride

	l.RowBytes = int(rowBytes)
	l.Stride = int(stride)
	l.Size = max(AlignUp(int(total), addressAlign), addressAlign)
	l.Planes = planes(f.Planes(), width, l.Height)
	return l, nil
}

func tooLarge(width, height int, f format.PixelFormat) error {
	return fmt.Errorf("layout: %w: %dx%d %s exceeds the %d byte buffer limit",
		ErrInvalidArgument, width, height, f, uint64(MaxSize))
}

// planes places the chroma and alpha planes after a luma plane with a pitch
// of one byte per pixel. Compute has already bounded height*stride by
// MaxSize, and stride >= width for every planar format, so width*height
// cannot overflow.
func planes(kind format.PlaneLayout, width, height int) Planes {
	luma := width * height
	halfWidth := (width + 1) / 2

	switch kind {
	case format.PlanesNV12:
		return Planes{UV: luma}
	case format.PlanesANV12:
		// Interleaved UV rows are rounded to an even byte count.
		return Planes{UV: luma, Alpha: luma + 2*halfWidth*(height/2)}
	case format.PlanesNV16:
		return Planes{UV: luma}
	case format.PlanesYV12:
		return Planes{V: luma, UV: luma + halfWidth*(height/2)}
	case format.PlanesYV16:
		return Planes{V: luma, UV: luma + halfWidth*height}
	case format.PlanesYV24:
		return Planes{V: luma, UV: 2 * luma}
	default:
		return Planes{}
	}
}

// PlaneSize returns the size in bytes of each plane of l in the order luma,
// UV (or U), V, alpha. Absent planes have size zero.
func (l Layout) PlaneSize() (luma, uv, v, alpha int) {
	w, h := l.Width, l.Height
	halfWidth := (w + 1) / 2
	switch l.Format.Planes() {
	case format.PlanesNV12:
		return w * h, 2 * halfWidth * (h / 2), 0, 0
	case format.PlanesANV12:
		return w * h, 2 * halfWidth * (h / 2), 0, w * h
	case format.PlanesNV16:
		return w * h, 2 * halfWidth * h, 0, 0
	case format.PlanesYV12:
		return w * h, halfWidth * (h / 2), halfWidth * (h / 2), 0
	case format.PlanesYV16:
		return w * h, halfWidth * h, halfWidth * h, 0
	case format.PlanesYV24:
		return w * h, w * h, w * h, 0
	default:
		return l.Height * l.Stride, 0, 0, 0
	}
}
