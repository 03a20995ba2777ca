package vgbuf

import (
	"fmt"

	"github.com/gogpu/vgbuf/format"
	"github.com/gogpu/vgbuf/layout"
	"github.com/gogpu/vgbuf/memory"
)

// Buffer describes one accelerator pixel buffer.
//
// Callers fill Width, Height and Format and pass the Buffer to
// Allocator.Allocate, which populates every other field. The driver reads
// Stride, Format and Address; the memory must stay allocated until every
// operation referencing the buffer has finished.
//
// A Buffer is exclusively owned by the caller that allocated it and is not
// safe for concurrent mutation.
type Buffer struct {
	Width  int
	Height int
	Format format.PixelFormat

	// Stride is the byte distance between consecutive rows.
	Stride int

	// Tiled is set for the tiled YUV formats.
	Tiled bool

	// UVSwizzle is set for the linear YUV formats whose chroma is read
	// with U/V swizzle.
	UVSwizzle bool

	// Planes holds sub-plane offsets from Address. They are reset on every
	// allocation and only set for planar formats.
	Planes layout.Planes

	// Size is the allocation size in bytes.
	Size int

	// Address is the base address of Memory.
	Address uintptr

	// Memory is the allocated region, nil when the buffer is not allocated.
	Memory []byte

	requestedHeight int
	block           memory.Block
	source          memory.Allocator
}

// Allocated reports whether b currently owns memory.
func (b *Buffer) Allocated() bool {
	return b.Memory != nil
}

// Row returns the Stride bytes of row y, or nil if y is out of range or the
// buffer is not allocated.
func (b *Buffer) Row(y int) []byte {
	if b.Memory == nil || y < 0 || y >= b.Height {
		return nil
	}
	start := y * b.Stride
	return b.Memory[start : start+b.Stride]
}

// Plane returns the bytes from a sub-plane offset to the end of the
// buffer, or nil when the offset is zero.
func (b *Buffer) Plane(offset int) []byte {
	if b.Memory == nil || offset <= 0 || offset >= len(b.Memory) {
		return nil
	}
	return b.Memory[offset:]
}

// Clear zeroes the buffer memory.
func (b *Buffer) Clear() {
	clear(b.Memory)
}

// String returns a short diagnostic description.
func (b *Buffer) String() string {
	return fmt.Sprintf("%dx%d %s stride=%d size=%d addr=%#x",
		b.Width, b.Height, b.Format, b.Stride, b.Size, b.Address)
}
