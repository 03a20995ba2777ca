// Package memory provides the platform memory sources behind accelerator
// buffers. Every Allocator returns regions whose first byte is aligned to
// the requested power-of-two boundary.
package memory

import (
	"fmt"
	"unsafe"

	"github.com/gogpu/vgbuf/internal/errs"
)

var (
	// ErrOutOfMemory is returned when a request cannot be satisfied.
	ErrOutOfMemory = errs.OutOfMemory

	// ErrInvalidArgument is returned for non-positive sizes and alignments
	// that are not powers of two.
	ErrInvalidArgument = errs.InvalidArgument
)

// Allocator hands out aligned memory regions.
//
// Implementations must be safe for concurrent use; the Blocks they return
// are owned by the caller until passed back to Free.
type Allocator interface {
	// Name identifies the allocator in diagnostics.
	Name() string

	// Allocate returns a region of exactly size bytes aligned to align.
	Allocate(size, align int) (Block, error)

	// Free releases a region returned by Allocate.
	Free(b Block) error
}

// Block is one allocated region.
type Block struct {
	// Data is the usable region. len(Data) == cap(Data) == requested size.
	Data []byte

	// Addr is the address of Data[0].
	Addr uintptr

	// raw is the full underlying region when it is larger than Data.
	raw []byte
}

// IsZero reports whether b is the zero Block.
func (b Block) IsZero() bool {
	return b.Data == nil
}

func validate(size, align int) error {
	if size <= 0 {
		return fmt.Errorf("memory: %w: size %d", ErrInvalidArgument, size)
	}
	if align <= 0 || align&(align-1) != 0 {
		return fmt.Errorf("memory: %w: alignment %d is not a power of two", ErrInvalidArgument, align)
	}
	return nil
}

// carve returns the aligned size-byte window inside raw.
// raw must hold at least size+align-1 bytes, or be aligned already.
func carve(raw []byte, size, align int) Block {
	base := uintptr(unsafe.Pointer(unsafe.SliceData(raw)))
	aligned := (base + uintptr(align) - 1) &^ (uintptr(align) - 1)
	off := int(aligned - base)
	return Block{
		Data: raw[off : off+size : off+size],
		Addr: aligned,
		raw:  raw,
	}
}
