package vgbuf

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/vgbuf/layout"
	"github.com/gogpu/vgbuf/memory"
)

// Allocator sizes and allocates Buffers.
//
// An Allocator is immutable after creation and may be shared between
// goroutines; the Buffers it fills are not.
type Allocator struct {
	addressAlignment int
	mem              memory.Allocator
	log              *slog.Logger
}

// NewAllocator creates an Allocator. It fails with ErrInvalidArgument when
// the address alignment is not a power of two of at least 4.
func NewAllocator(opts ...Option) (*Allocator, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := layout.ValidateAddressAlignment(o.addressAlignment); err != nil {
		return nil, err
	}
	if o.memory == nil {
		o.memory = memory.NewHeap()
	}
	return &Allocator{
		addressAlignment: o.addressAlignment,
		mem:              o.memory,
		log:              o.logger,
	}, nil
}

// AddressAlignment returns the base alignment applied to every allocation.
func (a *Allocator) AddressAlignment() int {
	return a.addressAlignment
}

// Memory returns the memory source.
func (a *Allocator) Memory() memory.Allocator {
	return a.mem
}

func (a *Allocator) logger() *slog.Logger {
	if a.log != nil {
		return a.log
	}
	return Logger()
}

// Layout computes the layout b would get without allocating.
func (a *Allocator) Layout(b *Buffer) (layout.Layout, error) {
	return layout.Compute(b.Width, b.Height, b.Format, a.addressAlignment)
}

// Allocate computes the layout of b from its Width, Height and Format and
// reserves memory for it.
//
// On success every field of b is populated: Height may be rounded up,
// Planes is reset and then filled for planar formats. If b already owned
// memory, the old region is released after the new one is in place.
//
// On failure b is left untouched. Compressed formats whose dimensions are
// not tile multiples fail with ErrInvalidArgument; exhausted memory fails
// with ErrOutOfMemory.
func (a *Allocator) Allocate(b *Buffer) error {
	l, err := a.Layout(b)
	if err != nil {
		return err
	}

	block, err := a.mem.Allocate(l.Size, a.addressAlignment)
	if err != nil {
		return fmt.Errorf("vgbuf: allocate %dx%d %s (%d bytes): %w",
			b.Width, b.Height, b.Format, l.Size, err)
	}

	if b.Memory != nil {
		old := *b
		if err := old.source.Free(old.block); err != nil {
			a.logger().Warn("release of replaced buffer failed", "buffer", old.String(), "error", err)
		}
	}

	*b = Buffer{
		Width:     l.Width,
		Height:    l.Height,
		Format:    l.Format,
		Stride:    l.Stride,
		Tiled:     l.Tiled,
		UVSwizzle: l.UVSwizzle,
		Planes:    l.Planes,
		Size:      l.Size,
		Address:   block.Addr,
		Memory:    block.Data,

		requestedHeight: l.RequestedHeight,
		block:           block,
		source:          a.mem,
	}

	a.logger().Debug("buffer allocated",
		"width", b.Width,
		"height", b.Height,
		"requested_height", l.RequestedHeight,
		"format", b.Format.String(),
		"stride", b.Stride,
		"size", b.Size,
		"address", fmt.Sprintf("%#x", b.Address),
		"memory", a.mem.Name())
	return nil
}

// Free releases the memory of b and zeroes every field.
//
// Freeing a buffer that owns no memory is a caller bug and panics, the way
// closing a closed channel does. The descriptor is zeroed even when the
// memory source reports an error.
func (a *Allocator) Free(b *Buffer) error {
	if b == nil || b.Memory == nil {
		panic("vgbuf: Free of unallocated buffer")
	}

	desc := b.String()
	err := b.source.Free(b.block)
	*b = Buffer{}
	if err != nil {
		return fmt.Errorf("vgbuf: free %s: %w", desc, err)
	}

	a.logger().Debug("buffer freed", "buffer", desc)
	return nil
}
