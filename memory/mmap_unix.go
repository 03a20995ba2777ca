//go:build unix

package memory

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Mmap allocates anonymous private mappings. Each region is page aligned,
// so alignments up to the page size cost nothing extra.
type Mmap struct {
	pageSize int
}

// NewMmap returns an mmap-backed allocator.
func NewMmap() (*Mmap, error) {
	return &Mmap{pageSize: unix.Getpagesize()}, nil
}

// Name returns "mmap".
func (m *Mmap) Name() string { return "mmap" }

// Allocate maps a zeroed region of size bytes aligned to align.
func (m *Mmap) Allocate(size, align int) (Block, error) {
	if err := validate(size, align); err != nil {
		return Block{}, err
	}

	n := size
	if align > m.pageSize {
		n += align - m.pageSize
	}

	raw, err := unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		if errors.Is(err, unix.ENOMEM) || errors.Is(err, unix.EINVAL) {
			return Block{}, fmt.Errorf("memory: %w: mmap %d bytes: %v", ErrOutOfMemory, n, err)
		}
		return Block{}, fmt.Errorf("memory: mmap %d bytes: %w", n, err)
	}
	return carve(raw, size, align), nil
}

// Free unmaps the region.
func (m *Mmap) Free(b Block) error {
	if b.IsZero() {
		return fmt.Errorf("memory: %w: free of zero block", ErrInvalidArgument)
	}
	if err := unix.Munmap(b.raw); err != nil {
		return fmt.Errorf("memory: munmap: %w", err)
	}
	return nil
}
