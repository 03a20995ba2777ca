//go:build !unix

package memory

import (
	"errors"
	"fmt"
)

// Mmap is unavailable on this platform.
type Mmap struct{}

// NewMmap reports that mmap is not supported here.
func NewMmap() (*Mmap, error) {
	return nil, fmt.Errorf("memory: mmap allocator: %w", errors.ErrUnsupported)
}

// Name returns "mmap".
func (m *Mmap) Name() string { return "mmap" }

// Allocate always fails.
func (m *Mmap) Allocate(size, align int) (Block, error) {
	return Block{}, fmt.Errorf("memory: mmap allocator: %w", errors.ErrUnsupported)
}

// Free always fails.
func (m *Mmap) Free(b Block) error {
	return fmt.Errorf("memory: mmap allocator: %w", errors.ErrUnsupported)
}
