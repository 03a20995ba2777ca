package memory

import (
	"fmt"
	"sync"
)

// Limited caps the number of bytes outstanding from an inner allocator.
// Constrained targets use it to reproduce exhaustion on a development host.
type Limited struct {
	inner  Allocator
	budget int

	mu    sync.Mutex
	inUse int
}

// NewLimited wraps inner with a byte budget.
func NewLimited(inner Allocator, budget int) *Limited {
	return &Limited{inner: inner, budget: budget}
}

// Name returns "limited(<inner>)".
func (l *Limited) Name() string {
	return "limited(" + l.inner.Name() + ")"
}

// Allocate fails with ErrOutOfMemory when size would exceed the budget.
func (l *Limited) Allocate(size, align int) (Block, error) {
	if err := validate(size, align); err != nil {
		return Block{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.inUse+size > l.budget {
		return Block{}, fmt.Errorf("memory: %w: %d bytes requested, %d of %d in use",
			ErrOutOfMemory, size, l.inUse, l.budget)
	}
	b, err := l.inner.Allocate(size, align)
	if err != nil {
		return Block{}, err
	}
	l.inUse += len(b.Data)
	return b, nil
}

// Free returns the region to the inner allocator and credits the budget.
func (l *Limited) Free(b Block) error {
	if err := l.inner.Free(b); err != nil {
		return err
	}
	l.mu.Lock()
	l.inUse -= len(b.Data)
	l.mu.Unlock()
	return nil
}

// InUse returns the number of bytes currently allocated.
func (l *Limited) InUse() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inUse
}
