package vgbuf

import (
	"errors"
	"testing"

	"github.com/gogpu/vgbuf/memory"
)

func TestDefaultOptions(t *testing.T) {
	opts := defaultOptions()
	if opts.addressAlignment != 64 {
		t.Errorf("default addressAlignment = %d, want 64", opts.addressAlignment)
	}
	if opts.memory != nil {
		t.Error("default memory should be nil")
	}
	if opts.logger != nil {
		t.Error("default logger should be nil")
	}
}

func TestNewAllocatorOptions(t *testing.T) {
	heap := memory.NewHeap()
	a, err := NewAllocator(WithAddressAlignment(4), WithMemory(heap))
	if err != nil {
		t.Fatalf("NewAllocator() error = %v", err)
	}
	if a.AddressAlignment() != 4 {
		t.Errorf("AddressAlignment() = %d, want 4", a.AddressAlignment())
	}
	if a.Memory() != heap {
		t.Error("Memory() did not return the injected allocator")
	}
}

func TestNewAllocatorBadAlignment(t *testing.T) {
	for _, n := range []int{0, 2, 3, 24, 100, -64} {
		_, err := NewAllocator(WithAddressAlignment(n))
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("NewAllocator(WithAddressAlignment(%d)) error = %v, want ErrInvalidArgument", n, err)
		}
	}
}
