package vgbuf

import (
	"log/slog"

	"github.com/gogpu/vgbuf/layout"
	"github.com/gogpu/vgbuf/memory"
)

// Option configures an Allocator during creation.
// Use functional options to customize Allocator behavior.
//
// Example:
//
//	// Defaults: 64-byte base alignment, Go heap memory
//	a, err := vgbuf.NewAllocator()
//
//	// Constrained target with 4-byte alignment and a 1 MiB budget
//	a, err := vgbuf.NewAllocator(
//	    vgbuf.WithAddressAlignment(4),
//	    vgbuf.WithMemory(memory.NewLimited(memory.NewHeap(), 1<<20)),
//	)
type Option func(*options)

// options holds optional configuration for Allocator creation.
type options struct {
	addressAlignment int
	memory           memory.Allocator
	logger           *slog.Logger
}

// defaultOptions returns the default allocator options.
func defaultOptions() options {
	return options{
		addressAlignment: layout.DefaultAddressAlignment,
		memory:           nil, // Will be set to a Heap if nil
		logger:           nil, // Will follow the package logger if nil
	}
}

// WithAddressAlignment sets the base address alignment applied to the
// whole allocation. It must be a power of two of at least 4.
func WithAddressAlignment(n int) Option {
	return func(o *options) {
		o.addressAlignment = n
	}
}

// WithMemory sets the memory source buffers are carved from.
func WithMemory(m memory.Allocator) Option {
	return func(o *options) {
		o.memory = m
	}
}

// WithLogger sets a logger for this allocator only. Without it the
// allocator logs through Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
