package memory

import "fmt"

// DefaultMaxRequest bounds a single heap request.
const DefaultMaxRequest = 1 << 34

// Heap allocates from the Go heap. The garbage collector does not move heap
// objects, so Block.Addr stays valid until the Block is dropped.
type Heap struct {
	// MaxRequest is the largest size Allocate accepts. Larger requests fail
	// with ErrOutOfMemory instead of crashing the runtime.
	MaxRequest int
}

// NewHeap returns a heap allocator with DefaultMaxRequest.
func NewHeap() *Heap {
	return &Heap{MaxRequest: DefaultMaxRequest}
}

// Name returns "heap".
func (h *Heap) Name() string { return "heap" }

// Allocate returns a zeroed region of size bytes aligned to align.
func (h *Heap) Allocate(size, align int) (b Block, err error) {
	if err := validate(size, align); err != nil {
		return Block{}, err
	}
	if h.MaxRequest > 0 && size > h.MaxRequest {
		return Block{}, fmt.Errorf("memory: %w: heap request of %d bytes exceeds %d",
			ErrOutOfMemory, size, h.MaxRequest)
	}

	defer func() {
		// makeslice panics when the length cannot be represented.
		if r := recover(); r != nil {
			b, err = Block{}, fmt.Errorf("memory: %w: heap request of %d bytes: %v", ErrOutOfMemory, size, r)
		}
	}()

	raw := make([]byte, size+align-1)
	return carve(raw, size, align), nil
}

// Free drops the reference; the collector reclaims the memory.
func (h *Heap) Free(b Block) error {
	if b.IsZero() {
		return fmt.Errorf("memory: %w: free of zero block", ErrInvalidArgument)
	}
	return nil
}
