package vgbuf

import (
	"errors"
	"slices"
	"sync"

	"github.com/gogpu/vgbuf/format"
)

// Pool is a thread-safe pool for reusing allocated Buffers.
//
// Pool groups buffers by their requested dimensions and format, allowing
// efficient reuse of identically-sized buffers across test runs. Pooled
// buffers stay allocated; Drain releases them.
//
// Thread safety: All methods are safe for concurrent use. A Buffer taken
// from the pool is owned by the caller until it is Put back.
type Pool struct {
	alloc *Allocator

	mu      sync.Mutex
	buckets map[poolKey][]*Buffer
	maxSize int // max buffers per bucket
}

// poolKey identifies a bucket of identical buffer specifications.
type poolKey struct {
	width  int
	height int
	format format.PixelFormat
}

// NewPool creates a pool drawing from alloc with the given maximum buffers
// per bucket. A maxPerBucket of 0 means unlimited (use with caution).
func NewPool(alloc *Allocator, maxPerBucket int) *Pool {
	return &Pool{
		alloc:   alloc,
		buckets: make(map[poolKey][]*Buffer),
		maxSize: maxPerBucket,
	}
}

// Get retrieves a buffer from the pool or allocates a new one.
// A reused buffer is cleared (all bytes zeroed).
func (p *Pool) Get(width, height int, f format.PixelFormat) (*Buffer, error) {
	key := poolKey{width: width, height: height, format: f}

	p.mu.Lock()
	bucket := p.buckets[key]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[key] = bucket[:len(bucket)-1]
		p.mu.Unlock()

		buf.Clear()
		return buf, nil
	}
	p.mu.Unlock()

	buf := &Buffer{Width: width, Height: height, Format: f}
	if err := p.alloc.Allocate(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// Put returns a buffer to the pool for reuse. The bucket is keyed by the
// height the buffer was requested with, so a YUV buffer whose height was
// rounded up still lands in the bucket Get looks in.
//
// If the bucket is at capacity the buffer is freed instead. Unallocated
// buffers, nil and buffers already in the pool are ignored, so a repeated
// Put never hands the same buffer to two callers.
func (p *Pool) Put(buf *Buffer) error {
	if buf == nil || !buf.Allocated() {
		return nil
	}

	key := poolKey{width: buf.Width, height: buf.requestedHeight, format: buf.Format}

	p.mu.Lock()
	bucket := p.buckets[key]
	if slices.Contains(bucket, buf) {
		p.mu.Unlock()
		return nil
	}
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		p.mu.Unlock()
		return p.alloc.Free(buf)
	}
	p.buckets[key] = append(bucket, buf)
	p.mu.Unlock()
	return nil
}

// Len returns the number of pooled buffers.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, bucket := range p.buckets {
		n += len(bucket)
	}
	return n
}

// Drain frees every pooled buffer and empties the pool.
func (p *Pool) Drain() error {
	p.mu.Lock()
	buckets := p.buckets
	p.buckets = make(map[poolKey][]*Buffer)
	p.mu.Unlock()

	var errs []error
	for _, bucket := range buckets {
		for _, buf := range bucket {
			if err := p.alloc.Free(buf); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
