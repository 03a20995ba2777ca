// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/vgbuf"
	"github.com/gogpu/vgbuf/format"
)

// RenderTarget exposes a finished buffer to host GPU frameworks and
// persistence code.
//
// Format reports the matching WebGPU texture format, or
// TextureFormatUndefined when the buffer layout has no WebGPU equivalent
// and must be converted before upload.
type RenderTarget interface {
	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in rows.
	Height() int

	// Format returns the pixel format of the target.
	Format() gputypes.TextureFormat

	// Pixels returns direct access to pixel data.
	Pixels() []byte

	// Stride returns the number of bytes per row, including padding.
	Stride() int
}

// BufferTarget is a RenderTarget over an allocated vgbuf.Buffer. It shares
// the buffer memory; the buffer must outlive the target.
type BufferTarget struct {
	buf *vgbuf.Buffer
}

// NewBufferTarget wraps buf. It fails with ErrInvalidTarget if buf is not
// allocated.
func NewBufferTarget(buf *vgbuf.Buffer) (*BufferTarget, error) {
	if err := checkBuffer(buf); err != nil {
		return nil, err
	}
	return &BufferTarget{buf: buf}, nil
}

// Width returns the buffer width in pixels.
func (t *BufferTarget) Width() int {
	return t.buf.Width
}

// Height returns the buffer height in rows.
func (t *BufferTarget) Height() int {
	return t.buf.Height
}

// Format returns the WebGPU equivalent of the buffer format.
func (t *BufferTarget) Format() gputypes.TextureFormat {
	return t.buf.Format.TextureFormat()
}

// PixelFormat returns the accelerator format of the buffer. Persistence
// code prefers it over Format, which loses formats WebGPU has no name for.
func (t *BufferTarget) PixelFormat() format.PixelFormat {
	return t.buf.Format
}

// Pixels returns the buffer memory.
func (t *BufferTarget) Pixels() []byte {
	return t.buf.Memory
}

// Stride returns the buffer stride.
func (t *BufferTarget) Stride() int {
	return t.buf.Stride
}

// Buffer returns the wrapped buffer.
func (t *BufferTarget) Buffer() *vgbuf.Buffer {
	return t.buf
}

// Ensure BufferTarget implements RenderTarget.
var _ RenderTarget = (*BufferTarget)(nil)
