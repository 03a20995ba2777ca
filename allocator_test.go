package vgbuf

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/gogpu/vgbuf/format"
	"github.com/gogpu/vgbuf/layout"
	"github.com/gogpu/vgbuf/memory"
)

func newAllocator(t *testing.T, opts ...Option) *Allocator {
	t.Helper()
	a, err := NewAllocator(opts...)
	if err != nil {
		t.Fatalf("NewAllocator() error = %v", err)
	}
	return a
}

// mustAllocate allocates b and fails the test on error.
func mustAllocate(t *testing.T, a *Allocator, b *Buffer) {
	t.Helper()
	if err := a.Allocate(b); err != nil {
		t.Fatalf("Allocate(%dx%d %s) error = %v", b.Width, b.Height, b.Format, err)
	}
}

func mustFree(t *testing.T, a *Allocator, b *Buffer) {
	t.Helper()
	if err := a.Free(b); err != nil {
		t.Fatalf("Free() error = %v", err)
	}
}

func TestAllocate_BGRA8888(t *testing.T) {
	a := newAllocator(t)
	b := Buffer{Width: 480, Height: 480, Format: format.BGRA8888}
	mustAllocate(t, a, &b)
	defer mustFree(t, a, &b)

	if b.Stride != 1920 {
		t.Errorf("Stride = %d, want 1920", b.Stride)
	}
	if b.Height != 480 {
		t.Errorf("Height = %d, want 480", b.Height)
	}
	if b.Size != 921600 || len(b.Memory) != 921600 {
		t.Errorf("Size = %d, len(Memory) = %d, want 921600", b.Size, len(b.Memory))
	}
	if b.Address%64 != 0 {
		t.Errorf("Address %#x not 64-byte aligned", b.Address)
	}
	if !b.Allocated() {
		t.Error("Allocated() = false")
	}
	if got := len(b.Row(479)); got != 1920 {
		t.Errorf("len(Row(479)) = %d, want 1920", got)
	}
	if b.Row(480) != nil {
		t.Error("Row(480) should be nil")
	}
}

func TestAllocate_YUVHeightAndPlanes(t *testing.T) {
	a := newAllocator(t)
	b := Buffer{Width: 320, Height: 241, Format: format.NV12}
	mustAllocate(t, a, &b)
	defer mustFree(t, a, &b)

	if b.Height != 244 {
		t.Errorf("Height = %d, want 244", b.Height)
	}
	if !b.UVSwizzle || b.Tiled {
		t.Errorf("UVSwizzle = %v, Tiled = %v, want true, false", b.UVSwizzle, b.Tiled)
	}
	if b.Planes.UV != 320*244 {
		t.Errorf("Planes.UV = %d, want %d", b.Planes.UV, 320*244)
	}
	if b.Plane(b.Planes.UV) == nil {
		t.Error("Plane(UV) is nil")
	}
	if b.Plane(b.Planes.Alpha) != nil {
		t.Error("Plane(Alpha) should be nil for NV12")
	}

	tiled := Buffer{Width: 320, Height: 241, Format: format.YUY2Tiled}
	mustAllocate(t, a, &tiled)
	defer mustFree(t, a, &tiled)
	if tiled.Height != 244 || !tiled.Tiled {
		t.Errorf("tiled Height = %d, Tiled = %v, want 244, true", tiled.Height, tiled.Tiled)
	}
	if tiled.Planes != (layout.Planes{}) {
		t.Errorf("tiled Planes = %+v, want none", tiled.Planes)
	}
}

func TestAllocate_InvalidLeavesBufferUntouched(t *testing.T) {
	tests := []struct {
		name string
		buf  Buffer
	}{
		{"compressed granularity", Buffer{Width: 30, Height: 8, Format: format.RGBA8888ETC2EAC}},
		{"over size limit", Buffer{Width: 1 << 18, Height: 1<<20 + 1, Format: format.RGBA8888}},
		{"row product wraps", Buffer{Width: 1 << 62, Height: 1, Format: format.RGBA8888}},
		{"total wraps", Buffer{Width: 1 << 32, Height: 1 << 30, Format: format.RGBA8888}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limited := memory.NewLimited(memory.NewHeap(), 1<<20)
			a := newAllocator(t, WithMemory(limited))

			b := tt.buf
			err := a.Allocate(&b)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("Allocate() error = %v, want ErrInvalidArgument", err)
			}
			if !reflect.DeepEqual(b, tt.buf) {
				t.Errorf("buffer modified on failure: %+v", b)
			}
			if limited.InUse() != 0 {
				t.Errorf("InUse() = %d, no memory may be requested", limited.InUse())
			}
		})
	}
}

func TestAllocate_OutOfMemoryLeavesBufferUntouched(t *testing.T) {
	a := newAllocator(t, WithMemory(memory.NewLimited(memory.NewHeap(), 4096)))

	b := Buffer{Width: 480, Height: 480, Format: format.BGRA8888}
	before := b
	err := a.Allocate(&b)
	if !errors.Is(err, ErrOutOfMemory) {
		t.Fatalf("Allocate() error = %v, want ErrOutOfMemory", err)
	}
	if !reflect.DeepEqual(b, before) {
		t.Errorf("buffer modified on failure: %+v", b)
	}
}

func TestAllocate_ReallocateResetsPlanes(t *testing.T) {
	limited := memory.NewLimited(memory.NewHeap(), 1<<24)
	a := newAllocator(t, WithMemory(limited))

	b := Buffer{Width: 64, Height: 64, Format: format.ANV12}
	mustAllocate(t, a, &b)
	if b.Planes.Alpha == 0 {
		t.Fatal("ANV12 should have an alpha plane")
	}

	b.Format = format.RGBA8888
	mustAllocate(t, a, &b)
	if b.Planes != (layout.Planes{}) {
		t.Errorf("Planes = %+v, want reset", b.Planes)
	}
	if b.Stride != 64*4 {
		t.Errorf("Stride = %d, want %d", b.Stride, 64*4)
	}
	if limited.InUse() != b.Size {
		t.Errorf("InUse() = %d, want %d: old region not released", limited.InUse(), b.Size)
	}

	mustFree(t, a, &b)
	if limited.InUse() != 0 {
		t.Errorf("InUse() = %d after Free, want 0", limited.InUse())
	}
}

func TestAllocate_FailedReallocateKeepsOldBuffer(t *testing.T) {
	a := newAllocator(t, WithMemory(memory.NewLimited(memory.NewHeap(), 1<<16)))

	b := Buffer{Width: 16, Height: 16, Format: format.RGBA8888}
	mustAllocate(t, a, &b)
	kept := b

	b.Width, b.Height = 1024, 1024
	if err := a.Allocate(&b); !errors.Is(err, ErrOutOfMemory) {
		t.Fatalf("Allocate() error = %v, want ErrOutOfMemory", err)
	}
	if &b.Memory[0] != &kept.Memory[0] || b.Stride != kept.Stride || b.Size != kept.Size {
		t.Errorf("descriptor changed: stride %d size %d, want %d %d", b.Stride, b.Size, kept.Stride, kept.Size)
	}
}

func TestAllocate_Degenerate(t *testing.T) {
	a := newAllocator(t)
	b := Buffer{Width: 0, Height: 0, Format: format.RGBA8888}
	mustAllocate(t, a, &b)
	if b.Size != 64 {
		t.Errorf("Size = %d, want 64", b.Size)
	}
	mustFree(t, a, &b)
}

func TestAllocate_AddressAlignment(t *testing.T) {
	for _, align := range []int{4, 64, 256, 4096} {
		a := newAllocator(t, WithAddressAlignment(align))
		b := Buffer{Width: 33, Height: 7, Format: format.RGB888}
		mustAllocate(t, a, &b)
		if b.Address%uintptr(align) != 0 || b.Size%align != 0 {
			t.Errorf("align %d: Address %#x Size %d not aligned", align, b.Address, b.Size)
		}
		mustFree(t, a, &b)
	}
}

func TestAllocate_AllFormats(t *testing.T) {
	a := newAllocator(t)
	for _, f := range format.All() {
		t.Run(f.String(), func(t *testing.T) {
			b := Buffer{Width: 64, Height: 36, Format: f}
			mustAllocate(t, a, &b)
			if b.Size < b.Stride*b.Height {
				t.Errorf("Size %d < Stride*Height %d", b.Size, b.Stride*b.Height)
			}
			if b.Stride%f.Params().Alignment != 0 {
				t.Errorf("Stride %d not a multiple of %d", b.Stride, f.Params().Alignment)
			}
			mustFree(t, a, &b)
		})
	}
}

// panicValue runs fn and returns what it panicked with.
func panicValue(fn func()) (v any) {
	defer func() { v = recover() }()
	fn()
	return nil
}

func TestFree(t *testing.T) {
	a := newAllocator(t)
	b := Buffer{Width: 8, Height: 8, Format: format.A8}
	mustAllocate(t, a, &b)
	mustFree(t, a, &b)

	if !reflect.DeepEqual(b, Buffer{}) {
		t.Errorf("buffer not zeroed after Free: %+v", b)
	}
	if b.Allocated() {
		t.Error("Allocated() = true after Free")
	}

	const want = "vgbuf: Free of unallocated buffer"
	if v := panicValue(func() { _ = a.Free(&b) }); v != want {
		t.Errorf("second Free panicked with %v, want %q", v, want)
	}
	if v := panicValue(func() { _ = a.Free(nil) }); v == nil {
		t.Error("Free(nil) did not panic")
	}
}

type failingFree struct{ memory.Allocator }

func (failingFree) Free(memory.Block) error { return fmt.Errorf("device lost") }

func TestFree_SourceErrorStillZeroes(t *testing.T) {
	a := newAllocator(t, WithMemory(failingFree{memory.NewHeap()}))
	b := Buffer{Width: 8, Height: 8, Format: format.A8}
	mustAllocate(t, a, &b)

	err := a.Free(&b)
	if err == nil || !strings.Contains(err.Error(), "device lost") {
		t.Errorf("Free() error = %v, want device lost", err)
	}
	if !reflect.DeepEqual(b, Buffer{}) {
		t.Errorf("buffer not zeroed: %+v", b)
	}
}

func TestBuffer_Clear(t *testing.T) {
	a := newAllocator(t)
	b := Buffer{Width: 4, Height: 4, Format: format.RGBA8888}
	mustAllocate(t, a, &b)
	defer mustFree(t, a, &b)

	b.Memory[0], b.Memory[len(b.Memory)-1] = 1, 2
	b.Clear()
	for i, v := range b.Memory {
		if v != 0 {
			t.Fatalf("byte %d = %d after Clear", i, v)
		}
	}
	if s := b.String(); !strings.Contains(s, "4x4 VG_LITE_RGBA8888 stride=16") {
		t.Errorf("String() = %q", s)
	}
}
