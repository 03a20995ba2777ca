// Package vgbuf sizes and allocates pixel buffers for the VG-Lite vector
// graphics accelerator.
//
// # Overview
//
// The accelerator reads pixel data directly from memory, so every buffer it
// touches must follow its layout rules: rows padded to a per-format
// alignment, YUV heights rounded up to a multiple of four, block-compressed
// dimensions in whole tiles, and a base address aligned to 64 bytes.
// vgbuf computes those layouts and reserves memory that honors them.
//
// # Quick Start
//
//	import "github.com/gogpu/vgbuf"
//
//	alloc, err := vgbuf.NewAllocator()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	buf := vgbuf.Buffer{Width: 480, Height: 480, Format: format.BGRA8888}
//	if err := alloc.Allocate(&buf); err != nil {
//	    log.Fatal(err)
//	}
//	defer alloc.Free(&buf)
//
//	fmt.Println(buf.Stride, buf.Size) // 1920 921600
//
// # Packages
//
//   - format: the closed set of pixel formats, their layout parameters and
//     textual names
//   - layout: pure stride, height and size computation
//   - memory: aligned memory sources (Go heap, anonymous mmap, budgets)
//   - render: the driver contract and a CPU reference driver
//   - config: textual option parsing, batch files and process settings
//
// # Memory Sources
//
// By default buffers are carved from the Go heap. WithMemory selects
// another source:
//
//	mm, _ := memory.NewMmap()
//	alloc, _ := vgbuf.NewAllocator(
//	    vgbuf.WithMemory(memory.NewLimited(mm, 64<<20)),
//	)
//
// # Logging
//
// vgbuf is silent by default. SetLogger installs an *slog.Logger used by
// every package; allocation details are logged at Debug level.
//
// # Thread Safety
//
// An Allocator may be shared between goroutines as long as its memory
// source is safe for concurrent use; Heap, Mmap and Limited are. A Buffer
// belongs to one caller and must not be mutated concurrently. Pool is safe
// for concurrent use.
package vgbuf
