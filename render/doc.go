// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render is the driver invocation layer between vgbuf buffers and
// a vector-graphics accelerator.
//
// The accelerator itself is an external collaborator: this package only
// defines the Driver contract, the parameter types its operations take, and
// the name resolvers that translate configuration strings into them.
//
// # Core Interfaces
//
//   - Driver: clear, blit, draw and finish operations over vgbuf.Buffers
//   - RenderTarget: read access to finished pixels, used by persistence
//     and by host GPU frameworks
//
// # Implementations
//
//   - SoftwareDriver: CPU reference driver implementing clears and
//     blended blits. Path drawing is left to hardware and reports ErrNotSupported.
//   - BufferTarget: RenderTarget over an allocated vgbuf.Buffer
//
// # Usage
//
//	drv := render.NewSoftwareDriver()
//	if err := drv.Clear(&target, nil, 0xFFFFFFFF); err != nil {
//	    return err
//	}
//	if err := drv.Finish(); err != nil {
//	    return err
//	}
//
// # Thread Safety
//
// Drivers are NOT thread-safe. A buffer must not be freed while an
// operation that references it is outstanding; call Finish first.
package render
