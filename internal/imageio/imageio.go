// Package imageio converts render targets to images and writes them to
// disk.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gogpu/vgbuf/format"
	"github.com/gogpu/vgbuf/internal/logger"
	"github.com/gogpu/vgbuf/render"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned for pixel formats that have no image
	// representation here.
	ErrUnsupportedFormat = errors.New("imageio: unsupported pixel format")

	// ErrUnknownKind is returned for unrecognized file kinds.
	ErrUnknownKind = errors.New("imageio: unknown file kind")

	// ErrNotAllocated is returned for targets without memory.
	ErrNotAllocated = errors.New("imageio: buffer not allocated")

	// ErrShortPixels is returned when a target's memory is smaller than
	// its dimensions and stride require.
	ErrShortPixels = errors.New("imageio: pixel memory too small")
)

// Kind is an output file encoding.
type Kind uint8

const (
	PNG Kind = iota
	BMP
	TIFF
)

func (k Kind) String() string {
	switch k {
	case PNG:
		return "png"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// KindFromPath picks the encoding from the file extension.
func KindFromPath(path string) (Kind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, filepath.Ext(path))
	}
}

// channels gives the byte index of r, g, b and a within one pixel. An
// alpha index of -1 means the pixel is opaque.
type channels struct {
	bpp        int
	r, g, b, a int
}

var layouts = map[format.PixelFormat]channels{
	format.RGB888:   {3, 0, 1, 2, -1},
	format.BGR888:   {3, 2, 1, 0, -1},
	format.RGBA8888: {4, 0, 1, 2, 3},
	format.RGBX8888: {4, 0, 1, 2, -1},
	format.ARGB8888: {4, 1, 2, 3, 0},
	format.XRGB8888: {4, 1, 2, 3, -1},
	format.BGRA8888: {4, 2, 1, 0, 3},
	format.BGRX8888: {4, 2, 1, 0, -1},
	format.ABGR8888: {4, 3, 2, 1, 0},
	format.XBGR8888: {4, 3, 2, 1, -1},
}

// Supported reports whether ToImage can convert buffers of format f.
func Supported(f format.PixelFormat) bool {
	if f == format.A8 || f == format.L8 {
		return true
	}
	_, ok := layouts[f]
	return ok
}

// pixelFormat resolves the pixel layout of t. Targets that know their
// accelerator format report it through a PixelFormat method; others are
// decoded from their WebGPU texture format.
func pixelFormat(t render.RenderTarget) (format.PixelFormat, error) {
	if pf, ok := t.(interface{ PixelFormat() format.PixelFormat }); ok {
		return pf.PixelFormat(), nil
	}
	switch tf := t.Format(); tf {
	case gputypes.TextureFormatRGBA8Unorm:
		return format.RGBA8888, nil
	case gputypes.TextureFormatBGRA8Unorm:
		return format.BGRA8888, nil
	case gputypes.TextureFormatR8Unorm:
		return format.L8, nil
	default:
		return 0, fmt.Errorf("%w: texture format %s", ErrUnsupportedFormat, tf)
	}
}

// ToImage copies the pixels of t into a new image. Color formats produce
// *image.NRGBA and A8/L8 produce *image.Gray. Rows are read at t.Stride().
func ToImage(t render.RenderTarget) (image.Image, error) {
	if t == nil || t.Pixels() == nil {
		return nil, ErrNotAllocated
	}
	f, err := pixelFormat(t)
	if err != nil {
		return nil, err
	}

	bpp := 1
	c, color := layouts[f]
	switch {
	case color:
		bpp = c.bpp
	case f != format.A8 && f != format.L8:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}

	w, h, stride, pix := t.Width(), t.Height(), t.Stride(), t.Pixels()
	if h > 0 && len(pix) < (h-1)*stride+w*bpp {
		return nil, fmt.Errorf("%w: %dx%d %s at stride %d needs %d bytes, have %d",
			ErrShortPixels, w, h, f, stride, (h-1)*stride+w*bpp, len(pix))
	}
	rect := image.Rect(0, 0, w, h)

	if !color {
		img := image.NewGray(rect)
		for y := range h {
			copy(img.Pix[y*img.Stride:y*img.Stride+w], pix[y*stride:])
		}
		return img, nil
	}

	img := image.NewNRGBA(rect)
	for y := range h {
		src := pix[y*stride:]
		dst := img.Pix[y*img.Stride:]
		for x := range w {
			p := src[x*bpp:]
			d := dst[x*4 : x*4+4]
			d[0], d[1], d[2] = p[c.r], p[c.g], p[c.b]
			if c.a < 0 {
				d[3] = 0xFF
			} else {
				d[3] = p[c.a]
			}
		}
	}
	return img, nil
}

// Encode writes img to w in the given encoding.
func Encode(w io.Writer, img image.Image, kind Kind) error {
	var err error
	switch kind {
	case PNG:
		err = png.Encode(w, img)
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %s: %w", kind, err)
	}
	return nil
}

// Save writes the pixels of t to path, choosing the encoding from the
// extension.
func Save(path string, t render.RenderTarget) error {
	kind, err := KindFromPath(path)
	if err != nil {
		return err
	}
	img, err := ToImage(t)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}
	if err := Encode(f, img, kind); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("imageio: close file: %w", err)
	}

	logger.Get().Info("buffer saved", "path", path,
		"width", t.Width(), "height", t.Height(), "kind", kind.String())
	return nil
}
