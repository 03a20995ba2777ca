package imageio

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gogpu/vgbuf"
	"github.com/gogpu/vgbuf/format"
	"github.com/gogpu/vgbuf/render"
)

func allocated(t *testing.T, w, h int, f format.PixelFormat) *vgbuf.Buffer {
	t.Helper()
	a, err := vgbuf.NewAllocator()
	if err != nil {
		t.Fatal(err)
	}
	b := &vgbuf.Buffer{Width: w, Height: h, Format: f}
	if err := a.Allocate(b); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = a.Free(b) })
	return b
}

func target(t *testing.T, b *vgbuf.Buffer) render.RenderTarget {
	t.Helper()
	tgt, err := render.NewBufferTarget(b)
	if err != nil {
		t.Fatal(err)
	}
	return tgt
}

// texture is a render target known only by its WebGPU format.
type texture struct {
	w, h, stride int
	tf           gputypes.TextureFormat
	pix          []byte
}

func (x texture) Width() int                     { return x.w }
func (x texture) Height() int                    { return x.h }
func (x texture) Format() gputypes.TextureFormat { return x.tf }
func (x texture) Pixels() []byte                 { return x.pix }
func (x texture) Stride() int                    { return x.stride }

func TestToImage_ChannelOrder(t *testing.T) {
	tests := []struct {
		format format.PixelFormat
		pixel  []byte
	}{
		{format.RGBA8888, []byte{10, 20, 30, 40}},
		{format.BGRA8888, []byte{30, 20, 10, 40}},
		{format.ARGB8888, []byte{40, 10, 20, 30}},
		{format.ABGR8888, []byte{40, 30, 20, 10}},
		{format.RGBX8888, []byte{10, 20, 30, 0}},
		{format.XBGR8888, []byte{0, 30, 20, 10}},
		{format.RGB888, []byte{10, 20, 30}},
		{format.BGR888, []byte{30, 20, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			b := allocated(t, 3, 2, tt.format)
			copy(b.Row(1)[2*len(tt.pixel):], tt.pixel)

			img, err := ToImage(target(t, b))
			if err != nil {
				t.Fatal(err)
			}
			got := img.(*image.NRGBA).NRGBAAt(2, 1)
			wantA := uint8(40)
			if len(tt.pixel) == 3 || tt.format == format.RGBX8888 || tt.format == format.XBGR8888 {
				wantA = 0xFF
			}
			if got.R != 10 || got.G != 20 || got.B != 30 || got.A != wantA {
				t.Errorf("pixel = %+v, want {10 20 30 %d}", got, wantA)
			}
		})
	}
}

func TestToImage_StridePadding(t *testing.T) {
	// 3 pixels of RGB888 is 9 bytes per row, padded to a stride of 12.
	b := allocated(t, 3, 3, format.RGB888)
	if b.Stride != 12 {
		t.Fatalf("stride = %d, want 12", b.Stride)
	}
	for i := range b.Memory {
		b.Memory[i] = 0xEE
	}
	copy(b.Row(2), []byte{1, 2, 3})

	img, err := ToImage(target(t, b))
	if err != nil {
		t.Fatal(err)
	}
	if c := img.(*image.NRGBA).NRGBAAt(0, 2); c.R != 1 || c.G != 2 || c.B != 3 {
		t.Errorf("row 2 pixel = %+v", c)
	}
}

func TestToImage_Gray(t *testing.T) {
	b := allocated(t, 5, 2, format.L8)
	b.Row(1)[4] = 99
	img, err := ToImage(target(t, b))
	if err != nil {
		t.Fatal(err)
	}
	if got := img.(*image.Gray).GrayAt(4, 1).Y; got != 99 {
		t.Errorf("gray = %d, want 99", got)
	}
}

func TestToImage_Errors(t *testing.T) {
	if _, err := ToImage(texture{w: 4, h: 4, stride: 16, tf: gputypes.TextureFormatRGBA8Unorm}); !errors.Is(err, ErrNotAllocated) {
		t.Errorf("unallocated err = %v", err)
	}
	if _, err := ToImage(nil); !errors.Is(err, ErrNotAllocated) {
		t.Errorf("nil target err = %v", err)
	}
	short := texture{w: 4, h: 4, stride: 16, tf: gputypes.TextureFormatRGBA8Unorm, pix: make([]byte, 60)}
	if _, err := ToImage(short); !errors.Is(err, ErrShortPixels) {
		t.Errorf("short pixels err = %v", err)
	}
	depth := texture{w: 1, h: 1, stride: 4, tf: gputypes.TextureFormatDepth32Float, pix: make([]byte, 4)}
	if _, err := ToImage(depth); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("depth texture err = %v", err)
	}
	b := allocated(t, 16, 4, format.NV12)
	if _, err := ToImage(target(t, b)); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("NV12 err = %v", err)
	}
	if Supported(format.NV12) || !Supported(format.A8) || !Supported(format.XRGB8888) {
		t.Error("Supported mismatch")
	}
}

func TestToImage_TextureTargets(t *testing.T) {
	tests := []struct {
		tf    gputypes.TextureFormat
		bpp   int
		pixel []byte
		want  [4]uint8
	}{
		{gputypes.TextureFormatRGBA8Unorm, 4, []byte{10, 20, 30, 40}, [4]uint8{10, 20, 30, 40}},
		{gputypes.TextureFormatBGRA8Unorm, 4, []byte{30, 20, 10, 40}, [4]uint8{10, 20, 30, 40}},
		{gputypes.TextureFormatR8Unorm, 1, []byte{77}, [4]uint8{77, 77, 77, 0xFF}},
	}
	for _, tt := range tests {
		t.Run(tt.tf.String(), func(t *testing.T) {
			// Two rows of two pixels with the stride padded by 8 bytes.
			stride := 2*tt.bpp + 8
			x := texture{w: 2, h: 2, stride: stride, tf: tt.tf, pix: make([]byte, 2*stride)}
			copy(x.pix[stride+tt.bpp:], tt.pixel)

			img, err := ToImage(x)
			if err != nil {
				t.Fatal(err)
			}
			r, g, b, a := img.At(1, 1).RGBA()
			got := [4]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
			if got != tt.want {
				t.Errorf("pixel = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKindFromPath(t *testing.T) {
	for path, want := range map[string]Kind{"a.png": PNG, "B.BMP": BMP, "c.tif": TIFF, "d.tiff": TIFF} {
		got, err := KindFromPath(path)
		if err != nil || got != want {
			t.Errorf("KindFromPath(%q) = %v, %v", path, got, err)
		}
	}
	if _, err := KindFromPath("out.jpg"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("jpg err = %v", err)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	b := allocated(t, 4, 4, format.BGRA8888)
	copy(b.Row(0), []byte{0, 0, 255, 255})

	dir := t.TempDir()
	decoders := map[string]func([]byte) (image.Image, error){
		"out.png":  func(d []byte) (image.Image, error) { return png.Decode(bytes.NewReader(d)) },
		"out.bmp":  func(d []byte) (image.Image, error) { return bmp.Decode(bytes.NewReader(d)) },
		"out.tiff": func(d []byte) (image.Image, error) { return tiff.Decode(bytes.NewReader(d)) },
	}
	for name, decode := range decoders {
		path := filepath.Join(dir, name)
		if err := Save(path, target(t, b)); err != nil {
			t.Fatalf("Save(%s): %v", name, err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		img, err := decode(data)
		if err != nil {
			t.Fatalf("decode %s: %v", name, err)
		}
		r, g, bl, a := img.At(0, 0).RGBA()
		if r>>8 != 255 || g != 0 || bl != 0 || a>>8 != 255 {
			t.Errorf("%s: pixel = %d %d %d %d, want red", name, r>>8, g>>8, bl>>8, a>>8)
		}
		if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 4 {
			t.Errorf("%s: bounds = %v", name, img.Bounds())
		}
	}
}
