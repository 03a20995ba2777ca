package format

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/vgbuf/internal/errs"
	"github.com/gogpu/vgbuf/internal/logger"
)

func TestParams(t *testing.T) {
	tests := []struct {
		format PixelFormat
		want   Params
	}{
		{L8, Params{1, 1, 4}},
		{A8, Params{1, 1, 4}},
		{RGBA8888ETC2EAC, Params{1, 1, 4}},
		{A4, Params{1, 2, 4}},
		{Index1, Params{1, 8, 8}},
		{Index2, Params{1, 4, 8}},
		{Index4, Params{1, 2, 8}},
		{Index8, Params{1, 1, 1}},
		{RGB565, Params{2, 1, 4}},
		{BGRA5551, Params{2, 1, 4}},
		{ARGB4444, Params{2, 1, 4}},
		{YUY2, Params{2, 1, 4}},
		{YUY2Tiled, Params{2, 1, 4}},
		{AYUY2, Params{2, 1, 4}},
		{AYUY2Tiled, Params{2, 1, 4}},
		{NV16, Params{2, 1, 4}},
		{ABGR8565Planar, Params{2, 1, 4}},
		{RGBA5658Planar, Params{2, 1, 4}},
		{RGBA8888, Params{4, 1, 4}},
		{BGRA8888, Params{4, 1, 4}},
		{XRGB8888, Params{4, 1, 4}},
		{XBGR8888, Params{4, 1, 4}},
		{NV12, Params{3, 1, 4}},
		{NV12Tiled, Params{3, 1, 4}},
		{ANV12, Params{4, 1, 4}},
		{ANV12Tiled, Params{4, 1, 4}},
		{RGBA2222, Params{1, 1, 4}},
		{RGB888, Params{3, 1, 4}},
		{BGR888, Params{3, 1, 4}},
		{ABGR8565, Params{3, 1, 4}},
		{RGBA5658, Params{3, 1, 4}},
		{SRGBA8888Pre, Params{4, 1, 4}},
		{LABGR8888, Params{4, 1, 4}},
		{SRGB565, Params{2, 1, 4}},
		{SL8, Params{1, 1, 4}},
		{VGA4, Params{1, 2, 4}},
		{VGBW1, Params{1, 8, 4}},
		{VGA1, Params{1, 8, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.format.Params())
		})
	}
}

func TestParamsTotal(t *testing.T) {
	for _, f := range All() {
		p := f.Params()
		assert.Positive(t, p.Multiplier, f.String())
		assert.Positive(t, p.Divisor, f.String())
		assert.Positive(t, p.Alignment, f.String())
		assert.Equal(t, 0, p.Alignment&(p.Alignment-1), "%s alignment must be a power of two", f)
	}

	// Out-of-range identifiers get the default parameters, not a panic.
	assert.Equal(t, Params{1, 1, 4}, PixelFormat(9999).Params())
	assert.Equal(t, PlanesNone, PixelFormat(9999).Planes())
}

func TestNameRoundTrip(t *testing.T) {
	seen := make(map[string]bool)
	for _, f := range All() {
		name := f.String()
		require.False(t, seen[name], "duplicate name %s", name)
		seen[name] = true

		assert.Equal(t, f, Parse(name))
		assert.Equal(t, name, Parse(name).String())
	}
	assert.Len(t, Names(), len(All()))
}

func TestParseUnknown(t *testing.T) {
	var buf bytes.Buffer
	logger.Set(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { logger.Set(nil) })

	for _, name := range []string{"", "BGRA8888", "vg_lite_bgra8888", "VG_LITE_BGRA8888 ", "VG_LITE_NOPE"} {
		assert.Equal(t, Default, Parse(name), "Parse(%q)", name)
	}
	assert.Contains(t, buf.String(), "unknown buffer format")
	assert.Contains(t, buf.String(), "VG_LITE_NOPE")
}

func TestLookup(t *testing.T) {
	f, err := Lookup("VG_LITE_NV12_TILED")
	require.NoError(t, err)
	assert.Equal(t, NV12Tiled, f)

	_, err = Lookup("VG_LITE_RGBA9999")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.UnrecognizedIdentifier))
}

func TestStringOutOfRange(t *testing.T) {
	assert.Equal(t, "PixelFormat(4096)", PixelFormat(4096).String())
	assert.False(t, PixelFormat(4096).IsValid())
	assert.True(t, RGBA8888.IsValid())
}

func TestRanges(t *testing.T) {
	swizzle := []PixelFormat{YUY2, ANV12, AYUY2, NV12, YV12, YV24, YV16, NV16}
	tiled := []PixelFormat{YUY2Tiled, NV12Tiled, ANV12Tiled, AYUY2Tiled}

	for _, f := range swizzle {
		assert.True(t, f.NeedsUVSwizzle(), f.String())
		assert.False(t, f.IsTiled(), f.String())
	}
	for _, f := range tiled {
		assert.True(t, f.IsTiled(), f.String())
		assert.False(t, f.NeedsUVSwizzle(), f.String())
	}
	for _, f := range []PixelFormat{YUYV, RGBA8888, RGBA2222, Index8, VGA1} {
		assert.False(t, f.NeedsUVSwizzle(), f.String())
		assert.False(t, f.IsTiled(), f.String())
	}
}

func TestFamilies(t *testing.T) {
	assert.Equal(t, FamilyCompressed, RGBA8888ETC2EAC.Family())
	assert.True(t, RGBA8888ETC2EAC.IsCompressed())
	assert.Equal(t, FamilyIndexed, Index4.Family())
	assert.Equal(t, FamilyYUV, NV12.Family())
	assert.Equal(t, FamilyOpenVG, VGBW1.Family())
	assert.Equal(t, FamilyAlpha, A8.Family())
	assert.Equal(t, "yuv", FamilyYUV.String())

	assert.True(t, NV12.IsPlanar())
	assert.Equal(t, PlanesANV12, ANV12Tiled.Planes())
	assert.False(t, YUY2.IsPlanar())
	assert.False(t, ABGR8565Planar.IsPlanar())
}

func TestTextureFormat(t *testing.T) {
	assert.Equal(t, gputypes.TextureFormatRGBA8Unorm, RGBA8888.TextureFormat())
	assert.Equal(t, gputypes.TextureFormatBGRA8Unorm, BGRA8888.TextureFormat())
	assert.Equal(t, gputypes.TextureFormatR8Unorm, A8.TextureFormat())
	assert.Equal(t, gputypes.TextureFormatUndefined, NV12.TextureFormat())
	assert.Equal(t, gputypes.TextureFormatUndefined, RGB565.TextureFormat())
}
