package format

import "github.com/gogpu/gputypes"

// TextureFormat returns the WebGPU texture format with the same memory
// layout as f, or gputypes.TextureFormatUndefined when there is none.
// Host GPU frameworks use it to wrap a buffer as a texture without
// conversion.
func (f PixelFormat) TextureFormat() gputypes.TextureFormat {
	switch f {
	case RGBA8888, SRGBA8888, LRGBA8888:
		return gputypes.TextureFormatRGBA8Unorm
	case BGRA8888, SBGRA8888, LBGRA8888:
		return gputypes.TextureFormatBGRA8Unorm
	case A8, L8, SL8, LL8, VGA8:
		return gputypes.TextureFormatR8Unorm
	default:
		return gputypes.TextureFormatUndefined
	}
}
