package format

// Params are the byte-layout parameters of a format.
//
// A row of width pixels occupies width*Multiplier/Divisor bytes before it is
// padded to a multiple of Alignment.
type Params struct {
	Multiplier int
	Divisor    int
	Alignment  int
}

// defaultParams apply to any format the table does not override.
var defaultParams = Params{Multiplier: 1, Divisor: 1, Alignment: 4}

type entry struct {
	name   string
	family Family
	params Params
	planes PlaneLayout
}

func perPixel(mul int) Params { return Params{Multiplier: mul, Divisor: 1, Alignment: 4} }

func packed(name string, mul int) entry {
	return entry{name: name, family: FamilyPacked, params: perPixel(mul)}
}

func openvg(name string, mul int) entry {
	return entry{name: name, family: FamilyOpenVG, params: perPixel(mul)}
}

func yuv(name string, mul int, planes PlaneLayout) entry {
	return entry{name: name, family: FamilyYUV, params: perPixel(mul), planes: planes}
}

func indexed(name string, div, align int) entry {
	return entry{name: name, family: FamilyIndexed, params: Params{Multiplier: 1, Divisor: div, Alignment: align}}
}

// table is indexed by PixelFormat. Its length pins it to the enumeration:
// adding a format without a row fails to compile.
var table = [formatCount]entry{
	RGBA8888: packed("VG_LITE_RGBA8888", 4),
	BGRA8888: packed("VG_LITE_BGRA8888", 4),
	RGBX8888: packed("VG_LITE_RGBX8888", 4),
	BGRX8888: packed("VG_LITE_BGRX8888", 4),
	RGB565:   packed("VG_LITE_RGB565", 2),
	BGR565:   packed("VG_LITE_BGR565", 2),
	RGBA4444: packed("VG_LITE_RGBA4444", 2),
	BGRA4444: packed("VG_LITE_BGRA4444", 2),
	BGRA5551: packed("VG_LITE_BGRA5551", 2),
	A4:       {name: "VG_LITE_A4", family: FamilyAlpha, params: Params{Multiplier: 1, Divisor: 2, Alignment: 4}},
	A8:       {name: "VG_LITE_A8", family: FamilyAlpha, params: defaultParams},
	L8:       {name: "VG_LITE_L8", family: FamilyAlpha, params: defaultParams},
	YUYV:     yuv("VG_LITE_YUYV", 2, PlanesNone),

	YUY2:  yuv("VG_LITE_YUY2", 2, PlanesNone),
	ANV12: yuv("VG_LITE_ANV12", 4, PlanesANV12),
	// AYUY2 memory is YUY2 plus alpha; the alpha plane is not counted here.
	AYUY2: yuv("VG_LITE_AYUY2", 2, PlanesNone),
	NV12:  yuv("VG_LITE_NV12", 3, PlanesNV12),
	YV12:  yuv("VG_LITE_YV12", 3, PlanesYV12),
	YV24:  yuv("VG_LITE_YV24", 3, PlanesYV24),
	YV16:  yuv("VG_LITE_YV16", 2, PlanesYV16),
	NV16:  yuv("VG_LITE_NV16", 2, PlanesNV16),

	YUY2Tiled:  yuv("VG_LITE_YUY2_TILED", 2, PlanesNone),
	NV12Tiled:  yuv("VG_LITE_NV12_TILED", 3, PlanesNV12),
	ANV12Tiled: yuv("VG_LITE_ANV12_TILED", 4, PlanesANV12),
	AYUY2Tiled: yuv("VG_LITE_AYUY2_TILED", 2, PlanesNone),

	RGBA2222:        packed("VG_LITE_RGBA2222", 1),
	BGRA2222:        packed("VG_LITE_BGRA2222", 1),
	ABGR2222:        packed("VG_LITE_ABGR2222", 1),
	ARGB2222:        packed("VG_LITE_ARGB2222", 1),
	ABGR4444:        packed("VG_LITE_ABGR4444", 2),
	ARGB4444:        packed("VG_LITE_ARGB4444", 2),
	ABGR8888:        packed("VG_LITE_ABGR8888", 4),
	ARGB8888:        packed("VG_LITE_ARGB8888", 4),
	ABGR1555:        packed("VG_LITE_ABGR1555", 2),
	RGBA5551:        packed("VG_LITE_RGBA5551", 2),
	ARGB1555:        packed("VG_LITE_ARGB1555", 2),
	XBGR8888:        packed("VG_LITE_XBGR8888", 4),
	XRGB8888:        packed("VG_LITE_XRGB8888", 4),
	RGBA8888ETC2EAC: {name: "VG_LITE_RGBA8888_ETC2_EAC", family: FamilyCompressed, params: defaultParams},
	RGB888:          packed("VG_LITE_RGB888", 3),
	BGR888:          packed("VG_LITE_BGR888", 3),
	ABGR8565:        packed("VG_LITE_ABGR8565", 3),
	BGRA5658:        packed("VG_LITE_BGRA5658", 3),
	ARGB8565:        packed("VG_LITE_ARGB8565", 3),
	RGBA5658:        packed("VG_LITE_RGBA5658", 3),
	// Planar 8565 stores an RGB565 plane; the stride describes that plane.
	ABGR8565Planar: packed("VG_LITE_ABGR8565_PLANAR", 2),
	BGRA5658Planar: packed("VG_LITE_BGRA5658_PLANAR", 2),
	ARGB8565Planar: packed("VG_LITE_ARGB8565_PLANAR", 2),
	RGBA5658Planar: packed("VG_LITE_RGBA5658_PLANAR", 2),

	Index1: indexed("VG_LITE_INDEX_1", 8, 8),
	Index2: indexed("VG_LITE_INDEX_2", 4, 8),
	Index4: indexed("VG_LITE_INDEX_4", 2, 8),
	Index8: indexed("VG_LITE_INDEX_8", 1, 1),

	SRGBX8888:    openvg("VG_sRGBX_8888", 4),
	SRGBA8888:    openvg("VG_sRGBA_8888", 4),
	SRGBA8888Pre: openvg("VG_sRGBA_8888_PRE", 4),
	LRGBX8888:    openvg("VG_lRGBX_8888", 4),
	LRGBA8888:    openvg("VG_lRGBA_8888", 4),
	LRGBA8888Pre: openvg("VG_lRGBA_8888_PRE", 4),
	SXRGB8888:    openvg("VG_sXRGB_8888", 4),
	SARGB8888:    openvg("VG_sARGB_8888", 4),
	SARGB8888Pre: openvg("VG_sARGB_8888_PRE", 4),
	LXRGB8888:    openvg("VG_lXRGB_8888", 4),
	LARGB8888:    openvg("VG_lARGB_8888", 4),
	LARGB8888Pre: openvg("VG_lARGB_8888_PRE", 4),
	SBGRX8888:    openvg("VG_sBGRX_8888", 4),
	SBGRA8888:    openvg("VG_sBGRA_8888", 4),
	SBGRA8888Pre: openvg("VG_sBGRA_8888_PRE", 4),
	LBGRX8888:    openvg("VG_lBGRX_8888", 4),
	LBGRA8888:    openvg("VG_lBGRA_8888", 4),
	LBGRA8888Pre: openvg("VG_lBGRA_8888_PRE", 4),
	SXBGR8888:    openvg("VG_sXBGR_8888", 4),
	SABGR8888:    openvg("VG_sABGR_8888", 4),
	SABGR8888Pre: openvg("VG_sABGR_8888_PRE", 4),
	LXBGR8888:    openvg("VG_lXBGR_8888", 4),
	LABGR8888:    openvg("VG_lABGR_8888", 4),
	LABGR8888Pre: openvg("VG_lABGR_8888_PRE", 4),
	SRGBA5551:    openvg("VG_sRGBA_5551", 2),
	SRGBA4444:    openvg("VG_sRGBA_4444", 2),
	SARGB1555:    openvg("VG_sARGB_1555", 2),
	SARGB4444:    openvg("VG_sARGB_4444", 2),
	SBGRA5551:    openvg("VG_sBGRA_5551", 2),
	SBGRA4444:    openvg("VG_sBGRA_4444", 2),
	SABGR1555:    openvg("VG_sABGR_1555", 2),
	SABGR4444:    openvg("VG_sABGR_4444", 2),
	SRGB565:      openvg("VG_sRGB_565", 2),
	SBGR565:      openvg("VG_sBGR_565", 2),
	SL8:          openvg("VG_sL_8", 1),
	LL8:          openvg("VG_lL_8", 1),
	VGA8:         openvg("VG_A_8", 1),
	VGBW1:        {name: "VG_BW_1", family: FamilyOpenVG, params: Params{Multiplier: 1, Divisor: 8, Alignment: 4}},
	VGA4:         {name: "VG_A_4", family: FamilyOpenVG, params: Params{Multiplier: 1, Divisor: 2, Alignment: 4}},
	VGA1:         {name: "VG_A_1", family: FamilyOpenVG, params: Params{Multiplier: 1, Divisor: 8, Alignment: 4}},
}

func (f PixelFormat) entry() entry {
	if f >= formatCount {
		return entry{params: defaultParams}
	}
	return table[f]
}

// Params returns the layout parameters of f. Values outside the enumeration
// get the default parameters {1, 1, 4}.
func (f PixelFormat) Params() Params {
	return f.entry().params
}
