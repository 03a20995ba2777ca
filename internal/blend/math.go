package blend

// mul returns a*b/255 rounded to nearest, without a division.
//
// Formula: t = a*b + 128; (t + t>>8) >> 8
func mul(a, b uint8) uint8 {
	t := uint32(a)*uint32(b) + 128
	return uint8((t + t>>8) >> 8)
}

// div returns c*255/a rounded to nearest and clamped to 255. a must be
// non-zero.
func div(c, a uint8) uint8 {
	v := (uint32(c)*255 + uint32(a)/2) / uint32(a)
	return uint8(min(v, 255))
}

func addClamp(a, b uint8) uint8 {
	return uint8(min(uint16(a)+uint16(b), 255))
}

func subClamp(a, b uint8) uint8 {
	if b >= a {
		return 0
	}
	return a - b
}
