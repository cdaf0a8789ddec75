package filter

// Integer luminance weights per thousand (ITU-R BT.601).
const (
	lumR = 299
	lumG = 587
	lumB = 114
)

// Grayscale returns a copy of src with R, G and B replaced by the
// integer luminance floor((R*299 + G*587 + B*114) / 1000).
// Alpha is carried over unchanged.
func Grayscale(src []uint8) []uint8 {
	dst := make([]uint8, len(src))
	for i := 0; i+3 < len(src); i += 4 {
		gray := uint8((uint32(src[i])*lumR + uint32(src[i+1])*lumG + uint32(src[i+2])*lumB) / 1000)
		dst[i+0] = gray
		dst[i+1] = gray
		dst[i+2] = gray
		dst[i+3] = src[i+3]
	}
	return dst
}

// Invert returns a copy of src with each color channel replaced by
// 255-v. Alpha is carried over unchanged.
func Invert(src []uint8) []uint8 {
	dst := make([]uint8, len(src))
	for i := 0; i+3 < len(src); i += 4 {
		dst[i+0] = 255 - src[i+0]
		dst[i+1] = 255 - src[i+1]
		dst[i+2] = 255 - src[i+2]
		dst[i+3] = src[i+3]
	}
	return dst
}
