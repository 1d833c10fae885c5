package blend

// div255 divides x by 255 exactly without using division.
//
// Formula: ((x + 128) + ((x + 128) >> 8)) >> 8
//
// This is the rounding variant of Alvy Ray Smith's formula. It matches
// round(x/255) for every product of two bytes.
func div255(x uint32) uint32 {
	t := x + 128
	return (t + (t >> 8)) >> 8
}

// mulDiv255 multiplies two bytes and divides by 255 with rounding.
func mulDiv255(a, b byte) byte {
	return byte(div255(uint32(a) * uint32(b)))
}

// MulDiv255 is the exported form of mulDiv255, used to scale a premultiplied
// channel by an 8-bit coverage value.
func MulDiv255(a, b byte) byte {
	return mulDiv255(a, b)
}

// addClamp adds two bytes and clamps to 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}
