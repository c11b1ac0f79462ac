package g711

const ulawBias = 0x84
const ulawClip = 0x7F00 // 15 bit

// EncodeUlawFrame encodes a single 16-bit LPCM sample to a u-law byte.
func EncodeUlawFrame(lpcm int16) uint8 {
	p := int(lpcm)

	var u uint8
	if p < 0 {
		p = ^p // same ones' complement trick as A-law
		u = 0x80
	}

	if p += ulawBias; p > ulawClip {
		p = ulawClip
	}

	// 13-bit working precision, then the segment ladder
	p >>= 3
	if p >= 0x100 {
		p >>= 4
		u |= 0x40
	}
	if p >= 0x40 {
		p >>= 2
		u |= 0x20
	}
	if p >= 0x20 {
		p >>= 1
		u |= 0x10
	}

	u |= uint8(p) & 0x0F

	return ^u // all bits inverted for transmission
}

// DecodeUlawFrame decodes a single u-law byte to a 16-bit LPCM sample.
func DecodeUlawFrame(ulaw uint8) int16 {
	ulaw = ^ulaw

	linear := int16(ulaw&0x0F)<<3 | ulawBias // MSB plus half bit
	linear <<= ulaw >> 4 & 7
	linear -= ulawBias

	if ulaw&0x80 != 0 {
		return -linear
	}
	return linear
}
