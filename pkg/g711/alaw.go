package g711

// EncodeAlawFrame encodes a single 16-bit LPCM sample to an A-law byte.
func EncodeAlawFrame(lpcm int16) uint8 {
	p := int(lpcm)

	var a uint8
	if p < 0 {
		// ones' complement keeps the quantization symmetric
		// around the zero cross-over
		p = ^p
	} else {
		a = 0x80 // sign
	}

	// drop the minimum quantization step, then walk the segment ladder
	p >>= 4
	if p >= 0x20 {
		if p >= 0x100 {
			p >>= 4
			a += 0x40
		}
		if p >= 0x40 {
			p >>= 2
			a += 0x20
		}
		if p >= 0x20 {
			p >>= 1
			a += 0x10
		}
	}

	// a&0x70 - segment, p - interval number
	a += uint8(p)

	return a ^ 0x55 // alternate bits inverted for transmission
}

// DecodeAlawFrame decodes a single A-law byte to a 16-bit LPCM sample.
func DecodeAlawFrame(alaw uint8) int16 {
	alaw ^= 0x55

	sign := alaw & 0x80
	linear := int16(alaw&0x1F)<<4 + 8 // half bit centers value in the interval

	if alaw &= 0x7F; alaw >= 0x20 {
		linear |= 0x100 // implicit MSB
		linear <<= alaw>>4 - 1
	}

	if sign == 0 {
		return -linear
	}
	return linear
}
