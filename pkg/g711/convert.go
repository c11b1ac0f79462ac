package g711

// Alaw2UlawFrame converts an A-law byte to a u-law byte without the
// intermediate linear sample. The piecewise bands approximate
// decode+re-encode, result can differ from the exact path by one
// quantization step.
func Alaw2UlawFrame(alaw uint8) uint8 {
	sign := alaw & 0x80
	alaw ^= sign
	alaw ^= 0x55

	var ulaw uint8
	if alaw < 45 {
		if alaw < 24 {
			if alaw < 8 {
				ulaw = alaw<<1 + 1
			} else {
				ulaw = alaw + 8
			}
		} else {
			if alaw < 32 {
				ulaw = alaw>>1 + 20
			} else {
				ulaw = alaw + 4
			}
		}
	} else {
		if alaw < 63 {
			if alaw < 47 {
				ulaw = alaw + 3
			} else {
				ulaw = alaw + 2
			}
		} else {
			if alaw < 79 {
				ulaw = alaw + 1
			} else {
				ulaw = alaw
			}
		}
	}

	ulaw ^= sign
	return ulaw ^ 0x7F
}

// Ulaw2AlawFrame converts a u-law byte to an A-law byte, mirror of
// Alaw2UlawFrame.
func Ulaw2AlawFrame(ulaw uint8) uint8 {
	sign := ulaw & 0x80
	ulaw ^= sign
	ulaw ^= 0x7F

	var alaw uint8
	if ulaw < 48 {
		if ulaw <= 32 {
			if ulaw <= 15 {
				alaw = ulaw >> 1
			} else {
				alaw = ulaw - 8
			}
		} else {
			if ulaw <= 35 {
				alaw = ulaw<<1 - 40
			} else {
				alaw = ulaw - 4
			}
		}
	} else {
		if ulaw <= 63 {
			if ulaw == 48 {
				alaw = ulaw - 3
			} else {
				alaw = ulaw - 2
			}
		} else {
			if ulaw <= 79 {
				alaw = ulaw - 1
			} else {
				alaw = ulaw
			}
		}
	}

	alaw ^= sign
	return alaw ^ 0x55
}
