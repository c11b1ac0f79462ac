// Package g711 implements the ITU-T G.711 companding algorithms:
// A-law and u-law encoding of 16-bit linear PCM and direct conversion
// between the two laws.
// https://www.itu.int/rec/T-REC-G.711
package g711

import "io"

// Linear PCM buffers are little endian 16-bit samples. Companded
// buffers hold one byte per sample. A companded byte carries no tag
// for the law that produced it - the caller tracks that.

// EncodeAlaw encodes an LPCM buffer to A-law.
func EncodeAlaw(lpcm []byte) []byte {
	alaw := make([]byte, len(lpcm)/2)
	_, _ = EncodeAlawTo(alaw, lpcm)
	return alaw
}

// DecodeAlaw decodes an A-law buffer to LPCM.
func DecodeAlaw(alaw []byte) []byte {
	lpcm := make([]byte, len(alaw)*2)
	_, _ = DecodeAlawTo(lpcm, alaw)
	return lpcm
}

// EncodeUlaw encodes an LPCM buffer to u-law.
func EncodeUlaw(lpcm []byte) []byte {
	ulaw := make([]byte, len(lpcm)/2)
	_, _ = EncodeUlawTo(ulaw, lpcm)
	return ulaw
}

// DecodeUlaw decodes a u-law buffer to LPCM.
func DecodeUlaw(ulaw []byte) []byte {
	lpcm := make([]byte, len(ulaw)*2)
	_, _ = DecodeUlawTo(lpcm, ulaw)
	return lpcm
}

// Alaw2Ulaw converts an A-law buffer to u-law.
func Alaw2Ulaw(alaw []byte) []byte {
	ulaw := make([]byte, len(alaw))
	_, _ = Alaw2UlawTo(ulaw, alaw)
	return ulaw
}

// Ulaw2Alaw converts a u-law buffer to A-law.
func Ulaw2Alaw(ulaw []byte) []byte {
	alaw := make([]byte, len(ulaw))
	_, _ = Ulaw2AlawTo(alaw, ulaw)
	return alaw
}

// EncodeAlawTo encodes an LPCM buffer into alaw and returns the number
// of bytes written. Fails with io.ErrShortBuffer before writing
// anything if the destination can't hold the result.
func EncodeAlawTo(alaw, lpcm []byte) (n int, err error) {
	samples := len(lpcm) / 2
	if len(alaw) < samples {
		return 0, io.ErrShortBuffer
	}
	for i, j := 0, 0; i < samples; i, j = i+1, j+2 {
		alaw[i] = EncodeAlawFrame(int16(lpcm[j]) | int16(lpcm[j+1])<<8)
	}
	return samples, nil
}

// DecodeAlawTo decodes an A-law buffer into lpcm and returns the
// number of bytes written (twice the sample count).
func DecodeAlawTo(lpcm, alaw []byte) (n int, err error) {
	if len(lpcm) < len(alaw)*2 {
		return 0, io.ErrShortBuffer
	}
	for i, j := 0, 0; i < len(alaw); i, j = i+1, j+2 {
		sample := DecodeAlawFrame(alaw[i])
		lpcm[j] = byte(sample)
		lpcm[j+1] = byte(sample >> 8)
	}
	return len(alaw) * 2, nil
}

// EncodeUlawTo encodes an LPCM buffer into ulaw and returns the number
// of bytes written.
func EncodeUlawTo(ulaw, lpcm []byte) (n int, err error) {
	samples := len(lpcm) / 2
	if len(ulaw) < samples {
		return 0, io.ErrShortBuffer
	}
	for i, j := 0, 0; i < samples; i, j = i+1, j+2 {
		ulaw[i] = EncodeUlawFrame(int16(lpcm[j]) | int16(lpcm[j+1])<<8)
	}
	return samples, nil
}

// DecodeUlawTo decodes a u-law buffer into lpcm and returns the number
// of bytes written (twice the sample count).
func DecodeUlawTo(lpcm, ulaw []byte) (n int, err error) {
	if len(lpcm) < len(ulaw)*2 {
		return 0, io.ErrShortBuffer
	}
	for i, j := 0, 0; i < len(ulaw); i, j = i+1, j+2 {
		sample := DecodeUlawFrame(ulaw[i])
		lpcm[j] = byte(sample)
		lpcm[j+1] = byte(sample >> 8)
	}
	return len(ulaw) * 2, nil
}

// Alaw2UlawTo converts an A-law buffer into ulaw and returns the
// number of bytes written.
func Alaw2UlawTo(ulaw, alaw []byte) (n int, err error) {
	if len(ulaw) < len(alaw) {
		return 0, io.ErrShortBuffer
	}
	for i, b := range alaw {
		ulaw[i] = Alaw2UlawFrame(b)
	}
	return len(alaw), nil
}

// Ulaw2AlawTo converts a u-law buffer into alaw and returns the
// number of bytes written.
func Ulaw2AlawTo(alaw, ulaw []byte) (n int, err error) {
	if len(alaw) < len(ulaw) {
		return 0, io.ErrShortBuffer
	}
	for i, b := range ulaw {
		alaw[i] = Ulaw2AlawFrame(b)
	}
	return len(ulaw), nil
}
