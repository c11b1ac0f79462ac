// Package pcm - transforms between raw PCM flavors: linear samples in
// either byte order and G.711 companded bytes, with optional rate and
// channel conversion.
package pcm

import (
	"math"

	"github.com/easydarwin/easycapture/pkg/core"
	"github.com/easydarwin/easycapture/pkg/g711"
)

func ceil(x float32) int {
	d, fract := math.Modf(float64(x))
	if fract == 0.0 {
		return int(d)
	}
	return int(d) + 1
}

func Downsample(k float32) func([]int16) []int16 {
	var sampleN, sampleSum float32

	return func(src []int16) (dst []int16) {
		var i int
		dst = make([]int16, ceil((float32(len(src))+sampleN)/k))
		for _, sample := range src {
			sampleSum += float32(sample)
			sampleN++
			if sampleN >= k {
				dst[i] = int16(sampleSum / k)
				i++

				sampleSum = 0
				sampleN -= k
			}
		}
		return
	}
}

func Upsample(k float32) func([]int16) []int16 {
	var sampleN float32

	return func(src []int16) (dst []int16) {
		var i int
		dst = make([]int16, ceil(k*float32(len(src))))
		for _, sample := range src {
			sampleN += k
			for sampleN > 0 {
				dst[i] = sample
				i++

				sampleN -= 1
			}
		}
		return
	}
}

func FlipEndian(src []byte) (dst []byte) {
	var i, j int
	n := len(src)
	dst = make([]byte, n)
	for i < n {
		x := src[i]
		i++
		dst[j] = src[i]
		j++
		i++
		dst[j] = x
		j++
	}
	return
}

func readLPCM(name string) func([]byte) []int16 {
	switch name {
	case core.CodecPCML:
		return func(src []byte) (dst []int16) {
			var i, j int
			n := len(src)
			dst = make([]int16, n/2)
			for i < n {
				lo := src[i]
				i++
				hi := src[i]
				i++
				dst[j] = int16(hi)<<8 | int16(lo)
				j++
			}
			return
		}
	case core.CodecPCM:
		return func(src []byte) (dst []int16) {
			var i, j int
			n := len(src)
			dst = make([]int16, n/2)
			for i < n {
				hi := src[i]
				i++
				lo := src[i]
				i++
				dst[j] = int16(hi)<<8 | int16(lo)
				j++
			}
			return
		}
	case core.CodecPCMU:
		return func(src []byte) (dst []int16) {
			var i int
			dst = make([]int16, len(src))
			for _, sample := range src {
				dst[i] = g711.DecodeUlawFrame(sample)
				i++
			}
			return
		}
	case core.CodecPCMA:
		return func(src []byte) (dst []int16) {
			var i int
			dst = make([]int16, len(src))
			for _, sample := range src {
				dst[i] = g711.DecodeAlawFrame(sample)
				i++
			}
			return
		}
	}
	return nil
}

func writeLPCM(name string) func([]int16) []byte {
	switch name {
	case core.CodecPCML:
		return func(src []int16) (dst []byte) {
			var i int
			dst = make([]byte, len(src)*2)
			for _, sample := range src {
				dst[i] = byte(sample)
				i++
				dst[i] = byte(sample >> 8)
				i++
			}
			return
		}
	case core.CodecPCM:
		return func(src []int16) (dst []byte) {
			var i int
			dst = make([]byte, len(src)*2)
			for _, sample := range src {
				dst[i] = byte(sample >> 8)
				i++
				dst[i] = byte(sample)
				i++
			}
			return
		}
	case core.CodecPCMU:
		return func(src []int16) (dst []byte) {
			var i int
			dst = make([]byte, len(src))
			for _, sample := range src {
				dst[i] = g711.EncodeUlawFrame(sample)
				i++
			}
			return
		}
	case core.CodecPCMA:
		return func(src []int16) (dst []byte) {
			var i int
			dst = make([]byte, len(src))
			for _, sample := range src {
				dst[i] = g711.EncodeAlawFrame(sample)
				i++
			}
			return
		}
	}
	return nil
}

// Transcode - convert PCM samples from src codec to dst codec.
// Equal codecs pass through untouched and the A-law/u-law pair
// converts byte to byte without the intermediate linear samples.
func Transcode(dst, src *core.Codec) func([]byte) []byte {
	if src.ClockRate == dst.ClockRate && src.Channels <= 1 && dst.Channels <= 1 {
		switch {
		case src.Name == dst.Name:
			return func(b []byte) []byte {
				return b
			}
		case src.Name == core.CodecPCMA && dst.Name == core.CodecPCMU:
			return g711.Alaw2Ulaw
		case src.Name == core.CodecPCMU && dst.Name == core.CodecPCMA:
			return g711.Ulaw2Alaw
		case src.Name == core.CodecPCM && dst.Name == core.CodecPCML,
			src.Name == core.CodecPCML && dst.Name == core.CodecPCM:
			return FlipEndian
		}
	}

	reader := readLPCM(src.Name)
	writer := writeLPCM(dst.Name)

	var filters []func([]int16) []int16

	if src.Channels > 1 {
		filters = append(filters, Downsample(float32(src.Channels)))
	}

	if src.ClockRate > dst.ClockRate {
		filters = append(filters, Downsample(float32(src.ClockRate)/float32(dst.ClockRate)))
	} else if src.ClockRate < dst.ClockRate {
		filters = append(filters, Upsample(float32(dst.ClockRate)/float32(src.ClockRate)))
	}

	if dst.Channels > 1 {
		filters = append(filters, Upsample(float32(dst.Channels)))
	}

	return func(b []byte) []byte {
		samples := reader(b)
		for _, filter := range filters {
			samples = filter(samples)
		}
		return writer(samples)
	}
}
