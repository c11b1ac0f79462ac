// Package wav - read and write RIFF/WAVE headers for the PCM flavors
// this project handles. The codec layer stays format free, callers go
// through this package for file I/O.
// https://www.mmsp.ece.mcgill.ca/Documents/AudioFormats/WAVE/WAVE.html
package wav

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/easydarwin/easycapture/pkg/core"
)

const FourCC = "RIFF"

// WAVE format tags
const (
	formatPCM  = 1
	formatALaw = 6
	formatULaw = 7
)

// Header - build a streaming header (unknown RIFF and data sizes) for
// the codec. Returns nil for unsupported codecs.
func Header(codec *core.Codec) []byte {
	var format, size, extra byte

	switch codec.Name {
	case core.CodecPCML:
		format = formatPCM
		size = 2
	case core.CodecPCMA:
		format = formatALaw
		size = 1
		extra = 2
	case core.CodecPCMU:
		format = formatULaw
		size = 1
		extra = 2
	default:
		return nil
	}

	channels := byte(codec.Channels)
	if channels == 0 {
		channels = 1
	}

	b := make([]byte, 0, 46) // cap with extra
	b = append(b, "RIFF\xFF\xFF\xFF\xFFWAVEfmt "...)

	b = append(b, 0x10+extra, 0, 0, 0)
	b = append(b, format, 0)
	b = append(b, channels, 0)
	b = binary.LittleEndian.AppendUint32(b, codec.ClockRate)
	b = binary.LittleEndian.AppendUint32(b, uint32(size*channels)*codec.ClockRate)
	b = append(b, size*channels, 0)
	b = append(b, size*8, 0)
	if extra > 0 {
		b = append(b, 0, 0) // ExtraParamSize (if PCM, then doesn't exist)
	}

	b = append(b, "data\xFF\xFF\xFF\xFF"...)

	return b
}

// ReadHeader - consume chunks up to the start of the data chunk and
// return the codec described by the fmt chunk.
func ReadHeader(r io.Reader) (*core.Codec, error) {
	codec, _, err := readHeader(r)
	return codec, err
}

func readHeader(r io.Reader) (*core.Codec, uint32, error) {
	// skip Master RIFF chunk
	if _, err := io.ReadFull(r, make([]byte, 12)); err != nil {
		return nil, 0, err
	}

	var codec core.Codec
	var dataSize uint32

	for {
		chunkID, size, data, err := readChunk(r)
		if err != nil {
			return nil, 0, err
		}

		if chunkID == "data" {
			dataSize = size
			break
		}

		// 16 bytes is the minimal PCM fmt chunk, shorter is malformed
		if chunkID == "fmt " && len(data) >= 16 {
			switch data[0] {
			case formatPCM:
				codec.Name = core.CodecPCML
			case formatALaw:
				codec.Name = core.CodecPCMA
			case formatULaw:
				codec.Name = core.CodecPCMU
			}

			codec.Channels = uint16(data[2])
			codec.ClockRate = binary.LittleEndian.Uint32(data[4:])
		}
	}

	if codec.Name == "" {
		return nil, 0, errors.New("wav: unsupported codec")
	}

	return &codec, dataSize, nil
}

func readChunk(r io.Reader) (chunkID string, size uint32, data []byte, err error) {
	b := make([]byte, 8)
	if _, err = io.ReadFull(r, b); err != nil {
		return
	}

	chunkID = string(b[:4])
	size = binary.LittleEndian.Uint32(b[4:])

	if chunkID != "data" {
		data = make([]byte, size)
		_, err = io.ReadFull(r, data)
	}

	return
}
