package wav

import (
	"io"

	"github.com/easydarwin/easycapture/pkg/core"
)

// Reader - reads the data chunk of a WAV file, bounded by the declared
// chunk size so trailing chunks (LIST, id3) are not mistaken for audio.
// Streaming headers declare size 0xFFFFFFFF and read until EOF.
type Reader struct {
	rd    io.Reader
	codec *core.Codec
	left  uint32
}

func NewReader(rd io.Reader) (*Reader, error) {
	codec, size, err := readHeader(rd)
	if err != nil {
		return nil, err
	}
	return &Reader{rd: rd, codec: codec, left: size}, nil
}

func (r *Reader) Codec() *core.Codec {
	return r.codec
}

func (r *Reader) Read(p []byte) (n int, err error) {
	if r.left == 0 {
		return 0, io.EOF
	}
	if uint32(len(p)) > r.left {
		p = p[:r.left]
	}
	n, err = r.rd.Read(p)
	r.left -= uint32(n)
	return
}
