package wav

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/easydarwin/easycapture/pkg/core"
)

// Writer - stream samples into a WAV file. The header goes out with
// placeholder sizes, Close seeks back and patches them.
type Writer struct {
	wr     io.WriteSeeker
	header int
	size   uint32
}

func NewWriter(wr io.WriteSeeker, codec *core.Codec) (*Writer, error) {
	b := Header(codec)
	if b == nil {
		return nil, errors.New("wav: unsupported codec: " + codec.Name)
	}

	if _, err := wr.Write(b); err != nil {
		return nil, err
	}

	return &Writer{wr: wr, header: len(b)}, nil
}

func (w *Writer) Write(p []byte) (n int, err error) {
	n, err = w.wr.Write(p)
	w.size += uint32(n)
	return
}

func (w *Writer) Close() error {
	b := make([]byte, 4)

	// RIFF chunk size
	binary.LittleEndian.PutUint32(b, uint32(w.header)-8+w.size)
	if _, err := w.wr.Seek(4, io.SeekStart); err != nil {
		return err
	}
	if _, err := w.wr.Write(b); err != nil {
		return err
	}

	// data chunk size
	binary.LittleEndian.PutUint32(b, w.size)
	if _, err := w.wr.Seek(int64(w.header)-4, io.SeekStart); err != nil {
		return err
	}
	if _, err := w.wr.Write(b); err != nil {
		return err
	}

	_, err := w.wr.Seek(int64(w.header)+int64(w.size), io.SeekStart)
	return err
}
