package wav

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/easydarwin/easycapture/pkg/core"
	"github.com/stretchr/testify/require"
)

func TestHeader(t *testing.T) {
	codec := &core.Codec{Name: core.CodecPCMA, ClockRate: 8000, Channels: 1}

	b := Header(codec)
	require.Len(t, b, 46)
	require.Equal(t, FourCC, string(b[:4]))
	require.Equal(t, "WAVE", string(b[8:12]))
	require.Equal(t, uint16(formatALaw), binary.LittleEndian.Uint16(b[20:]))
	require.Equal(t, uint32(8000), binary.LittleEndian.Uint32(b[24:]))
	require.Equal(t, uint32(8000), binary.LittleEndian.Uint32(b[28:])) // byte rate

	require.Len(t, Header(&core.Codec{Name: core.CodecPCML, ClockRate: 16000}), 44)
	require.Nil(t, Header(&core.Codec{Name: core.CodecPCM, ClockRate: 8000}))
}

func TestHeaderRoundTrip(t *testing.T) {
	for _, name := range []string{core.CodecPCMA, core.CodecPCMU, core.CodecPCML} {
		codec := &core.Codec{Name: name, ClockRate: 8000, Channels: 1}

		rd := bytes.NewReader(Header(codec))
		parsed, err := ReadHeader(rd)
		require.NoError(t, err)
		require.Equal(t, codec, parsed)
	}
}

func TestReadHeaderUnsupported(t *testing.T) {
	codec := &core.Codec{Name: core.CodecPCMA, ClockRate: 8000, Channels: 1}
	b := Header(codec)
	b[20] = 0x55 // unknown format tag

	_, err := ReadHeader(bytes.NewReader(b))
	require.Error(t, err)
}

func TestReadHeaderTruncatedFmt(t *testing.T) {
	b := []byte("RIFF\x14\x00\x00\x00WAVE")
	b = append(b, "fmt \x04\x00\x00\x00\x06\x00\x01\x00"...) // fmt cut short
	b = append(b, "data\x00\x00\x00\x00"...)

	_, err := ReadHeader(bytes.NewReader(b))
	require.Error(t, err)
}

func TestReader(t *testing.T) {
	codec := &core.Codec{Name: core.CodecPCMA, ClockRate: 8000, Channels: 1}
	payload := bytes.Repeat([]byte{0xD5}, 16)

	var file bytes.Buffer
	file.Write(Header(codec))
	binary.LittleEndian.PutUint32(file.Bytes()[42:], 16) // patch data size
	file.Write(payload)
	file.WriteString("LIST\x04\x00\x00\x00INFO") // trailing chunk

	rd, err := NewReader(bytes.NewReader(file.Bytes()))
	require.NoError(t, err)
	require.Equal(t, codec, rd.Codec())

	data, err := io.ReadAll(rd)
	require.NoError(t, err)
	require.Equal(t, payload, data)
}

func TestWriter(t *testing.T) {
	name := filepath.Join(t.TempDir(), "test.wav")

	f, err := os.Create(name)
	require.NoError(t, err)

	codec := &core.Codec{Name: core.CodecPCMU, ClockRate: 8000, Channels: 1}
	wr, err := NewWriter(f, codec)
	require.NoError(t, err)

	payload := bytes.Repeat([]byte{0xFF}, 160)
	n, err := wr.Write(payload)
	require.NoError(t, err)
	require.Equal(t, 160, n)

	require.NoError(t, wr.Close())
	require.NoError(t, f.Close())

	f, err = os.Open(name)
	require.NoError(t, err)
	defer f.Close()

	parsed, err := ReadHeader(f)
	require.NoError(t, err)
	require.Equal(t, codec, parsed)

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	require.Equal(t, payload, data)

	// sizes patched in place
	b, err := os.ReadFile(name)
	require.NoError(t, err)
	require.Equal(t, uint32(len(b)-8), binary.LittleEndian.Uint32(b[4:]))
	require.Equal(t, uint32(160), binary.LittleEndian.Uint32(b[42:]))
}
