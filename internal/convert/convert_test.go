package convert

import (
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/easydarwin/easycapture/pkg/core"
	"github.com/easydarwin/easycapture/pkg/wav"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.wav")
	output := filepath.Join(dir, "out.wav")

	alaw, _ := hex.DecodeString("7CD4FFED95939E9B8584868083838080")
	ulaw, _ := hex.DecodeString("52FCD1C5BEB8B3B0AFAEACAAA9A9AAAA")

	f, err := os.Create(input)
	require.NoError(t, err)
	wr, err := wav.NewWriter(f, &core.Codec{Name: core.CodecPCMA, ClockRate: 8000, Channels: 1})
	require.NoError(t, err)
	_, err = wr.Write(alaw)
	require.NoError(t, err)
	require.NoError(t, wr.Close())
	require.NoError(t, f.Close())

	err = Run(&Job{Input: input, Output: output, Codec: "pcmu/8000"})
	require.NoError(t, err)

	f, err = os.Open(output)
	require.NoError(t, err)
	defer f.Close()

	codec, err := wav.ReadHeader(f)
	require.NoError(t, err)
	require.Equal(t, core.CodecPCMU, codec.Name)
	require.Equal(t, uint32(8000), codec.ClockRate)

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	require.Equal(t, ulaw, data)
}

func TestRunTrailingChunk(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.wav")
	output := filepath.Join(dir, "out.wav")

	alaw, _ := hex.DecodeString("7CD4FFED95939E9B8584868083838080")
	ulaw, _ := hex.DecodeString("52FCD1C5BEB8B3B0AFAEACAAA9A9AAAA")

	f, err := os.Create(input)
	require.NoError(t, err)
	wr, err := wav.NewWriter(f, &core.Codec{Name: core.CodecPCMA, ClockRate: 8000, Channels: 1})
	require.NoError(t, err)
	_, err = wr.Write(alaw)
	require.NoError(t, err)
	require.NoError(t, wr.Close())
	require.NoError(t, f.Close())

	// INFO tag after the data chunk, must not be converted as audio
	f, err = os.OpenFile(input, os.O_WRONLY|os.O_APPEND, 0)
	require.NoError(t, err)
	_, err = f.WriteString("LIST\x04\x00\x00\x00INFO")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	err = Run(&Job{Input: input, Output: output, Codec: "pcmu/8000"})
	require.NoError(t, err)

	f, err = os.Open(output)
	require.NoError(t, err)
	defer f.Close()

	_, err = wav.ReadHeader(f)
	require.NoError(t, err)

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	require.Equal(t, ulaw, data)
}

func TestRunUnknownCodec(t *testing.T) {
	err := Run(&Job{Input: "in.wav", Output: "out.wav", Codec: "mp3"})
	require.Error(t, err)
}
