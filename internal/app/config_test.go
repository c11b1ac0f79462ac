package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseConfString(t *testing.T) {
	require.Nil(t, parseConfString("easycapture.yaml"))
	require.Nil(t, parseConfString("level=trace"))

	b := parseConfString("log.level=trace")
	require.Equal(t, "{log: {level: trace}}", string(b))

	b = parseConfString("convert.0.codec=pcma/8000")
	require.Equal(t, "{convert: {0: {codec: pcma/8000}}}", string(b))
}

func TestLoadConfig(t *testing.T) {
	configs = [][]byte{
		[]byte("api:\n  listen: \":1984\"\n"),
		[]byte(`{api: {origin: "*"}}`),
	}
	defer func() { configs = nil }()

	var cfg struct {
		Mod struct {
			Listen string `yaml:"listen"`
			Origin string `yaml:"origin"`
		} `yaml:"api"`
	}

	LoadConfig(&cfg)

	require.Equal(t, ":1984", cfg.Mod.Listen)
	require.Equal(t, "*", cfg.Mod.Origin)
}
