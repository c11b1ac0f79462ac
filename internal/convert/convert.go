// Package convert - one shot WAV conversion jobs from the `convert:`
// config section, run once at startup.
package convert

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/easydarwin/easycapture/internal/app"
	"github.com/easydarwin/easycapture/pkg/core"
	"github.com/easydarwin/easycapture/pkg/pcm"
	"github.com/easydarwin/easycapture/pkg/wav"
)

type Job struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Codec  string `yaml:"codec"`
}

func Init() {
	var cfg struct {
		Jobs []Job `yaml:"convert"`
	}

	app.LoadConfig(&cfg)

	if len(cfg.Jobs) == 0 {
		return
	}

	log := app.GetLogger("convert")

	for i := range cfg.Jobs {
		job := &cfg.Jobs[i]
		if err := Run(job); err != nil {
			log.Error().Err(err).Str("input", job.Input).Msg("[convert] job")
			continue
		}
		log.Info().Str("input", job.Input).Str("output", job.Output).Str("codec", job.Codec).Msg("[convert] done")
	}
}

func Run(job *Job) error {
	dst := core.ParseCodecString(job.Codec)
	if dst == nil {
		return errors.New("convert: unknown codec: " + job.Codec)
	}

	in, err := os.Open(job.Input)
	if err != nil {
		return err
	}
	defer in.Close()

	rd, err := wav.NewReader(in)
	if err != nil {
		return err
	}
	src := rd.Codec()

	out, err := os.Create(job.Output)
	if err != nil {
		return err
	}
	defer out.Close()

	wr, err := wav.NewWriter(out, dst)
	if err != nil {
		return err
	}

	transcode := pcm.Transcode(dst, src)

	// full frames only, one second at a time
	buf := make([]byte, pcm.BytesPerDuration(src, time.Second))

	for {
		n, err := io.ReadFull(rd, buf)
		if n > 0 {
			n -= n % pcm.BytesPerFrame(src) // drop truncated tail sample
			if _, werr := wr.Write(transcode(buf[:n])); werr != nil {
				return werr
			}
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return err
		}
	}

	if err = wr.Close(); err != nil {
		return err
	}
	return out.Close()
}
