package pcm

import (
	"sync"
	"time"

	"github.com/easydarwin/easycapture/pkg/core"
	"github.com/pion/rtp"
)

// RepackG711 - Repack G.711 PCMA/PCMU into frames of size 1024.
// Some consumers glitch on small or unevenly sized payloads, some
// backchannel devices want a zero timestamp.
func RepackG711(zeroTS bool, handler core.HandlerFunc) core.HandlerFunc {
	const PacketSize = 1024

	var buf []byte
	var seq uint16
	var ts uint32

	var mu sync.Mutex

	return func(packet *rtp.Packet) {
		mu.Lock()

		buf = append(buf, packet.Payload...)
		if len(buf) < PacketSize {
			mu.Unlock()
			return
		}

		pkt := &rtp.Packet{
			Header: rtp.Header{
				Version:        2,
				Marker:         true,
				PayloadType:    packet.PayloadType,
				SequenceNumber: seq,
				SSRC:           packet.SSRC,
			},
			Payload: buf[:PacketSize],
		}

		seq++

		if !zeroTS {
			pkt.Timestamp = ts
			ts += PacketSize
		}

		buf = buf[PacketSize:]

		mu.Unlock()

		handler(pkt)
	}
}

// LittleToBig - convert PCM little endian to PCM big endian
func LittleToBig(handler core.HandlerFunc) core.HandlerFunc {
	return func(packet *rtp.Packet) {
		clone := *packet
		clone.Payload = FlipEndian(packet.Payload)
		handler(&clone)
	}
}

// TranscodeHandler - convert RTP packet payloads from src codec to
// dst codec, rescaling the timestamp for the new byte rate.
func TranscodeHandler(dst, src *core.Codec, handler core.HandlerFunc) core.HandlerFunc {
	var ts uint32
	k := float32(BytesPerFrame(dst)) / float32(BytesPerFrame(src))
	f := Transcode(dst, src)

	return func(packet *rtp.Packet) {
		ts += uint32(k * float32(len(packet.Payload)))

		clone := *packet
		clone.PayloadType = dst.PayloadType
		clone.Payload = f(packet.Payload)
		clone.Timestamp = ts
		handler(&clone)
	}
}

func BytesPerSample(codec *core.Codec) int {
	switch codec.Name {
	case core.CodecPCML, core.CodecPCM:
		return 2
	case core.CodecPCMU, core.CodecPCMA:
		return 1
	}
	return 0
}

func BytesPerFrame(codec *core.Codec) int {
	if codec.Channels <= 1 {
		return BytesPerSample(codec)
	}
	return int(codec.Channels) * BytesPerSample(codec)
}

func FramesPerDuration(codec *core.Codec, duration time.Duration) int {
	return int(time.Duration(codec.ClockRate) * duration / time.Second)
}

func BytesPerDuration(codec *core.Codec, duration time.Duration) int {
	return BytesPerFrame(codec) * FramesPerDuration(codec, duration)
}
