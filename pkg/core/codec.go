package core

import (
	"strconv"
	"strings"
)

const (
	CodecPCMU = "PCMU" // payloadType: 0
	CodecPCMA = "PCMA" // payloadType: 8
	CodecPCM  = "L16"  // Linear PCM (big endian)

	CodecPCML = "PCML" // Linear PCM (little endian)

	CodecAll = "ALL"
	CodecAny = "ANY"
)

const PayloadTypeRAW uint8 = 255

type Codec struct {
	Name        string // PCMU, PCMA, L16, PCML
	ClockRate   uint32 // 8000, 16000...
	Channels    uint16 // 0, 1, 2
	PayloadType uint8
}

func (c *Codec) String() string {
	s := c.Name
	if c.ClockRate != 0 {
		s += "/" + strconv.Itoa(int(c.ClockRate))
	}
	if c.Channels > 0 {
		s += "/" + strconv.Itoa(int(c.Channels))
	}
	return s
}

func (c *Codec) Clone() *Codec {
	clone := *c
	return &clone
}

func (c *Codec) Match(remote *Codec) bool {
	switch remote.Name {
	case CodecAll, CodecAny:
		return true
	}

	return c.Name == remote.Name &&
		(c.ClockRate == remote.ClockRate || remote.ClockRate == 0) &&
		(c.Channels == remote.Channels || remote.Channels == 0)
}

// https://en.wikipedia.org/wiki/RTP_payload_formats
func (c *Codec) RTPPayloadType() uint8 {
	switch c.Name {
	case CodecPCMU:
		return 0
	case CodecPCMA:
		return 8
	}
	return PayloadTypeRAW
}

// ParseCodecString - parse codec from string, ex: "pcma", "PCMU/8000",
// "l16/16000/2"
func ParseCodecString(s string) *Codec {
	ss := strings.SplitN(strings.ToUpper(s), "/", 3)

	codec := &Codec{Name: ss[0], ClockRate: 8000, Channels: 1}

	switch codec.Name {
	case CodecPCMA, CodecPCMU, CodecPCM, CodecPCML:
	default:
		return nil
	}

	if len(ss) > 1 {
		i, err := strconv.Atoi(ss[1])
		if err != nil {
			return nil
		}
		codec.ClockRate = uint32(i)
	}

	if len(ss) > 2 {
		i, err := strconv.Atoi(ss[2])
		if err != nil {
			return nil
		}
		codec.Channels = uint16(i)
	}

	codec.PayloadType = codec.RTPPayloadType()

	return codec
}
