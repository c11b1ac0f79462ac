package core

import "github.com/pion/rtp"

type HandlerFunc func(packet *rtp.Packet)
