package api

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/easydarwin/easycapture/pkg/core"
	"github.com/easydarwin/easycapture/pkg/pcm"
	"github.com/gorilla/websocket"
	"github.com/pion/rtp"
)

var wsUp *websocket.Upgrader

func initWS(origin string) {
	wsUp = &websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 512 * 1024, // 512K
	}

	switch origin {
	case "":
		// same origin + ignore port
		wsUp.CheckOrigin = func(r *http.Request) bool {
			origin := r.Header["Origin"]
			if len(origin) == 0 {
				return true
			}
			o, err := url.Parse(origin[0])
			if err != nil {
				return false
			}
			if o.Host == r.Host {
				return true
			}
			log.Trace().Msgf("[api] ws origin=%s, host=%s", o.Host, r.Host)
			if i := strings.IndexByte(o.Host, ':'); i > 0 {
				return o.Host[:i] == r.Host
			}
			return false
		}
	case "*":
		// any origin
		wsUp.CheckOrigin = func(r *http.Request) bool {
			return true
		}
	}
}

// apiStream - websocket live transcoding, every binary message is a
// buffer in the src codec and the reply is the same audio in the dst
// codec
func apiStream(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	src := core.ParseCodecString(query.Get("src"))
	dst := core.ParseCodecString(query.Get("dst"))
	if src == nil || dst == nil {
		http.Error(w, "unknown codec", http.StatusBadRequest)
		return
	}

	ws, err := wsUp.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Caller().Msgf("host=%s origin=%s", r.Host, r.Header.Get("Origin"))
		return
	}
	defer ws.Close()

	log.Debug().Str("src", src.String()).Str("dst", dst.String()).Msg("[api] stream open")

	if query.Get("format") == "rtp" {
		streamRTP(ws, dst, src)
		return
	}

	f := pcm.Transcode(dst, src)

	for {
		msgType, b, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Debug().Err(err).Msg("[api] stream close")
			}
			return
		}

		if msgType != websocket.BinaryMessage {
			continue
		}

		_ = ws.SetWriteDeadline(time.Now().Add(time.Second * 5))
		if err = ws.WriteMessage(websocket.BinaryMessage, f(b)); err != nil {
			return
		}
	}
}

// streamRTP - same as apiStream, but every reply is a marshalled RTP
// packet. G.711 output is repacked into 1024 byte payloads, L16 goes
// out big endian per RFC 3551.
func streamRTP(ws *websocket.Conn, dst, src *core.Codec) {
	send := func(packet *rtp.Packet) {
		b, err := packet.Marshal()
		if err != nil {
			return
		}
		_ = ws.SetWriteDeadline(time.Now().Add(time.Second * 5))
		_ = ws.WriteMessage(websocket.BinaryMessage, b)
	}

	var handler core.HandlerFunc
	switch dst.Name {
	case core.CodecPCMA, core.CodecPCMU:
		handler = pcm.RepackG711(false, send)
	case core.CodecPCML:
		handler = pcm.LittleToBig(send)
	default:
		handler = send
	}
	handler = pcm.TranscodeHandler(dst, src, handler)

	for {
		msgType, b, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Debug().Err(err).Msg("[api] stream close")
			}
			return
		}

		if msgType != websocket.BinaryMessage {
			continue
		}

		handler(&rtp.Packet{
			Header:  rtp.Header{Version: 2, PayloadType: src.PayloadType},
			Payload: b,
		})
	}
}
