package api

import (
	"bytes"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/pion/rtp"
	"github.com/stretchr/testify/require"
)

func TestApiTranscode(t *testing.T) {
	alaw, _ := hex.DecodeString("7CD4FFED95939E9B8584868083838080")
	ulaw, _ := hex.DecodeString("52FCD1C5BEB8B3B0AFAEACAAA9A9AAAA")

	r := httptest.NewRequest("POST", "/api/transcode?src=pcma&dst=pcmu", bytes.NewReader(alaw))
	w := httptest.NewRecorder()
	apiTranscode(w, r)

	require.Equal(t, 200, w.Code)
	require.Equal(t, MimeBinary, w.Header().Get("Content-Type"))
	require.Equal(t, ulaw, w.Body.Bytes())
}

func TestApiTranscodeBadRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/transcode?src=pcma&dst=pcmu", nil)
	w := httptest.NewRecorder()
	apiTranscode(w, r)
	require.Equal(t, 400, w.Code)

	r = httptest.NewRequest("POST", "/api/transcode?src=opus&dst=pcmu", nil)
	w = httptest.NewRecorder()
	apiTranscode(w, r)
	require.Equal(t, 400, w.Code)
}

func TestApiStream(t *testing.T) {
	initWS("*")

	server := httptest.NewServer(http.HandlerFunc(apiStream))
	defer server.Close()

	u := "ws" + strings.TrimPrefix(server.URL, "http") + "/?src=pcma&dst=pcml"
	ws, _, err := websocket.DefaultDialer.Dial(u, nil)
	require.NoError(t, err)
	defer ws.Close()

	alaw, _ := hex.DecodeString("7CD4FFED95939E9B")
	lpcm, _ := hex.DecodeString("D0FC1800500320064008400BC00D400F")

	require.NoError(t, ws.WriteMessage(websocket.BinaryMessage, alaw))

	msgType, b, err := ws.ReadMessage()
	require.NoError(t, err)
	require.Equal(t, websocket.BinaryMessage, msgType)
	require.Equal(t, lpcm, b)
}

func TestApiStreamRTP(t *testing.T) {
	initWS("*")

	server := httptest.NewServer(http.HandlerFunc(apiStream))
	defer server.Close()

	u := "ws" + strings.TrimPrefix(server.URL, "http") + "/?src=pcma&dst=pcmu&format=rtp"
	ws, _, err := websocket.DefaultDialer.Dial(u, nil)
	require.NoError(t, err)
	defer ws.Close()

	// 1024 ulaw bytes fill one repacked payload
	alaw := bytes.Repeat([]byte{0xD5}, 512)
	require.NoError(t, ws.WriteMessage(websocket.BinaryMessage, alaw))
	require.NoError(t, ws.WriteMessage(websocket.BinaryMessage, alaw))

	msgType, b, err := ws.ReadMessage()
	require.NoError(t, err)
	require.Equal(t, websocket.BinaryMessage, msgType)

	var packet rtp.Packet
	require.NoError(t, packet.Unmarshal(b))
	require.Equal(t, uint8(0), packet.PayloadType)
	require.Equal(t, uint16(0), packet.SequenceNumber)
	require.Len(t, packet.Payload, 1024)
	require.Equal(t, uint8(0xFE), packet.Payload[0]) // direct conversion of alaw zero
}
