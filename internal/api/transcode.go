package api

import (
	"io"
	"net/http"

	"github.com/easydarwin/easycapture/pkg/core"
	"github.com/easydarwin/easycapture/pkg/pcm"
)

const MimeBinary = "application/octet-stream"

// apiTranscode - one shot transform: request body holds samples in the
// src codec, response body holds them in the dst codec
func apiTranscode(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "", http.StatusBadRequest)
		return
	}

	query := r.URL.Query()
	src := core.ParseCodecString(query.Get("src"))
	dst := core.ParseCodecString(query.Get("dst"))
	if src == nil || dst == nil {
		http.Error(w, "unknown codec", http.StatusBadRequest)
		return
	}

	b, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f := pcm.Transcode(dst, src)
	Response(w, f(b), MimeBinary)
}
