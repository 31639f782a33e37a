package xhttp

import (
	"net/http"

	go_json "github.com/goccy/go-json"
)

// StatusOK is the status field of every successful device response.
const StatusOK = "ok"

func WriteJSON(w http.ResponseWriter, status int, data any) {
	SetHeaderContentTypeApplicationJSON(w)
	w.WriteHeader(status)
	_ = go_json.NewEncoder(w).Encode(data)
}

func WriteOK(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, data)
}

// WriteAck writes the bare {"status":"ok"} acknowledgement.
func WriteAck(w http.ResponseWriter) {
	WriteOK(w, map[string]string{"status": StatusOK})
}
