package push

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/simplehac/simpletoolkit/internal/model"
)

// PathDownloadEvent is the route the backend pushes session updates to
const PathDownloadEvent = "/push/download"

// maxPayloadBytes bounds a single push payload
const maxPayloadBytes = 1 << 20

// Sink receives progress events
type Sink interface {
	OnProgressEvent(s *model.DownloadSession)
}

// NewProgressHandler returns a handler that decodes a session payload and
// hands it to sink. Responds 202 on accept, 400 on an invalid payload and
// 405 for anything but POST.
func NewProgressHandler(sink Sink) http.HandlerFunc {
	type response struct {
		Status string `json:"status"`
		ID     string `json:"id"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var s model.DownloadSession
		if err := json.NewDecoder(io.LimitReader(r.Body, maxPayloadBytes)).Decode(&s); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		s.ID = strings.TrimSpace(s.ID)
		if s.ID == "" {
			http.Error(w, "download id missing", http.StatusBadRequest)
			return
		}
		if s.Status != "" && !s.Status.IsValid() {
			log.Printf("Push for %s has unknown status %q", s.ID, s.Status)
			http.Error(w, "unknown status", http.StatusBadRequest)
			return
		}

		sink.OnProgressEvent(&s)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(response{Status: "accepted", ID: s.ID})
	}
}

// WithCORS adds permissive CORS headers and answers preflight requests
func WithCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
