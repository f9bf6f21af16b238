package push

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/simplehac/simpletoolkit/internal/model"
)

type recordingSink struct {
	mu     sync.Mutex
	events []*model.DownloadSession
}

func (r *recordingSink) OnProgressEvent(s *model.DownloadSession) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, s)
}

func (r *recordingSink) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func TestProgressHandler(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		body       string
		wantStatus int
		wantEvents int
	}{
		{"accepted", http.MethodPost, `{"id":"dl-1","status":"downloading","progress":12.5,"speed":"2 MB/s","eta":"00:10","downloaded":1024,"total_size":4096}`, http.StatusAccepted, 1},
		{"completed", http.MethodPost, `{"id":"dl-1","status":"completed","progress":100}`, http.StatusAccepted, 1},
		{"wrong method", http.MethodGet, ``, http.StatusMethodNotAllowed, 0},
		{"invalid json", http.MethodPost, `{"id":`, http.StatusBadRequest, 0},
		{"missing id", http.MethodPost, `{"status":"completed"}`, http.StatusBadRequest, 0},
		{"unknown status", http.MethodPost, `{"id":"dl-1","status":"paused"}`, http.StatusBadRequest, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			sink := &recordingSink{}
			handler := NewProgressHandler(sink)

			req := httptest.NewRequest(test.method, PathDownloadEvent, strings.NewReader(test.body))
			rec := httptest.NewRecorder()
			handler(rec, req)

			if rec.Code != test.wantStatus {
				t.Errorf("Status = %d, expected %d", rec.Code, test.wantStatus)
			}
			if sink.count() != test.wantEvents {
				t.Errorf("Events = %d, expected %d", sink.count(), test.wantEvents)
			}
		})
	}
}

func TestProgressHandler_DecodesPayload(t *testing.T) {
	sink := &recordingSink{}
	body := `{"id":"dl-1","url":"http://x/test.iso","path":"/tmp/out.iso","filename":"Test","status":"downloading","progress":150,"downloaded":2048,"total_size":4096}`

	rec := httptest.NewRecorder()
	NewProgressHandler(sink)(rec, httptest.NewRequest(http.MethodPost, PathDownloadEvent, strings.NewReader(body)))

	if sink.count() != 1 {
		t.Fatalf("Expected one event, got %d", sink.count())
	}
	s := sink.events[0]
	if s.Path != "/tmp/out.iso" || s.Downloaded != 2048 || s.TotalSize != 4096 {
		t.Errorf("Unexpected decoded session: %+v", s)
	}
	if s.ClampedProgress() != 100 {
		t.Errorf("ClampedProgress() = %v, expected 100", s.ClampedProgress())
	}
}

func TestWithCORS(t *testing.T) {
	sink := &recordingSink{}
	handler := WithCORS(NewProgressHandler(sink))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, PathDownloadEvent, nil))

	if rec.Code != http.StatusNoContent {
		t.Errorf("Preflight status = %d, expected %d", rec.Code, http.StatusNoContent)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q, expected *", got)
	}
	if sink.count() != 0 {
		t.Error("Preflight should not reach the handler")
	}
}
