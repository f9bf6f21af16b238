package model

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Progress bounds in percent
const (
	MinProgress = 0
	MaxProgress = 100
)

// DownloadSession represents one tracked download attempt, from the moment
// the user triggers it until it reaches a terminal state. The JSON shape is
// the one the backend pushes with progress events.
type DownloadSession struct {
	ID         string        `json:"id"`
	URL        string        `json:"url"`
	Path       string        `json:"path"`
	Filename   string        `json:"filename"`
	Status     SessionStatus `json:"status"`
	Progress   float64       `json:"progress"`             // percent, 0 to 100
	Speed      string        `json:"speed,omitempty"`      // human readable speed (e.g., "1.2 MB/s")
	ETA        string        `json:"eta,omitempty"`        // human readable remaining time
	Downloaded int64         `json:"downloaded,omitempty"` // bytes received so far
	TotalSize  int64         `json:"total_size,omitempty"` // bytes, 0 if unknown
	Message    string        `json:"message,omitempty"`    // last error message if any
	UpdatedAt  time.Time     `json:"-"`
}

// ClampProgress clamps a backend-reported percentage into [0,100]
func ClampProgress(p float64) float64 {
	if p != p { // NaN
		return MinProgress
	}
	if p < MinProgress {
		return MinProgress
	}
	if p > MaxProgress {
		return MaxProgress
	}
	return p
}

// ClampedProgress returns the session progress clamped into [0,100]
func (s *DownloadSession) ClampedProgress() float64 {
	return ClampProgress(s.Progress)
}

// ProgressString returns progress formatted with one decimal, e.g. "42.5%"
func (s *DownloadSession) ProgressString() string {
	return fmt.Sprintf("%.1f%%", s.ClampedProgress())
}

// GetETAString returns ETA or "--" if unknown
func (s *DownloadSession) GetETAString() string {
	if strings.TrimSpace(s.ETA) == "" {
		return "--"
	}
	return s.ETA
}

// GetDisplayTitle returns filename, the base of the target path, or URL in order of preference
func (s *DownloadSession) GetDisplayTitle() string {
	if s.Filename != "" {
		return s.Filename
	}

	if s.Path != "" {
		parts := strings.FieldsFunc(s.Path, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			return parts[len(parts)-1]
		}
	}

	return s.URL
}

// Dir returns the directory containing the target file
func (s *DownloadSession) Dir() string {
	if s.Path == "" {
		return ""
	}
	return filepath.Dir(s.Path)
}

// Clone returns a copy of the session that callers may modify freely
func (s *DownloadSession) Clone() *DownloadSession {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
