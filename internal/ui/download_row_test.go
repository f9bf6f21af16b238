package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/simplehac/simpletoolkit/internal/model"
	"github.com/simplehac/simpletoolkit/internal/session"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		downloaded int64
		total      int64
		expected   string
	}{
		{0, 0, ""},
		{1500000, 0, "1.5 MB"},
		{1500000, 3000000, "1.5 MB / 3.0 MB"},
		{-1, 3000000, "0 B / 3.0 MB"},
	}

	for _, tt := range tests {
		if got := formatBytes(tt.downloaded, tt.total); got != tt.expected {
			t.Errorf("formatBytes(%d, %d) = %q, expected %q", tt.downloaded, tt.total, got, tt.expected)
		}
	}
}

func TestStatusText(t *testing.T) {
	l := NewLocalization()

	if got := statusText(l, model.StatusDownloading); got != l.GetText(KeyStatusActive) {
		t.Errorf("statusText(downloading) = %q", got)
	}
	if got := statusText(l, model.SessionStatus("paused")); got != "paused" {
		t.Errorf("Expected unknown status to be shown verbatim, got %q", got)
	}
}

func newTestEntry(id string, status model.SessionStatus) session.ListEntry {
	return session.ListEntry{
		ID: session.EntryID(id),
		Session: model.DownloadSession{
			ID:       id,
			Path:     "/tmp/" + id + ".dmg",
			Filename: id + ".dmg",
			Status:   status,
			Progress: 40,
		},
		Action: session.ActionFor(status),
	}
}

func TestDownloadRow_Update(t *testing.T) {
	test.NewApp()
	l := NewLocalization()

	row := NewDownloadRow(l)
	row.Update(newTestEntry("a", model.StatusDownloading), false)

	if row.actionBtn.Text != l.GetText(KeyCancel) {
		t.Errorf("Action = %q, expected cancel", row.actionBtn.Text)
	}
	if row.actionBtn.Disabled() {
		t.Error("Expected cancel action to be enabled")
	}
	if row.progressLabel.Text != "40%" {
		t.Errorf("Progress = %q, expected 40%%", row.progressLabel.Text)
	}

	row.Update(newTestEntry("a", model.StatusCompleted), false)
	if row.progressBar.Value != model.MaxProgress {
		t.Errorf("Expected completed row at %d, got %f", model.MaxProgress, row.progressBar.Value)
	}
	if row.actionBtn.Text != l.GetText(KeyOpenLocation) {
		t.Errorf("Action = %q, expected open location", row.actionBtn.Text)
	}

	row.Update(newTestEntry("a", model.StatusDownloading), true)
	if !row.actionBtn.Disabled() {
		t.Error("Expected cancelled row to disable its action")
	}
}

func TestDownloadRow_Actions(t *testing.T) {
	test.NewApp()

	var cancelled, opened, retried string
	row := NewDownloadRow(NewLocalization())
	row.SetCallbacks(
		func(id string) { cancelled = id },
		func(path string) { opened = path },
		func(id string) { retried = id },
	)

	row.Update(newTestEntry("a", model.StatusDownloading), false)
	test.Tap(row.actionBtn)
	row.Update(newTestEntry("b", model.StatusCompleted), false)
	test.Tap(row.actionBtn)
	row.Update(newTestEntry("c", model.StatusError), false)
	test.Tap(row.actionBtn)

	if cancelled != "a" {
		t.Errorf("Expected cancel of a, got %q", cancelled)
	}
	if opened != "/tmp/b.dmg" {
		t.Errorf("Expected open of /tmp/b.dmg, got %q", opened)
	}
	if retried != "c" {
		t.Errorf("Expected retry of c, got %q", retried)
	}
}
