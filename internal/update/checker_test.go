package update

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/simplehac/simpletoolkit/internal/model"
)

type fakeSource struct {
	info  *model.UpdateInfo
	err   error
	delay time.Duration
}

func (f *fakeSource) CheckUpdate(ctx context.Context) (*model.UpdateInfo, error) {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	return f.info, f.err
}

func TestIsNewer(t *testing.T) {
	tests := []struct {
		latest   string
		current  string
		expected bool
	}{
		{"1.2.0", "1.1.9", true},
		{"v1.2.0", "1.2.0", false},
		{"1.10.0", "1.9.0", true},
		{"1.0.0", "1.2.0", false},
		{" v2.0.0 ", "v1.9.9", true},
		{"2024.1", "2023.12", true},
		{"nightly", "nightly", false},
		{"nightly-2", "dev", true},
	}

	for _, test := range tests {
		if got := IsNewer(test.latest, test.current); got != test.expected {
			t.Errorf("IsNewer(%q, %q) = %v, expected %v", test.latest, test.current, got, test.expected)
		}
	}
}

func TestCheck(t *testing.T) {
	source := &fakeSource{info: &model.UpdateInfo{LatestVersion: "v1.3.0", DownloadURL: "http://x/app.dmg"}}
	checker := NewChecker(source, "1.2.0")

	result, err := checker.Check(context.Background())
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if !result.Available {
		t.Error("Expected update to be available")
	}
	if result.Info.DownloadURL != "http://x/app.dmg" || result.Current != "1.2.0" {
		t.Errorf("Unexpected result: %+v", result)
	}
}

func TestCheck_InvalidData(t *testing.T) {
	checker := NewChecker(&fakeSource{info: &model.UpdateInfo{}}, "1.0.0")
	if _, err := checker.Check(context.Background()); !errors.Is(err, ErrInvalidData) {
		t.Errorf("Check() error = %v, expected ErrInvalidData", err)
	}

	checker = NewChecker(&fakeSource{err: errors.New("timeout")}, "1.0.0")
	if _, err := checker.Check(context.Background()); err == nil {
		t.Error("Expected error from source")
	}
}

func TestCheck_InProgress(t *testing.T) {
	source := &fakeSource{info: &model.UpdateInfo{LatestVersion: "1.0.0"}, delay: 50 * time.Millisecond}
	checker := NewChecker(source, "1.0.0")

	done := make(chan error, 1)
	go func() {
		_, err := checker.Check(context.Background())
		done <- err
	}()
	time.Sleep(10 * time.Millisecond)

	if _, err := checker.Check(context.Background()); !errors.Is(err, ErrInProgress) {
		t.Errorf("Check() error = %v, expected ErrInProgress", err)
	}
	if err := <-done; err != nil {
		t.Errorf("First Check() error = %v", err)
	}
	if _, err := checker.Check(context.Background()); err != nil {
		t.Errorf("Check() after completion error = %v", err)
	}
}
