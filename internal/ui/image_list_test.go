package ui

import (
	"fmt"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/simplehac/simpletoolkit/internal/model"
	"github.com/simplehac/simpletoolkit/internal/session"
)

func testImages(n int) []model.DiskImage {
	images := make([]model.DiskImage, n)
	for i := range images {
		images[i] = model.DiskImage{
			Title:       "macOS",
			Version:     fmt.Sprintf("15.%d", i),
			Build:       fmt.Sprintf("24A%d", i),
			DownloadURL: fmt.Sprintf("https://example.com/%d.dmg", i),
		}
	}
	return images
}

func TestImageList_SetImages(t *testing.T) {
	test.NewApp()
	il := NewImageList(NewLocalization())

	il.SetImages(testImages(5))
	if got := len(il.rows.Objects); got != 5 {
		t.Errorf("Expected 5 rows, got %d", got)
	}
	if il.placeholder.Visible() {
		t.Error("Expected placeholder to be hidden")
	}
	if !il.toggleBtn.Visible() {
		t.Error("Expected collapse toggle for more than 3 images")
	}

	il.toggleCollapsed()
	if got := len(il.rows.Objects); got != CollapsedImageCount {
		t.Errorf("Expected %d rows while collapsed, got %d", CollapsedImageCount, got)
	}

	il.SetImages(nil)
	if !il.placeholder.Visible() {
		t.Error("Expected placeholder for an empty catalog")
	}
	if il.messageLabel.Text != il.localization.GetText(KeyNoImages) {
		t.Errorf("Message = %q, expected empty catalog text", il.messageLabel.Text)
	}
}

func TestImageList_ButtonsSurviveRefresh(t *testing.T) {
	test.NewApp()
	il := NewImageList(NewLocalization())

	images := testImages(2)
	il.SetImages(images)
	first, ok := il.Button(images[0].DownloadURL)
	if !ok {
		t.Fatal("Expected a button for the first image")
	}
	first.apply(session.ControlLoading, "Downloading...")

	il.SetImages(images)
	again, _ := il.Button(images[0].DownloadURL)
	if again != first {
		t.Error("Expected the same button after a refresh")
	}
	if again.State() != session.ControlLoading {
		t.Errorf("Expected button state to be kept, got %s", again.State())
	}
}

func TestImageList_Callbacks(t *testing.T) {
	test.NewApp()
	il := NewImageList(NewLocalization())

	var downloaded model.DiskImage
	var boundButton *DownloadButton
	refreshed := 0
	il.SetCallbacks(func(img model.DiskImage, b *DownloadButton) {
		downloaded = img
		boundButton = b
	}, nil, func() { refreshed++ })

	images := testImages(1)
	il.SetImages(images)
	b, _ := il.Button(images[0].DownloadURL)
	test.Tap(b)

	if downloaded.DownloadURL != images[0].DownloadURL {
		t.Errorf("Expected download of %s, got %s", images[0].DownloadURL, downloaded.DownloadURL)
	}
	if boundButton != b {
		t.Error("Expected the tapped button to be passed along")
	}

	test.Tap(il.refreshBtn)
	if refreshed != 1 {
		t.Errorf("Expected 1 refresh, got %d", refreshed)
	}
}

func TestImageList_ShowError(t *testing.T) {
	test.NewApp()
	il := NewImageList(NewLocalization())

	il.ShowError("backend unreachable")
	if il.messageLabel.Text != "backend unreachable" || !il.retryBtn.Visible() {
		t.Error("Expected error message with retry button")
	}

	il.SetImages(testImages(2))
	il.ShowError("refresh failed")
	if il.placeholder.Visible() {
		t.Error("Expected rows to stay visible after a failed refresh")
	}
}
