package ui

import (
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/simplehac/simpletoolkit/internal/update"
)

// UpdateDialog presents an available release with its markdown notes
type UpdateDialog struct {
	window       fyne.Window
	localization *Localization
	openURL      func(rawURL string) error
}

// NewUpdateDialog creates an update dialog; openURL opens the download page
func NewUpdateDialog(window fyne.Window, localization *Localization, openURL func(rawURL string) error) *UpdateDialog {
	return &UpdateDialog{window: window, localization: localization, openURL: openURL}
}

// Show must run on the UI goroutine
func (ud *UpdateDialog) Show(result *update.Result) {
	if result == nil {
		return
	}
	l := ud.localization
	info := result.Info

	title := fmt.Sprintf(l.GetText(KeyNewVersion), strings.TrimPrefix(info.LatestVersion, "v"))

	meta := []string{fmt.Sprintf(l.GetText(KeyCurrentVersion), result.Current)}
	if info.ReleaseDate != "" {
		meta = append(meta, fmt.Sprintf(l.GetText(KeyReleaseDate), info.ReleaseDate))
	}
	metaLabel := widget.NewLabel(strings.Join(meta, MiddleDotSeparator))
	metaLabel.Importance = widget.LowImportance

	notes := strings.TrimSpace(info.ReleaseNotes)
	if notes == "" {
		notes = l.GetText(KeyNoReleaseNotes)
	}
	notesText := widget.NewRichTextFromMarkdown(notes)
	notesText.Wrapping = fyne.TextWrapWord

	body := container.NewBorder(metaLabel, nil, nil, nil, container.NewVScroll(notesText))

	d := dialog.NewCustomConfirm(title, l.GetText(KeyUpdateNow), l.GetText(KeyLater), body, func(confirmed bool) {
		if !confirmed || info.DownloadURL == "" {
			return
		}
		if err := ud.openURL(info.DownloadURL); err != nil {
			log.Printf("Failed to open update URL %s: %v", info.DownloadURL, err)
			dialog.ShowError(err, ud.window)
		}
	}, ud.window)
	d.Resize(fyne.NewSize(UpdateDialogWidth, UpdateDialogHeight))
	d.Show()
}
