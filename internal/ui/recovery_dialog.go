package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/simplehac/simpletoolkit/internal/session"
)

// RecoveryDialog asks the user how to continue after a path failed
// verification. It implements session.RecoveryPrompter.
type RecoveryDialog struct {
	window       fyne.Window
	localization *Localization
}

var _ session.RecoveryPrompter = (*RecoveryDialog)(nil)

// NewRecoveryDialog creates a prompter bound to window
func NewRecoveryDialog(window fyne.Window, localization *Localization) *RecoveryDialog {
	return &RecoveryDialog{window: window, localization: localization}
}

// PromptRecovery shows the dialog and blocks until the user answers or ctx
// is done. Closing the dialog without a choice counts as cancel.
func (rd *RecoveryDialog) PromptRecovery(ctx context.Context, path, message string) (session.RecoveryChoice, error) {
	result := make(chan session.RecoveryChoice, 1)
	answer := func(c session.RecoveryChoice) {
		select {
		case result <- c:
		default:
		}
	}

	var d dialog.Dialog
	fyne.Do(func() {
		d = rd.build(path, message, answer)
		d.Show()
	})

	select {
	case choice := <-result:
		return choice, nil
	case <-ctx.Done():
		fyne.Do(func() {
			if d != nil {
				d.Hide()
			}
		})
		return session.RecoveryCancel, ctx.Err()
	}
}

// build must run on the UI goroutine
func (rd *RecoveryDialog) build(path, message string, answer func(session.RecoveryChoice)) dialog.Dialog {
	l := rd.localization

	messageLabel := widget.NewLabel(message)
	messageLabel.Wrapping = fyne.TextWrapWord
	messageLabel.Importance = widget.DangerImportance

	pathLabel := widget.NewLabel(path)
	pathLabel.Wrapping = fyne.TextWrapBreak
	pathLabel.TextStyle = fyne.TextStyle{Monospace: true}

	hint := widget.NewRichTextFromMarkdown("**" + l.GetText(KeyRecoverySuggestions) + "**\n\n" +
		"- " + l.GetText(KeyRecoveryOtherFolder) + "\n" +
		"- " + l.GetText(KeyRecoveryPermissions) + "\n" +
		"- " + l.GetText(KeyRecoveryAntivirus) + "\n")

	var d *dialog.CustomDialog
	choose := func(c session.RecoveryChoice) func() {
		return func() {
			answer(c)
			d.Hide()
		}
	}

	cancelBtn := widget.NewButtonWithIcon(l.GetText(KeyCancel), theme.CancelIcon(), choose(session.RecoveryCancel))
	defaultBtn := widget.NewButtonWithIcon(l.GetText(KeyRecoveryDefault), theme.HomeIcon(), choose(session.RecoveryDefault))
	retryBtn := widget.NewButtonWithIcon(l.GetText(KeyRecoveryRetry), theme.FolderOpenIcon(), choose(session.RecoveryRetry))
	retryBtn.Importance = widget.HighImportance

	body := container.NewVBox(messageLabel, pathLabel, widget.NewSeparator(), hint)
	d = dialog.NewCustomWithoutButtons(l.GetText(KeyRecoveryTitle), body, rd.window)
	d.SetButtons([]fyne.CanvasObject{cancelBtn, defaultBtn, retryBtn})
	d.SetOnClosed(func() {
		answer(session.RecoveryCancel)
	})
	d.Resize(fyne.NewSize(RecoveryDialogWidth, body.MinSize().Height+120))
	return d
}
