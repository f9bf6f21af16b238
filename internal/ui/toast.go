package ui

import (
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/simplehac/simpletoolkit/internal/session"
)

// Toaster shows short-lived notifications in the top-right corner of the
// window. It implements session.Notifier.
type Toaster struct {
	window       fyne.Window
	localization *Localization
	autoHide     time.Duration

	mu      sync.Mutex
	current *widget.PopUp
	seq     uint64
	history []Toast
}

// Toast is one shown notification
type Toast struct {
	Kind    session.NoticeKind
	Message string
}

var _ session.Notifier = (*Toaster)(nil)

// NewToaster creates a toaster for window
func NewToaster(window fyne.Window, localization *Localization) *Toaster {
	return &Toaster{
		window:       window,
		localization: localization,
		autoHide:     ToastAutoHide,
	}
}

// Notify shows message; a newer toast replaces the visible one
func (t *Toaster) Notify(kind session.NoticeKind, message string) {
	log.Printf("Notice (%s): %s", kind, message)

	t.mu.Lock()
	t.seq++
	seq := t.seq
	t.history = append(t.history, Toast{Kind: kind, Message: message})
	t.mu.Unlock()

	fyne.Do(func() {
		t.show(seq, kind, message)
	})

	if kind == session.NoticeSuccess {
		if app := fyne.CurrentApp(); app != nil {
			app.SendNotification(fyne.NewNotification(t.localization.GetText(KeyAppTitle), message))
		}
	}
}

// History returns every notification shown so far
func (t *Toaster) History() []Toast {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Toast, len(t.history))
	copy(out, t.history)
	return out
}

// show must run on the UI goroutine
func (t *Toaster) show(seq uint64, kind session.NoticeKind, message string) {
	t.mu.Lock()
	if seq != t.seq {
		t.mu.Unlock()
		return
	}
	prev := t.current
	t.mu.Unlock()
	if prev != nil {
		prev.Hide()
	}

	icon := widget.NewIcon(noticeIcon(kind))
	messageLabel := widget.NewLabel(message)
	messageLabel.Wrapping = fyne.TextWrapWord
	messageLabel.Importance = noticeImportance(kind)

	var popup *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if popup != nil {
			popup.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	content := container.NewBorder(nil, nil, icon, closeBtn, messageLabel)
	popup = widget.NewPopUp(content, t.window.Canvas())

	canvasSize := t.window.Canvas().Size()
	size := fyne.NewSize(ToastWidth, ToastHeight)
	popup.Resize(size)
	popup.Move(fyne.NewPos(canvasSize.Width-size.Width-ToastMargin, ToastMargin))
	popup.Show()

	t.mu.Lock()
	t.current = popup
	t.mu.Unlock()

	time.AfterFunc(t.autoHide, func() {
		fyne.Do(popup.Hide)
	})
}

func noticeIcon(kind session.NoticeKind) fyne.Resource {
	switch kind {
	case session.NoticeSuccess:
		return theme.ConfirmIcon()
	case session.NoticeError:
		return theme.ErrorIcon()
	default:
		return theme.InfoIcon()
	}
}

func noticeImportance(kind session.NoticeKind) widget.Importance {
	switch kind {
	case session.NoticeSuccess:
		return widget.SuccessImportance
	case session.NoticeError:
		return widget.DangerImportance
	default:
		return widget.MediumImportance
	}
}
