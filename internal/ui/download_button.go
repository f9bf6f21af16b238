package ui

import (
	"log"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/simplehac/simpletoolkit/internal/session"
)

// DownloadButton is a button bound to a download session. It implements
// session.Control; state changes from any goroutine are applied on the UI
// goroutine.
type DownloadButton struct {
	widget.Button

	id string

	mu    sync.RWMutex
	state session.ControlState
}

var _ session.Control = (*DownloadButton)(nil)

// NewDownloadButton creates an idle download button with a fresh control id
func NewDownloadButton(label string, tapped func()) *DownloadButton {
	b := &DownloadButton{id: session.NewControlID()}
	b.ExtendBaseWidget(b)
	b.OnTapped = tapped
	b.apply(session.ControlIdle, label)
	return b
}

// ControlID returns the id the session manager binds to
func (b *DownloadButton) ControlID() string {
	return b.id
}

// SetState schedules the visual update for state
func (b *DownloadButton) SetState(state session.ControlState, label string) {
	fyne.Do(func() {
		b.apply(state, label)
	})
}

// State returns the last applied state
func (b *DownloadButton) State() session.ControlState {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.state
}

// MinSize keeps the button wide enough for the longest label
func (b *DownloadButton) MinSize() fyne.Size {
	min := b.Button.MinSize()
	if min.Width < DownloadButtonMinW {
		min.Width = DownloadButtonMinW
	}
	return min
}

// apply must run on the UI goroutine
func (b *DownloadButton) apply(state session.ControlState, label string) {
	if !state.IsValid() {
		log.Printf("Unknown control state %q on %s", state, b.id)
	}
	p := state.Presentation()

	b.mu.Lock()
	b.state = state
	b.mu.Unlock()

	b.Text = label
	b.Icon = controlIcon(p.Icon)
	b.Importance = controlImportance(p.Importance)
	if p.Disabled {
		b.Disable()
	} else {
		b.Enable()
	}
	b.Refresh()
}

func controlIcon(icon session.ControlIcon) fyne.Resource {
	switch icon {
	case session.IconSpinner:
		return theme.ViewRefreshIcon()
	case session.IconError:
		return theme.ErrorIcon()
	default:
		return theme.DownloadIcon()
	}
}

func controlImportance(importance session.Importance) widget.Importance {
	switch importance {
	case session.ImportanceMedium:
		return widget.MediumImportance
	case session.ImportanceDanger:
		return widget.DangerImportance
	default:
		return widget.HighImportance
	}
}
