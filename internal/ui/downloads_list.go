package ui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/simplehac/simpletoolkit/internal/model"
	"github.com/simplehac/simpletoolkit/internal/session"
)

// DownloadsList shows download sessions newest first. It implements
// session.View; updates from any goroutine are rendered on the UI goroutine.
type DownloadsList struct {
	localization *Localization

	mu        sync.RWMutex
	entries   []session.ListEntry
	cancelled map[string]bool

	list       *widget.List
	emptyLabel *widget.Label
	titleLabel *widget.Label
	content    *fyne.Container

	onCancel func(sessionID string)
	onOpen   func(path string)
	onRetry  func(sessionID string)
}

var _ session.View = (*DownloadsList)(nil)

// NewDownloadsList creates an empty downloads list
func NewDownloadsList(localization *Localization) *DownloadsList {
	dl := &DownloadsList{
		localization: localization,
		cancelled:    make(map[string]bool),
	}
	dl.createUI()
	return dl
}

// SetCallbacks sets the row action callbacks
func (dl *DownloadsList) SetCallbacks(onCancel func(sessionID string), onOpen func(path string), onRetry func(sessionID string)) {
	dl.onCancel = onCancel
	dl.onOpen = onOpen
	dl.onRetry = onRetry
}

func (dl *DownloadsList) createUI() {
	dl.titleLabel = widget.NewLabel(dl.localization.GetText(KeyDownloads))
	dl.titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	dl.emptyLabel = widget.NewLabel(dl.localization.GetText(KeyNoDownloads))
	dl.emptyLabel.Alignment = fyne.TextAlignCenter
	dl.emptyLabel.Importance = widget.LowImportance

	dl.list = widget.NewList(
		func() int {
			dl.mu.RLock()
			defer dl.mu.RUnlock()
			return len(dl.entries)
		},
		func() fyne.CanvasObject {
			row := NewDownloadRow(dl.localization)
			row.SetCallbacks(dl.handleCancel, dl.handleOpen, dl.handleRetry)
			return row
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			entry, cancelled, ok := dl.at(id)
			if !ok {
				return
			}
			obj.(*DownloadRow).Update(entry, cancelled)
		},
	)

	dl.content = container.NewBorder(dl.titleLabel, nil, nil, nil, container.NewStack(dl.list, dl.emptyLabel))
	dl.refreshEmptyState()
}

// Container returns the list's root object
func (dl *DownloadsList) Container() *fyne.Container {
	return dl.content
}

// UpsertEntry inserts a new entry at the top or replaces an existing one in place
func (dl *DownloadsList) UpsertEntry(entry session.ListEntry, isNew bool) {
	dl.mu.Lock()
	if idx := dl.indexLocked(entry.ID); idx >= 0 {
		dl.entries[idx] = entry
	} else {
		// isNew is advisory; an entry this view never saw is prepended either way
		dl.entries = append([]session.ListEntry{entry}, dl.entries...)
	}
	dl.mu.Unlock()

	fyne.Do(dl.refresh)
}

// MarkCancelled shows the entry as cancelled and disables its action
func (dl *DownloadsList) MarkCancelled(entryID string) {
	dl.mu.Lock()
	dl.cancelled[entryID] = true
	if idx := dl.indexLocked(entryID); idx >= 0 {
		e := dl.entries[idx]
		e.Session.Status = model.StatusCancelled
		e.Action = session.ActionNone
		dl.entries[idx] = e
	}
	dl.mu.Unlock()

	fyne.Do(dl.refresh)
}

// Entries returns a copy of the shown entries, newest first
func (dl *DownloadsList) Entries() []session.ListEntry {
	dl.mu.RLock()
	defer dl.mu.RUnlock()
	out := make([]session.ListEntry, len(dl.entries))
	copy(out, dl.entries)
	return out
}

// IsCancelled reports whether the entry was marked cancelled
func (dl *DownloadsList) IsCancelled(entryID string) bool {
	dl.mu.RLock()
	defer dl.mu.RUnlock()
	return dl.cancelled[entryID]
}

// RefreshTexts re-renders localized labels
func (dl *DownloadsList) RefreshTexts() {
	dl.titleLabel.SetText(dl.localization.GetText(KeyDownloads))
	dl.emptyLabel.SetText(dl.localization.GetText(KeyNoDownloads))
	dl.list.Refresh()
}

func (dl *DownloadsList) at(id widget.ListItemID) (session.ListEntry, bool, bool) {
	dl.mu.RLock()
	defer dl.mu.RUnlock()
	if id < 0 || id >= len(dl.entries) {
		return session.ListEntry{}, false, false
	}
	e := dl.entries[id]
	return e, dl.cancelled[e.ID], true
}

func (dl *DownloadsList) indexLocked(entryID string) int {
	for i, e := range dl.entries {
		if e.ID == entryID {
			return i
		}
	}
	return -1
}

// refresh must run on the UI goroutine
func (dl *DownloadsList) refresh() {
	dl.refreshEmptyState()
	dl.list.Refresh()
}

func (dl *DownloadsList) refreshEmptyState() {
	dl.mu.RLock()
	empty := len(dl.entries) == 0
	dl.mu.RUnlock()
	if empty {
		dl.emptyLabel.Show()
	} else {
		dl.emptyLabel.Hide()
	}
}

func (dl *DownloadsList) handleCancel(sessionID string) {
	if dl.onCancel != nil {
		dl.onCancel(sessionID)
	}
}

func (dl *DownloadsList) handleOpen(path string) {
	if dl.onOpen != nil {
		dl.onOpen(path)
	}
}

func (dl *DownloadsList) handleRetry(sessionID string) {
	if dl.onRetry != nil {
		dl.onRetry(sessionID)
	}
}
