package ui

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"

	"github.com/simplehac/simpletoolkit/internal/model"
	"github.com/simplehac/simpletoolkit/internal/session"
)

// Fixed widths of the right-hand info column
const (
	StatusLabelWidth  float32 = 110
	SpeedLabelWidth   float32 = 170
	PercentLabelWidth float32 = 56
)

// formatBytes renders "downloaded / total", or just downloaded when the total is unknown
func formatBytes(downloaded, total int64) string {
	if downloaded <= 0 && total <= 0 {
		return ""
	}
	if downloaded < 0 {
		downloaded = 0
	}
	if total <= 0 {
		return humanize.Bytes(uint64(downloaded))
	}
	return humanize.Bytes(uint64(downloaded)) + BytesSeparator + humanize.Bytes(uint64(total))
}

// statusText returns the localized status label
func statusText(l *Localization, status model.SessionStatus) string {
	switch status {
	case model.StatusSelectingPath:
		return l.GetText(KeyStatusSelect)
	case model.StatusVerifyingPath:
		return l.GetText(KeyStatusVerify)
	case model.StatusStarting:
		return l.GetText(KeyStatusStarting)
	case model.StatusDownloading:
		return l.GetText(KeyStatusActive)
	case model.StatusCompleted:
		return l.GetText(KeyStatusDone)
	case model.StatusError:
		return l.GetText(KeyStatusError)
	case model.StatusCancelled:
		return l.GetText(KeyStatusCanceled)
	default:
		return status.String()
	}
}

// DownloadRow renders one entry of the downloads list
type DownloadRow struct {
	widget.BaseWidget

	entry        session.ListEntry
	cancelled    bool
	localization *Localization

	titleLabel    *widget.Label
	pathLabel     *widget.Label
	statusLabel   *widget.Label
	progressLabel *widget.Label
	statsLabel    *widget.Label
	progressBar   *widget.ProgressBar
	actionBtn     *widget.Button

	onCancel func(sessionID string)
	onOpen   func(path string)
	onRetry  func(sessionID string)
}

// NewDownloadRow creates an empty row; call Update to fill it
func NewDownloadRow(localization *Localization) *DownloadRow {
	r := &DownloadRow{localization: localization}
	r.ExtendBaseWidget(r)
	r.createUI()
	return r
}

// SetCallbacks sets the action callbacks
func (r *DownloadRow) SetCallbacks(onCancel func(sessionID string), onOpen func(path string), onRetry func(sessionID string)) {
	r.onCancel = onCancel
	r.onOpen = onOpen
	r.onRetry = onRetry
}

// Update shows entry. A cancelled row keeps its action disabled.
func (r *DownloadRow) Update(entry session.ListEntry, cancelled bool) {
	r.entry = entry
	r.cancelled = cancelled
	r.updateFromEntry()
	r.Refresh()
}

// Entry returns the entry currently shown
func (r *DownloadRow) Entry() session.ListEntry {
	return r.entry
}

func (r *DownloadRow) createUI() {
	r.titleLabel = widget.NewLabel("")
	r.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	r.titleLabel.Truncation = fyne.TextTruncateEllipsis

	r.pathLabel = widget.NewLabel("")
	r.pathLabel.Truncation = fyne.TextTruncateEllipsis
	r.pathLabel.Importance = widget.LowImportance

	r.statusLabel = widget.NewLabel("")
	r.statusLabel.Alignment = fyne.TextAlignTrailing
	r.progressLabel = widget.NewLabel("")
	r.progressLabel.Alignment = fyne.TextAlignTrailing
	r.statsLabel = widget.NewLabel("")
	r.statsLabel.TextStyle = fyne.TextStyle{Monospace: true}
	r.statsLabel.Truncation = fyne.TextTruncateEllipsis

	r.progressBar = widget.NewProgressBar()
	r.progressBar.Min = model.MinProgress
	r.progressBar.Max = model.MaxProgress
	r.progressBar.TextFormatter = func() string { return "" }

	r.actionBtn = widget.NewButton("", r.onAction)
	r.actionBtn.Importance = widget.MediumImportance
}

// onAction dispatches the contextual action of the current entry
func (r *DownloadRow) onAction() {
	s := r.entry.Session
	switch r.entry.Action {
	case session.ActionCancel:
		if r.onCancel != nil {
			r.onCancel(s.ID)
		}
	case session.ActionOpenLocation:
		if r.onOpen != nil {
			r.onOpen(s.Path)
		}
	case session.ActionRetry:
		if r.onRetry != nil {
			r.onRetry(s.ID)
		}
	default:
		log.Printf("No action for download %s in status %s", s.ID, s.Status)
	}
}

// updateFromEntry copies entry fields into the widgets
func (r *DownloadRow) updateFromEntry() {
	s := r.entry.Session
	l := r.localization

	r.titleLabel.SetText(strings.TrimSpace(s.GetDisplayTitle()))
	r.pathLabel.SetText(s.Path)
	r.statusLabel.SetText(statusText(l, s.Status))

	progress := s.ClampedProgress()
	if s.Status == model.StatusCompleted {
		progress = model.MaxProgress
	}
	r.progressBar.SetValue(progress)
	r.progressLabel.SetText(fmt.Sprintf("%.0f%%", progress))

	var stats []string
	if s.Status == model.StatusDownloading {
		if s.Speed != "" {
			stats = append(stats, s.Speed)
		}
		stats = append(stats, fmt.Sprintf(l.GetText(KeyRemaining), s.GetETAString()))
	}
	if b := formatBytes(s.Downloaded, s.TotalSize); b != "" {
		stats = append(stats, b)
	}
	if s.Status == model.StatusError && s.Message != "" {
		stats = append(stats, s.Message)
	}
	r.statsLabel.SetText(strings.Join(stats, MiddleDotSeparator))

	r.updateButton()
}

// updateButton shows the action allowed in the current status
func (r *DownloadRow) updateButton() {
	l := r.localization
	btn := r.actionBtn

	switch r.entry.Action {
	case session.ActionCancel:
		btn.SetText(l.GetText(KeyCancel))
		btn.SetIcon(theme.CancelIcon())
		btn.Importance = widget.DangerImportance
	case session.ActionOpenLocation:
		btn.SetText(l.GetText(KeyOpenLocation))
		btn.SetIcon(theme.FolderOpenIcon())
		btn.Importance = widget.MediumImportance
	case session.ActionRetry:
		btn.SetText(l.GetText(KeyRetry))
		btn.SetIcon(theme.ViewRefreshIcon())
		btn.Importance = widget.HighImportance
	default:
		btn.SetText(statusText(l, r.entry.Session.Status))
		btn.SetIcon(nil)
		btn.Importance = widget.LowImportance
	}

	if r.cancelled || r.entry.Action == session.ActionNone {
		btn.Disable()
	} else {
		btn.Enable()
	}
}

// CreateRenderer creates the widget renderer
func (r *DownloadRow) CreateRenderer() fyne.WidgetRenderer {
	return &downloadRowRenderer{row: r}
}

type downloadRowRenderer struct {
	row    *DownloadRow
	layout *fyne.Container
}

func (r *downloadRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	r.layout.Resize(size)
}

func (r *downloadRowRenderer) MinSize() fyne.Size {
	if r.layout == nil {
		r.createLayout()
	}
	min := r.layout.MinSize()
	return fyne.NewSize(fyne.Max(min.Width, RowMinWidth), fyne.Max(min.Height, RowMinHeight))
}

func (r *downloadRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

func (r *downloadRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

func (r *downloadRowRenderer) Destroy() {}

// createLayout pins the action to the right, the status column next to it,
// and gives the title, path and progress bar the remaining width
func (r *downloadRowRenderer) createLayout() {
	row := r.row

	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.Transparent)
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	info := container.NewVBox(
		fixedWidth(StatusLabelWidth, row.statusLabel),
		fixedWidth(PercentLabelWidth, row.progressLabel),
	)
	right := container.NewHBox(info, container.NewCenter(row.actionBtn))

	left := container.NewVBox(
		row.titleLabel,
		row.pathLabel,
		row.progressBar,
		fixedWidth(SpeedLabelWidth, row.statsLabel),
	)

	r.layout = container.NewBorder(nil, widget.NewSeparator(), nil, right, left)
}
