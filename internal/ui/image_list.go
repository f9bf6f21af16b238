package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/simplehac/simpletoolkit/internal/model"
	"github.com/simplehac/simpletoolkit/internal/session"
)

// CollapsedImageCount is the number of rows shown while the list is collapsed
const CollapsedImageCount = 3

// ImageList shows the disk-image catalog with a download button per image.
// Buttons are kept per download URL across refreshes so a running session
// keeps its bound control. Methods must be called on the UI goroutine.
type ImageList struct {
	localization *Localization

	images    []model.DiskImage
	buttons   map[string]*DownloadButton
	collapsed bool

	titleLabel   *widget.Label
	refreshBtn   *widget.Button
	toggleBtn    *widget.Button
	rows         *fyne.Container
	messageLabel *widget.Label
	retryBtn     *widget.Button
	placeholder  *fyne.Container
	container    *fyne.Container

	onDownload func(image model.DiskImage, button *DownloadButton)
	onCopyLink func(url string)
	onRefresh  func()
}

// NewImageList creates an image list in the loading state
func NewImageList(localization *Localization) *ImageList {
	il := &ImageList{
		localization: localization,
		buttons:      make(map[string]*DownloadButton),
	}
	il.createUI()
	il.ShowLoading()
	return il
}

// SetCallbacks sets the row and header callbacks
func (il *ImageList) SetCallbacks(onDownload func(model.DiskImage, *DownloadButton), onCopyLink func(url string), onRefresh func()) {
	il.onDownload = onDownload
	il.onCopyLink = onCopyLink
	il.onRefresh = onRefresh
}

func (il *ImageList) createUI() {
	l := il.localization

	il.titleLabel = widget.NewLabelWithStyle(l.GetText(KeyImages), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	il.refreshBtn = widget.NewButtonWithIcon(l.GetText(KeyRefresh), theme.ViewRefreshIcon(), func() {
		if il.onRefresh != nil {
			il.onRefresh()
		}
	})
	il.refreshBtn.Importance = widget.LowImportance

	il.toggleBtn = widget.NewButtonWithIcon(l.GetText(KeyCollapse), theme.MenuDropUpIcon(), il.toggleCollapsed)
	il.toggleBtn.Importance = widget.LowImportance
	il.toggleBtn.Hide()

	il.rows = container.NewVBox()

	il.messageLabel = widget.NewLabel("")
	il.messageLabel.Alignment = fyne.TextAlignCenter
	il.messageLabel.Wrapping = fyne.TextWrapWord
	il.retryBtn = widget.NewButtonWithIcon(l.GetText(KeyRetry), theme.ViewRefreshIcon(), func() {
		if il.onRefresh != nil {
			il.onRefresh()
		}
	})
	il.retryBtn.Hide()
	il.placeholder = container.NewVBox(il.messageLabel, container.NewCenter(il.retryBtn))

	header := container.NewBorder(nil, nil, il.titleLabel, container.NewHBox(il.toggleBtn, il.refreshBtn))
	body := container.NewVScroll(container.NewVBox(il.placeholder, il.rows))

	il.container = container.NewBorder(header, nil, nil, nil, body)
}

// Container returns the list's root object
func (il *ImageList) Container() *fyne.Container {
	return il.container
}

// ShowLoading shows the loading placeholder
func (il *ImageList) ShowLoading() {
	il.showMessage(il.localization.GetText(KeyLoadingImages), false)
}

// ShowError shows message with a retry button. Rows already shown are kept.
func (il *ImageList) ShowError(message string) {
	if len(il.images) > 0 {
		return
	}
	il.showMessage(message, true)
}

// SetRefreshing toggles the refresh button's busy state
func (il *ImageList) SetRefreshing(refreshing bool) {
	l := il.localization
	if refreshing {
		il.refreshBtn.SetText(l.GetText(KeyRefreshing))
		il.refreshBtn.Disable()
		return
	}
	il.refreshBtn.SetText(l.GetText(KeyRefresh))
	il.refreshBtn.Enable()
}

// SetImages replaces the shown catalog
func (il *ImageList) SetImages(images []model.DiskImage) {
	il.images = append([]model.DiskImage(nil), images...)

	if len(il.images) == 0 {
		il.rows.Objects = nil
		il.rows.Refresh()
		il.toggleBtn.Hide()
		il.showMessage(il.localization.GetText(KeyNoImages), false)
		return
	}

	il.placeholder.Hide()
	il.render()
}

// Images returns the shown catalog
func (il *ImageList) Images() []model.DiskImage {
	return append([]model.DiskImage(nil), il.images...)
}

// Button returns the download button bound to url, if it was shown
func (il *ImageList) Button(url string) (*DownloadButton, bool) {
	b, ok := il.buttons[url]
	return b, ok
}

// RefreshTexts re-renders localized labels. Buttons in a non-idle state keep
// the label set by the session manager.
func (il *ImageList) RefreshTexts() {
	l := il.localization
	il.titleLabel.SetText(l.GetText(KeyImages))
	il.refreshBtn.SetText(l.GetText(KeyRefresh))
	il.retryBtn.SetText(l.GetText(KeyRetry))
	il.updateToggle()
	for _, b := range il.buttons {
		if b.State() == session.ControlIdle {
			b.SetText(l.GetText(KeyDownload))
		}
	}
	if len(il.images) > 0 {
		il.render()
	}
}

func (il *ImageList) showMessage(message string, retry bool) {
	il.messageLabel.SetText(message)
	if retry {
		il.retryBtn.Show()
	} else {
		il.retryBtn.Hide()
	}
	il.placeholder.Show()
}

func (il *ImageList) toggleCollapsed() {
	il.collapsed = !il.collapsed
	il.render()
}

// render rebuilds the rows for the current images and collapse state
func (il *ImageList) render() {
	visible := il.images
	if il.collapsed && len(visible) > CollapsedImageCount {
		visible = visible[:CollapsedImageCount]
	}

	objects := make([]fyne.CanvasObject, 0, len(visible))
	for _, img := range visible {
		objects = append(objects, il.createImageRow(img))
	}
	il.rows.Objects = objects
	il.rows.Refresh()
	il.updateToggle()
}

func (il *ImageList) updateToggle() {
	if len(il.images) <= CollapsedImageCount {
		il.toggleBtn.Hide()
		return
	}
	if il.collapsed {
		il.toggleBtn.SetText(il.localization.GetText(KeyExpand))
		il.toggleBtn.SetIcon(theme.MenuDropDownIcon())
	} else {
		il.toggleBtn.SetText(il.localization.GetText(KeyCollapse))
		il.toggleBtn.SetIcon(theme.MenuDropUpIcon())
	}
	il.toggleBtn.Show()
}

// createImageRow lays out one catalog entry: title and metadata on the left,
// copy-link and download buttons on the right
func (il *ImageList) createImageRow(img model.DiskImage) fyne.CanvasObject {
	l := il.localization

	title := widget.NewLabelWithStyle(img.DisplayName(), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	title.Truncation = fyne.TextTruncateEllipsis

	var meta []string
	if img.Build != "" {
		meta = append(meta, fmt.Sprintf(l.GetText(KeyImageBuild), img.Build))
	}
	if img.Size != "" {
		meta = append(meta, fmt.Sprintf(l.GetText(KeyImageSize), img.Size))
	}
	if img.ReleaseDate != "" {
		meta = append(meta, fmt.Sprintf(l.GetText(KeyImageReleasedOn), img.ReleaseDate))
	}
	metaLabel := widget.NewLabel(strings.Join(meta, MiddleDotSeparator))
	metaLabel.Importance = widget.LowImportance
	metaLabel.Truncation = fyne.TextTruncateEllipsis

	copyBtn := widget.NewButtonWithIcon(l.GetText(KeyCopyLink), theme.ContentCopyIcon(), func() {
		if il.onCopyLink != nil {
			il.onCopyLink(img.DownloadURL)
		}
	})
	copyBtn.Importance = widget.LowImportance

	actions := container.NewHBox(copyBtn, il.buttonFor(img))
	return container.NewBorder(nil, widget.NewSeparator(), nil, actions, container.NewVBox(title, metaLabel))
}

// buttonFor returns the persistent download button of img
func (il *ImageList) buttonFor(img model.DiskImage) *DownloadButton {
	if b, ok := il.buttons[img.DownloadURL]; ok {
		return b
	}
	var b *DownloadButton
	b = NewDownloadButton(il.localization.GetText(KeyDownload), func() {
		if il.onDownload != nil {
			il.onDownload(img, b)
		}
	})
	il.buttons[img.DownloadURL] = b
	return b
}
