package native

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/simplehac/simpletoolkit/internal/bridge"
	"github.com/simplehac/simpletoolkit/internal/model"
	"github.com/simplehac/simpletoolkit/internal/platform"
	"github.com/sqweek/dialog"
)

// Save dialog settings
const (
	SaveDialogTitle  = "Save disk image"
	ImageFilterLabel = "Disk images"
	AllFilterLabel   = "All files"
)

// Dialogs implements bridge.Bridge with OS dialogs and the platform helpers
type Dialogs struct {
	title string
}

var _ bridge.Bridge = (*Dialogs)(nil)

// New creates a native bridge. An empty title uses SaveDialogTitle.
func New(title string) *Dialogs {
	if title == "" {
		title = SaveDialogTitle
	}
	return &Dialogs{title: title}
}

type pickResult struct {
	path string
	err  error
}

// SelectSavePath shows the native save dialog, starting in the downloads
// directory with filename suggested.
func (d *Dialogs) SelectSavePath(ctx context.Context, filename string) (string, error) {
	startDir, err := platform.GetHomeDownloadsDir()
	if err != nil {
		startDir = ""
	}

	done := make(chan pickResult, 1)
	go func() {
		builder := dialog.File().
			Title(d.title).
			Filter(ImageFilterLabel, strings.TrimPrefix(model.DiskImageExtension, ".")).
			Filter(AllFilterLabel, "*").
			SetStartFile(filename)
		if startDir != "" {
			builder = builder.SetStartDir(startDir)
		}
		path, err := builder.Save()
		done <- pickResult{path: path, err: err}
	}()

	select {
	case res := <-done:
		if errors.Is(res.err, dialog.ErrCancelled) {
			return "", nil
		}
		if res.err != nil {
			return "", fmt.Errorf("save dialog failed: %w", res.err)
		}
		return res.path, nil
	case <-ctx.Done():
		// The OS dialog cannot be closed from here; its result is dropped.
		return "", ctx.Err()
	}
}

// DownloadsDir returns the home downloads directory, creating it if needed
func (d *Dialogs) DownloadsDir(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	dir, err := platform.GetHomeDownloadsDir()
	if err != nil {
		return "", err
	}
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return "", err
	}
	return dir, nil
}

// OpenFileLocation reveals path in the system file manager
func (d *Dialogs) OpenFileLocation(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return platform.OpenFileLocation(path)
}
