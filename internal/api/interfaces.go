package api

import (
	"context"

	"github.com/simplehac/simpletoolkit/internal/model"
)

// Backend defines the download control surface of the backend service.
type Backend interface {
	// VerifyPath asks the backend to confirm the path is writable
	VerifyPath(ctx context.Context, path string) error

	// StartDownload asks the backend to start a transfer and returns its download id
	StartDownload(ctx context.Context, req StartRequest) (string, error)

	// CancelDownload asks the backend to stop a transfer; true means acknowledged
	CancelDownload(ctx context.Context, downloadID string) (bool, error)
}

// CatalogSource lists downloadable disk images.
type CatalogSource interface {
	ListImages(ctx context.Context, cacheBuster string) ([]model.DiskImage, error)
}

// PreferencesStore reads and writes the remote application preferences.
type PreferencesStore interface {
	GetPreferences(ctx context.Context) (model.Preferences, error)
	SavePreferences(ctx context.Context, prefs model.Preferences) error
}

// UpdateSource returns information about the latest release.
type UpdateSource interface {
	CheckUpdate(ctx context.Context) (*model.UpdateInfo, error)
}
