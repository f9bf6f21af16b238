package bridge

import "context"

// Bridge defines the native capabilities used by the session manager.
type Bridge interface {
	// SelectSavePath opens a save dialog suggesting filename. An empty path
	// with a nil error means the user dismissed the dialog.
	SelectSavePath(ctx context.Context, filename string) (string, error)

	// DownloadsDir returns the user's default downloads directory
	DownloadsDir(ctx context.Context) (string, error)

	// OpenFileLocation reveals path in the system file manager
	OpenFileLocation(ctx context.Context, path string) error
}
