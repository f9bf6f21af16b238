package session

import (
	"context"

	"github.com/simplehac/simpletoolkit/internal/model"
)

// Control is a UI element bound to a download, usually the download button
type Control interface {
	// ControlID returns a stable id for the control
	ControlID() string

	// SetState updates the visual state. Called from any goroutine.
	SetState(state ControlState, label string)
}

// View renders the downloads list
type View interface {
	// UpsertEntry inserts entry at the top when isNew, otherwise updates it in place
	UpsertEntry(entry ListEntry, isNew bool)

	// MarkCancelled greys out the entry and disables its cancel action
	MarkCancelled(entryID string)
}

// Notifier shows transient messages to the user
type Notifier interface {
	Notify(kind NoticeKind, message string)
}

// RecoveryPrompter asks the user how to proceed after path verification failed
type RecoveryPrompter interface {
	PromptRecovery(ctx context.Context, path, message string) (RecoveryChoice, error)
}

// Downloader defines the interface for the session manager.
type Downloader interface {
	StartDownload(ctx context.Context, url, filename string, control Control) (*model.DownloadSession, error)
	CancelDownload(ctx context.Context, id string) error
	Retry(ctx context.Context, id string) (*model.DownloadSession, error)
	AddOrUpdateListEntry(s *model.DownloadSession)
	OnProgressEvent(s *model.DownloadSession)
	OpenFileLocation(ctx context.Context, path string) error
	Active() []*model.DownloadSession
}
