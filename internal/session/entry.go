package session

import "github.com/simplehac/simpletoolkit/internal/model"

// EntryIDPrefix is prepended to session ids to form list entry ids
const EntryIDPrefix = "download-"

// EntryAction is the contextual action offered by a list entry
type EntryAction string

const (
	ActionNone         EntryAction = "none"
	ActionCancel       EntryAction = "cancel"
	ActionOpenLocation EntryAction = "open-location"
	ActionRetry        EntryAction = "retry"
)

// ListEntry is one row of the downloads list
type ListEntry struct {
	ID      string
	Session model.DownloadSession
	Action  EntryAction
}

// EntryID returns the list entry id for a session id
func EntryID(sessionID string) string {
	return EntryIDPrefix + sessionID
}

// ActionFor returns the action offered for status
func ActionFor(status model.SessionStatus) EntryAction {
	switch status {
	case model.StatusCompleted:
		return ActionOpenLocation
	case model.StatusError:
		return ActionRetry
	case model.StatusCancelled:
		return ActionNone
	default:
		return ActionCancel
	}
}

func newListEntry(s *model.DownloadSession) ListEntry {
	return ListEntry{
		ID:      EntryID(s.ID),
		Session: *s.Clone(),
		Action:  ActionFor(s.Status),
	}
}
