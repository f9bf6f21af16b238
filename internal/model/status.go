package model

// SessionStatus represents the lifecycle state of a download session
type SessionStatus string

const (
	// StatusSelectingPath means the save-path picker is open
	StatusSelectingPath SessionStatus = "selecting-path"

	// StatusVerifyingPath means the backend is checking the chosen path is writable
	StatusVerifyingPath SessionStatus = "verifying-path"

	// StatusStarting means the start request was sent to the backend
	StatusStarting SessionStatus = "starting"

	// StatusDownloading means the backend accepted the transfer and reports progress
	StatusDownloading SessionStatus = "downloading"

	// StatusCompleted means the transfer finished successfully
	StatusCompleted SessionStatus = "completed"

	// StatusError means the transfer failed
	StatusError SessionStatus = "error"

	// StatusCancelled means the backend acknowledged a cancellation
	StatusCancelled SessionStatus = "cancelled"
)

// String returns the string representation of SessionStatus
func (s SessionStatus) String() string {
	return string(s)
}

// IsValid reports whether s is one of the known lifecycle states
func (s SessionStatus) IsValid() bool {
	switch s {
	case StatusSelectingPath, StatusVerifyingPath, StatusStarting,
		StatusDownloading, StatusCompleted, StatusError, StatusCancelled:
		return true
	}
	return false
}

// IsActive returns true while the acquisition protocol or the transfer is running
func (s SessionStatus) IsActive() bool {
	return s == StatusSelectingPath || s == StatusVerifyingPath || s == StatusStarting || s == StatusDownloading
}

// IsTerminal returns true if the session reached a final state (completed, error, or cancelled)
func (s SessionStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusError || s == StatusCancelled
}
