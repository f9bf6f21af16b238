package session

// RecoveryChoice is the user's answer to a path verification failure
type RecoveryChoice string

const (
	// RecoveryRetry picks a new path from the save dialog
	RecoveryRetry RecoveryChoice = "retry"
	// RecoveryDefault uses the downloads directory with the sanitized filename
	RecoveryDefault RecoveryChoice = "default"
	// RecoveryCancel aborts the download
	RecoveryCancel RecoveryChoice = "cancel"
)

// String returns the string representation of the choice
func (c RecoveryChoice) String() string {
	return string(c)
}

// NoticeKind selects the style of a notification
type NoticeKind string

const (
	NoticeInfo    NoticeKind = "info"
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)
