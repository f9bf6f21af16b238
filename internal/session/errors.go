package session

import "errors"

var (
	// ErrEmptyURL is returned when a download is started without a source URL
	ErrEmptyURL = errors.New("download url is empty")

	// ErrCancelled is returned when the user dismisses the save dialog or
	// chooses cancel in the recovery prompt
	ErrCancelled = errors.New("download cancelled by user")

	// ErrDialogUnavailable is returned when the save dialog failed on every attempt
	ErrDialogUnavailable = errors.New("cannot open save dialog")

	// ErrCancelRejected is returned when the backend did not acknowledge a cancel request
	ErrCancelRejected = errors.New("backend did not acknowledge cancel")

	// ErrUnknownSession is returned when an operation names a session the manager never saw
	ErrUnknownSession = errors.New("unknown download session")
)
