package native

// Package native backs bridge.Bridge with the operating system: a native
// save dialog through sqweek/dialog and the platform package for the
// downloads directory and reveal-in-file-manager.
//
// It needs cgo (GTK on Linux), so it lives apart from the bridge package to
// keep the loader and the session manager buildable without it.
