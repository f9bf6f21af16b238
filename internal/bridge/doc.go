package bridge

// Package bridge exposes the native host capabilities the download flow
// depends on: the save-path picker, the downloads directory lookup and the
// reveal-in-file-manager action.
//
// The bridge may become available after the UI is already interactive, so
// callers reach it through a Loader that blocks until one is attached.
