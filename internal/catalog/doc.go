package catalog

// Package catalog loads the list of downloadable disk images from the backend
// and keeps the last successful result for the UI.
