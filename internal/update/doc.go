package update

// Package update checks the backend for a newer application release.
