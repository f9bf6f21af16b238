package api

// Package api is the HTTP client for the local backend service: disk-image
// catalog, preferences, update checks and the download control endpoints
// (verify-path, start-download, cancel-download). Every call takes a context
// and returns explicit errors; backend refusals are reported as *RejectedError.
