package push

// Package push receives download progress events from the backend.
//
// The backend POSTs a session payload to /push/download whenever a tracked
// transfer changes. Each accepted payload is handed to a Sink, normally the
// session manager.
