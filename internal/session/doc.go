package session

// Package session implements the download session manager.
//
// A download goes through a fixed sequence of steps: wait for the native
// bridge, pick a save path, have the backend verify it, ask the backend to
// start the transfer, then follow progress events pushed by the backend until
// the session reaches a terminal status. Path verification failures open a
// recovery prompt that lets the user retry, fall back to the default
// downloads directory or cancel.
//
// The manager owns the binding between a session and the UI control that
// started it. Controls, the downloads list and notifications are reached
// through small interfaces so the manager can run without a UI in tests.
