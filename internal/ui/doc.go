package ui

// Package ui contains the Fyne-based desktop user interface of the toolkit.
// It renders the disk-image catalog and the downloads list, binds download
// buttons to the session manager, and shows toasts, the path recovery dialog,
// settings and update dialogs. All UI strings are localized via Localization.
