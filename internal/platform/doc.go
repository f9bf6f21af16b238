package platform

// Package platform contains OS/platform integration: filesystem helpers,
// the filename sanitizer, default save paths and OS reveal in file manager.
