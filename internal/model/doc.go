package model

// Package model defines domain data structures used across the app: download
// sessions and their lifecycle states, disk-image catalog entries, remote
// preferences and update information. Structures carry JSON tags matching the
// backend wire format so they can be decoded directly.
