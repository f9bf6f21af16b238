package model

import (
	"regexp"
	"strings"
)

// DiskImageExtension is appended to suggested filenames
const DiskImageExtension = ".dmg"

var whitespaceRun = regexp.MustCompile(`\s+`)

// DiskImage is one downloadable entry of the image catalog
type DiskImage struct {
	Title       string `json:"title"`
	Version     string `json:"version"`
	Build       string `json:"build"`
	Size        string `json:"size"`
	ReleaseDate string `json:"releaseDate"`
	DownloadURL string `json:"downloadUrl"`
}

// DisplayName returns "<title> <version>"
func (d *DiskImage) DisplayName() string {
	return strings.TrimSpace(d.Title + " " + d.Version)
}

// SuggestedFilename returns the filename hint passed to the save dialog:
// the title with whitespace runs replaced by underscores, the version and
// the .dmg extension.
func (d *DiskImage) SuggestedFilename() string {
	title := whitespaceRun.ReplaceAllString(d.Title, "_")
	return title + "_" + d.Version + DiskImageExtension
}
