package model

// UpdateInfo is the backend's answer to an update check
type UpdateInfo struct {
	LatestVersion string `json:"latestVersion"`
	ReleaseDate   string `json:"releaseDate,omitempty"`
	ReleaseNotes  string `json:"releaseNotes,omitempty"`
	DownloadURL   string `json:"downloadUrl"`
}
