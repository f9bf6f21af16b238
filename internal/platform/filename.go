package platform

import (
	"path/filepath"
	"regexp"
)

// MaxFilenameLength is the maximum number of characters kept by SanitizeFilename
const MaxFilenameLength = 255

var (
	illegalFilenameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1F\x7F]`)
	filenameWhitespace   = regexp.MustCompile(`[\s\p{Z}\x{FEFF}]+`)
)

// SanitizeFilename makes a display name safe to use as a filename: the
// characters <>:"/\|?* and ASCII control characters are removed, runs of
// whitespace (Unicode spaces included) become a single underscore and the
// result is capped at MaxFilenameLength characters.
func SanitizeFilename(name string) string {
	name = illegalFilenameChars.ReplaceAllString(name, "")
	name = filenameWhitespace.ReplaceAllString(name, "_")

	runes := []rune(name)
	if len(runes) > MaxFilenameLength {
		runes = runes[:MaxFilenameLength]
	}
	return string(runes)
}

// DefaultSavePath joins a downloads directory with the sanitized filename.
// An empty directory yields the bare sanitized filename.
func DefaultSavePath(downloadsDir, filename string) string {
	safe := SanitizeFilename(filename)
	if downloadsDir == "" {
		return safe
	}
	return filepath.Join(downloadsDir, safe)
}
