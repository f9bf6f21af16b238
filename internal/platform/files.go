package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// Default downloads folder name under the user's home directory
const DownloadsFolderName = "Downloads"

// commandRunner runs an external command; replaced in tests
var commandRunner = func(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

// OpenFileLocation opens the system file manager at the given path. When the
// file exists it is highlighted, otherwise the containing directory is opened.
func OpenFileLocation(filePath string) error {
	if filePath == "" {
		return fmt.Errorf("file path is empty")
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	dir := filepath.Dir(absPath)
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("directory does not exist: %w", err)
	}

	exists := true
	if _, err := os.Stat(absPath); err != nil {
		exists = false
	}

	switch runtime.GOOS {
	case OSDarwin:
		if exists {
			return commandRunner(OpenCommand, MacOSSelectFlag, absPath)
		}
		return commandRunner(OpenCommand, dir)
	case OSWindows:
		if exists {
			return commandRunner(ExplorerCommand, WindowsSelectParam+absPath)
		}
		return commandRunner(ExplorerCommand, dir)
	case OSLinux:
		return openDirectoryLinux(dir)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openDirectoryLinux opens a directory on Linux
// Note: File selection is not standardized on Linux, so we open the parent directory
func openDirectoryLinux(dir string) error {
	// Try xdg-open first (most common)
	if err := commandRunner(XDGOpenCommand, dir); err == nil {
		return nil
	}

	// Fallback to common file managers
	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return commandRunner(fm, dir)
		}
	}

	return fmt.Errorf("no suitable file manager found")
}

// OpenURL opens a web URL with the default browser
func OpenURL(rawURL string) error {
	switch runtime.GOOS {
	case OSDarwin:
		return commandRunner(OpenCommand, rawURL)
	case OSWindows:
		return commandRunner("rundll32", "url.dll,FileProtocolHandler", rawURL)
	case OSLinux:
		return commandRunner(XDGOpenCommand, rawURL)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, DownloadsFolderName), nil
}
