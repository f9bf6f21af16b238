package ui

import (
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	AppIcon = "simpletoolkit.png"
)

// LoadLogoResource loads the logo from the working directory or next to the executable
func LoadLogoResource() (fyne.Resource, error) {
	res, err := fyne.LoadResourceFromPath(AppIcon)
	if err == nil {
		return res, nil
	}
	exe, exeErr := os.Executable()
	if exeErr != nil {
		return nil, err
	}
	return fyne.LoadResourceFromPath(filepath.Join(filepath.Dir(exe), AppIcon))
}

// LogoOrDefault returns the logo, or the theme's computer icon when the file is missing
func LogoOrDefault() fyne.Resource {
	if res, err := LoadLogoResource(); err == nil {
		return res
	}
	return theme.ComputerIcon()
}
