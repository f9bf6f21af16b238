package ui

import (
	"encoding/json"
	"fmt"
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/simplehac/simpletoolkit/internal/model"
)

// ColorTheme is an accent preset. Preferences store it JSON-encoded in themeColor.
type ColorTheme struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Name      string `json:"name"`
}

// ColorThemes are the accent presets offered in settings
var ColorThemes = []ColorTheme{
	{Primary: "#3a7bd5", Secondary: "#00d2ff", Name: "蓝色渐变"},
	{Primary: "#8E2DE2", Secondary: "#4A00E0", Name: "紫色渐变"},
	{Primary: "#f12711", Secondary: "#f5af19", Name: "橙红渐变"},
	{Primary: "#11998e", Secondary: "#38ef7d", Name: "绿色渐变"},
	{Primary: "#c31432", Secondary: "#240b36", Name: "深红渐变"},
}

// ParseColorTheme decodes a stored themeColor value. It returns false for
// nil, empty or malformed values and for presets with an invalid primary colour.
func ParseColorTheme(raw *string) (ColorTheme, bool) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return ColorTheme{}, false
	}
	var ct ColorTheme
	if err := json.Unmarshal([]byte(*raw), &ct); err != nil {
		return ColorTheme{}, false
	}
	if _, ok := ParseHexColor(ct.Primary); !ok {
		return ColorTheme{}, false
	}
	return ct, true
}

// Encode returns the themeColor value stored in preferences
func (ct ColorTheme) Encode() *string {
	data, err := json.Marshal(ct)
	if err != nil {
		return nil
	}
	s := string(data)
	return &s
}

// ParseHexColor parses "#rrggbb" or "#rgb"
func ParseHexColor(s string) (color.NRGBA, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	c := color.NRGBA{A: 0xff}
	switch len(s) {
	case 6:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
			return color.NRGBA{}, false
		}
	case 3:
		if _, err := fmt.Sscanf(s, "%1x%1x%1x", &c.R, &c.G, &c.B); err != nil {
			return color.NRGBA{}, false
		}
		c.R *= 17
		c.G *= 17
		c.B *= 17
	default:
		return color.NRGBA{}, false
	}
	return c, true
}

// AppTheme is a compact theme that honours the preferred theme mode and accent colour
type AppTheme struct {
	mode   model.ThemeMode
	accent color.Color
}

// NewAppTheme creates a theme for mode; a nil accent keeps the default primary colour
func NewAppTheme(mode model.ThemeMode, accent *ColorTheme) *AppTheme {
	t := &AppTheme{mode: mode}
	if accent != nil {
		if c, ok := ParseHexColor(accent.Primary); ok {
			t.accent = c
		}
	}
	return t
}

// NewAppThemeFromPreferences creates the theme described by prefs
func NewAppThemeFromPreferences(prefs model.Preferences) *AppTheme {
	if ct, ok := ParseColorTheme(prefs.ThemeColor); ok {
		return NewAppTheme(prefs.ThemeMode, &ct)
	}
	return NewAppTheme(prefs.ThemeMode, nil)
}

// Mode returns the theme mode
func (t *AppTheme) Mode() model.ThemeMode {
	return t.mode
}

// variant forces light or dark unless the mode follows the system
func (t *AppTheme) variant(v fyne.ThemeVariant) fyne.ThemeVariant {
	switch t.mode {
	case model.ThemeModeLight:
		return theme.VariantLight
	case model.ThemeModeDark:
		return theme.VariantDark
	default:
		return v
	}
}

// Color returns theme colors
func (t *AppTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	variant = t.variant(variant)

	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 193, B: 7, A: 255}
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		if t.accent != nil {
			return t.accent
		}
		if name == theme.ColorNamePrimary {
			return color.RGBA{R: 58, G: 123, B: 213, A: 255}
		}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255}
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *AppTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *AppTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *AppTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 18
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNameCaptionText:
		return 11
	case theme.SizeNameInputRadius:
		return 4
	case theme.SizeNameSelectionRadius:
		return 3
	}

	return theme.DefaultTheme().Size(name)
}
