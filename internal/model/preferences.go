package model

// ThemeMode selects the light or dark palette
type ThemeMode string

const (
	ThemeModeLight  ThemeMode = "light"
	ThemeModeDark   ThemeMode = "dark"
	ThemeModeSystem ThemeMode = "system"
)

// IsValid reports whether m is a known theme mode
func (m ThemeMode) IsValid() bool {
	return m == ThemeModeLight || m == ThemeModeDark || m == ThemeModeSystem
}

// Preferences are the user-facing application preferences stored by the
// backend preferences API.
type Preferences struct {
	ThemeColor        *string            `json:"themeColor"`
	ThemeMode         ThemeMode          `json:"themeMode"`
	AnimationsEnabled bool               `json:"animationsEnabled"`
	AutoUpdateCheck   bool               `json:"autoUpdateCheck"`
	DeveloperMode     bool               `json:"developerMode"`
	RadioGroups       map[string]*string `json:"radioGroups"`
}

// DefaultPreferences returns the preferences used when none are stored
func DefaultPreferences() Preferences {
	return Preferences{
		ThemeColor:        nil,
		ThemeMode:         ThemeModeSystem,
		AnimationsEnabled: true,
		AutoUpdateCheck:   true,
		DeveloperMode:     false,
		RadioGroups:       map[string]*string{},
	}
}

// Normalize replaces invalid values with defaults, the same way the backend validates them
func (p *Preferences) Normalize() {
	if !p.ThemeMode.IsValid() {
		p.ThemeMode = ThemeModeSystem
	}
	if p.RadioGroups == nil {
		p.RadioGroups = map[string]*string{}
	}
}
