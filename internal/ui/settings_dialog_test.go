package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/simplehac/simpletoolkit/internal/config"
	"github.com/simplehac/simpletoolkit/internal/model"
)

func newTestSettingsDialog(t *testing.T, onSave func(SettingsResult)) *SettingsDialog {
	t.Helper()
	app := test.NewApp()
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)
	return NewSettingsDialog(config.NewSettings(app), window, NewLocalization(), onSave)
}

func TestSettingsDialog_Collect(t *testing.T) {
	sd := newTestSettingsDialog(t, nil)

	prefs := model.DefaultPreferences()
	prefs.ThemeMode = model.ThemeModeDark
	prefs.ThemeColor = ColorThemes[3].Encode()
	prefs.DeveloperMode = true
	sd.Show(prefs)

	result := sd.collect()
	if result.Preferences.ThemeMode != model.ThemeModeDark {
		t.Errorf("ThemeMode = %s, expected dark", result.Preferences.ThemeMode)
	}
	ct, ok := ParseColorTheme(result.Preferences.ThemeColor)
	if !ok || ct.Primary != ColorThemes[3].Primary {
		t.Errorf("Expected green preset, got %+v", ct)
	}
	if !result.Preferences.DeveloperMode {
		t.Error("Expected developer mode to be kept")
	}
	if result.APIBaseURL != config.DefaultAPIBaseURL {
		t.Errorf("APIBaseURL = %q, expected %q", result.APIBaseURL, config.DefaultAPIBaseURL)
	}
	if result.Language != LanguageSystem {
		t.Errorf("Language = %q, expected %q", result.Language, LanguageSystem)
	}
}

func TestSettingsDialog_Confirm(t *testing.T) {
	var saved *SettingsResult
	sd := newTestSettingsDialog(t, func(r SettingsResult) { saved = &r })
	sd.Show(model.DefaultPreferences())

	sd.themeModeRadio.SetSelected(sd.localization.GetText(KeyThemeLight))
	sd.colorSelect.SetSelected(sd.localization.GetText(KeyThemeColorDefault))
	sd.languageSelect.SetSelected("简体中文")

	sd.onConfirm(false)
	if saved != nil {
		t.Fatal("Expected cancel not to save")
	}

	sd.onConfirm(true)
	if saved == nil {
		t.Fatal("Expected confirm to save")
	}
	if saved.Preferences.ThemeMode != model.ThemeModeLight {
		t.Errorf("ThemeMode = %s, expected light", saved.Preferences.ThemeMode)
	}
	if saved.Preferences.ThemeColor != nil {
		t.Errorf("Expected default colour to clear the theme colour, got %s", *saved.Preferences.ThemeColor)
	}
	if saved.Language != LanguageChinese {
		t.Errorf("Language = %q, expected %q", saved.Language, LanguageChinese)
	}
}

func TestValidators(t *testing.T) {
	tests := []struct {
		name     string
		validate func(string) error
		value    string
		valid    bool
	}{
		{"backend http", validateBackendURL, "http://127.0.0.1:5000", true},
		{"backend https", validateBackendURL, "https://example.com", true},
		{"backend no scheme", validateBackendURL, "127.0.0.1:5000", false},
		{"backend ftp", validateBackendURL, "ftp://example.com", false},
		{"push host port", validatePushAddress, "127.0.0.1:5050", true},
		{"push port only", validatePushAddress, ":5050", true},
		{"push no port", validatePushAddress, "127.0.0.1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.validate(tt.value)
			if (err == nil) != tt.valid {
				t.Errorf("validate(%q) = %v, expected valid=%v", tt.value, err, tt.valid)
			}
		})
	}
}
