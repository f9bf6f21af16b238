package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2/theme"

	"github.com/simplehac/simpletoolkit/internal/model"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input    string
		expected color.NRGBA
		ok       bool
	}{
		{"#3a7bd5", color.NRGBA{R: 0x3a, G: 0x7b, B: 0xd5, A: 0xff}, true},
		{"8E2DE2", color.NRGBA{R: 0x8e, G: 0x2d, B: 0xe2, A: 0xff}, true},
		{"#fff", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, true},
		{"#12345", color.NRGBA{}, false},
		{"#zzzzzz", color.NRGBA{}, false},
		{"", color.NRGBA{}, false},
	}

	for _, test := range tests {
		result, ok := ParseHexColor(test.input)
		if ok != test.ok || result != test.expected {
			t.Errorf("ParseHexColor(%q) = %v, %v, expected %v, %v", test.input, result, ok, test.expected, test.ok)
		}
	}
}

func TestParseColorTheme(t *testing.T) {
	str := func(s string) *string { return &s }

	if _, ok := ParseColorTheme(nil); ok {
		t.Error("Expected nil theme color to be rejected")
	}
	if _, ok := ParseColorTheme(str("not json")); ok {
		t.Error("Expected malformed JSON to be rejected")
	}
	if _, ok := ParseColorTheme(str(`{"primary":"blue"}`)); ok {
		t.Error("Expected invalid primary colour to be rejected")
	}

	ct, ok := ParseColorTheme(ColorThemes[1].Encode())
	if !ok {
		t.Fatal("Expected encoded preset to parse")
	}
	if ct != ColorThemes[1] {
		t.Errorf("ParseColorTheme() = %+v, expected %+v", ct, ColorThemes[1])
	}
}

func TestAppTheme_ModeOverridesVariant(t *testing.T) {
	dark := NewAppTheme(model.ThemeModeDark, nil)
	light := NewAppTheme(model.ThemeModeLight, nil)
	system := NewAppTheme(model.ThemeModeSystem, nil)

	darkBg := color.RGBA{R: 18, G: 18, B: 18, A: 255}
	lightBg := color.RGBA{R: 250, G: 250, B: 250, A: 255}

	if got := dark.Color(theme.ColorNameBackground, theme.VariantLight); got != darkBg {
		t.Errorf("Dark mode background = %v, expected %v", got, darkBg)
	}
	if got := light.Color(theme.ColorNameBackground, theme.VariantDark); got != lightBg {
		t.Errorf("Light mode background = %v, expected %v", got, lightBg)
	}
	if got := system.Color(theme.ColorNameBackground, theme.VariantDark); got != darkBg {
		t.Errorf("System mode should follow the variant, got %v", got)
	}
}

func TestAppTheme_Accent(t *testing.T) {
	prefs := model.DefaultPreferences()
	prefs.ThemeColor = ColorThemes[3].Encode()

	th := NewAppThemeFromPreferences(prefs)
	expected, _ := ParseHexColor(ColorThemes[3].Primary)
	if got := th.Color(theme.ColorNamePrimary, theme.VariantLight); got != expected {
		t.Errorf("Primary colour = %v, expected accent %v", got, expected)
	}

	plain := NewAppThemeFromPreferences(model.DefaultPreferences())
	if got := plain.Color(theme.ColorNamePrimary, theme.VariantLight); got == color.Color(expected) {
		t.Error("Expected default primary colour without an accent")
	}
}
