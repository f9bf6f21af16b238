package ui

import (
	"errors"
	"net"
	"net/url"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/simplehac/simpletoolkit/internal/config"
	"github.com/simplehac/simpletoolkit/internal/model"
)

// colorThemeKeys are the localized labels of ColorThemes, in the same order
var colorThemeKeys = []string{KeyColorBlue, KeyColorPurple, KeyColorOrange, KeyColorGreen, KeyColorCrimson}

// SettingsResult is what the user confirmed in the settings dialog
type SettingsResult struct {
	Preferences model.Preferences
	Language    string
	APIBaseURL  string
	PushAddress string
}

// SettingsDialog edits the remote preferences and the local connection settings
type SettingsDialog struct {
	settings     *config.Settings
	window       fyne.Window
	localization *Localization
	dialog       *dialog.ConfirmDialog
	onSave       func(SettingsResult)

	prefs model.Preferences

	themeModeRadio  *widget.RadioGroup
	colorSelect     *widget.Select
	animationsCheck *widget.Check
	autoUpdateCheck *widget.Check
	developerCheck  *widget.Check
	languageSelect  *widget.Select
	backendEntry    *widget.Entry
	pushEntry       *widget.Entry
}

// NewSettingsDialog creates a new settings dialog; onSave receives the confirmed values
func NewSettingsDialog(settings *config.Settings, window fyne.Window, localization *Localization, onSave func(SettingsResult)) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		window:       window,
		localization: localization,
		onSave:       onSave,
		prefs:        model.DefaultPreferences(),
	}

	sd.createUI()
	return sd
}

// Show displays the dialog filled with prefs and the local settings
func (sd *SettingsDialog) Show(prefs model.Preferences) {
	sd.prefs = prefs
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.themeModeRadio = widget.NewRadioGroup(sd.themeModeLabels(), nil)
	sd.themeModeRadio.Horizontal = true
	sd.themeModeRadio.Required = true

	sd.colorSelect = widget.NewSelect(sd.colorLabels(), nil)

	sd.animationsCheck = widget.NewCheck(l.GetText(KeyAnimations), nil)
	sd.autoUpdateCheck = widget.NewCheck(l.GetText(KeyAutoUpdate), nil)
	sd.developerCheck = widget.NewCheck(l.GetText(KeyDeveloperMode), nil)

	sd.languageSelect = widget.NewSelect(sd.languageLabels(), nil)

	sd.backendEntry = widget.NewEntry()
	sd.backendEntry.SetPlaceHolder(config.DefaultAPIBaseURL)
	sd.backendEntry.Validator = validateBackendURL

	sd.pushEntry = widget.NewEntry()
	sd.pushEntry.SetPlaceHolder(config.DefaultPushAddress)
	sd.pushEntry.Validator = validatePushAddress

	restartHint := widget.NewLabel(l.GetText(KeyRestartRequired))
	restartHint.Importance = widget.LowImportance

	form := container.NewVBox(
		widget.NewLabelWithStyle(l.GetText(KeyAppearance), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),
		widget.NewForm(
			widget.NewFormItem(l.GetText(KeyThemeMode), sd.themeModeRadio),
			widget.NewFormItem(l.GetText(KeyThemeColor), sd.colorSelect),
			widget.NewFormItem(l.GetText(KeyLanguage), sd.languageSelect),
		),
		sd.animationsCheck,
		sd.autoUpdateCheck,
		sd.developerCheck,

		widget.NewSeparator(),
		widget.NewForm(
			widget.NewFormItem(l.GetText(KeyBackendURL), sd.backendEntry),
			widget.NewFormItem(l.GetText(KeyPushAddress), sd.pushEntry),
		),
		restartHint,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		container.NewVScroll(form),
		sd.onConfirm,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings copies prefs and the local settings into the widgets
func (sd *SettingsDialog) loadCurrentSettings() {
	p := sd.prefs
	sd.themeModeRadio.SetSelected(sd.themeModeLabel(p.ThemeMode))
	sd.colorSelect.SetSelected(sd.colorLabel(p.ThemeColor))
	sd.animationsCheck.SetChecked(p.AnimationsEnabled)
	sd.autoUpdateCheck.SetChecked(p.AutoUpdateCheck)
	sd.developerCheck.SetChecked(p.DeveloperMode)

	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
	sd.backendEntry.SetText(sd.settings.GetAPIBaseURL())
	sd.pushEntry.SetText(sd.settings.GetPushAddress())
}

// collect builds the result from the widgets. Fields the dialog does not
// edit are carried over from the shown preferences.
func (sd *SettingsDialog) collect() SettingsResult {
	p := sd.prefs
	p.ThemeMode = sd.themeModeFromLabel(sd.themeModeRadio.Selected)
	p.ThemeColor = sd.colorFromLabel(sd.colorSelect.Selected)
	p.AnimationsEnabled = sd.animationsCheck.Checked
	p.AutoUpdateCheck = sd.autoUpdateCheck.Checked
	p.DeveloperMode = sd.developerCheck.Checked
	p.Normalize()

	return SettingsResult{
		Preferences: p,
		Language:    sd.languageFromLabel(sd.languageSelect.Selected),
		APIBaseURL:  strings.TrimSpace(sd.backendEntry.Text),
		PushAddress: strings.TrimSpace(sd.pushEntry.Text),
	}
}

// onConfirm handles the dialog buttons
func (sd *SettingsDialog) onConfirm(confirmed bool) {
	if !confirmed {
		return
	}
	if sd.onSave != nil {
		sd.onSave(sd.collect())
	}
}

func (sd *SettingsDialog) themeModeLabels() []string {
	l := sd.localization
	return []string{l.GetText(KeyThemeLight), l.GetText(KeyThemeDark), l.GetText(KeyThemeSystem)}
}

func (sd *SettingsDialog) themeModeLabel(mode model.ThemeMode) string {
	l := sd.localization
	switch mode {
	case model.ThemeModeLight:
		return l.GetText(KeyThemeLight)
	case model.ThemeModeDark:
		return l.GetText(KeyThemeDark)
	default:
		return l.GetText(KeyThemeSystem)
	}
}

func (sd *SettingsDialog) themeModeFromLabel(label string) model.ThemeMode {
	l := sd.localization
	switch label {
	case l.GetText(KeyThemeLight):
		return model.ThemeModeLight
	case l.GetText(KeyThemeDark):
		return model.ThemeModeDark
	default:
		return model.ThemeModeSystem
	}
}

func (sd *SettingsDialog) colorLabels() []string {
	labels := []string{sd.localization.GetText(KeyThemeColorDefault)}
	for _, key := range colorThemeKeys {
		labels = append(labels, sd.localization.GetText(key))
	}
	return labels
}

func (sd *SettingsDialog) colorLabel(raw *string) string {
	ct, ok := ParseColorTheme(raw)
	if ok {
		for i, preset := range ColorThemes {
			if strings.EqualFold(preset.Primary, ct.Primary) && strings.EqualFold(preset.Secondary, ct.Secondary) {
				return sd.localization.GetText(colorThemeKeys[i])
			}
		}
	}
	return sd.localization.GetText(KeyThemeColorDefault)
}

func (sd *SettingsDialog) colorFromLabel(label string) *string {
	for i, key := range colorThemeKeys {
		if sd.localization.GetText(key) == label {
			return ColorThemes[i].Encode()
		}
	}
	return nil
}

// languageLabels returns the display names sorted with "system" first
func (sd *SettingsDialog) languageLabels() []string {
	options := sd.settings.GetLanguageOptions()
	codes := make([]string, 0, len(options))
	for code := range options {
		if code != LanguageSystem {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)

	labels := []string{options[LanguageSystem]}
	for _, code := range codes {
		labels = append(labels, options[code])
	}
	return labels
}

func (sd *SettingsDialog) languageFromLabel(label string) string {
	for code, name := range sd.settings.GetLanguageOptions() {
		if name == label {
			return code
		}
	}
	return LanguageSystem
}

func validateBackendURL(value string) error {
	u, err := url.Parse(strings.TrimSpace(value))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("expected http://host:port")
	}
	return nil
}

func validatePushAddress(value string) error {
	if _, port, err := net.SplitHostPort(strings.TrimSpace(value)); err != nil || port == "" {
		return errors.New("expected host:port")
	}
	return nil
}
