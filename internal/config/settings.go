package config

import (
	"net"
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
	"github.com/simplehac/simpletoolkit/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyAPIBaseURL      = "api_base_url"
	KeyPushAddress     = "push_listen_address"
	KeyLanguage        = "app_language"
	KeyCachedThemeMode = "cached_theme_mode"
	KeyCachedAccent    = "cached_theme_color"
)

// Default values
const (
	DefaultAPIBaseURL  = "http://127.0.0.1:5848"
	DefaultPushAddress = "127.0.0.1:5849"
	DefaultLanguage    = "system"
)

// Settings manages local application configuration. Preferences shared with
// the backend live in model.Preferences; only the last applied theme is
// cached here so the window opens with the right palette.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAPIBaseURL returns the backend base URL
func (s *Settings) GetAPIBaseURL() string {
	value := s.app.Preferences().String(KeyAPIBaseURL)
	if !isHTTPURL(value) {
		s.SetAPIBaseURL(DefaultAPIBaseURL)
		return DefaultAPIBaseURL
	}
	return value
}

// SetAPIBaseURL sets the backend base URL. Invalid URLs reset to the default.
func (s *Settings) SetAPIBaseURL(baseURL string) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if !isHTTPURL(baseURL) {
		baseURL = DefaultAPIBaseURL
	}
	s.app.Preferences().SetString(KeyAPIBaseURL, baseURL)
}

// GetPushAddress returns the listen address of the push server
func (s *Settings) GetPushAddress() string {
	value := s.app.Preferences().String(KeyPushAddress)
	if !isHostPort(value) {
		s.SetPushAddress(DefaultPushAddress)
		return DefaultPushAddress
	}
	return value
}

// SetPushAddress sets the push server listen address
func (s *Settings) SetPushAddress(addr string) {
	addr = strings.TrimSpace(addr)
	if !isHostPort(addr) {
		addr = DefaultPushAddress
	}
	s.app.Preferences().SetString(KeyPushAddress, addr)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"zh":     "简体中文",
	}
}

// GetCachedTheme returns the last applied theme mode and accent colour
func (s *Settings) GetCachedTheme() (model.ThemeMode, string) {
	mode := model.ThemeMode(s.app.Preferences().StringWithFallback(KeyCachedThemeMode, string(model.ThemeModeSystem)))
	if !mode.IsValid() {
		mode = model.ThemeModeSystem
	}
	return mode, s.app.Preferences().String(KeyCachedAccent)
}

// SetCachedTheme remembers the theme applied from remote preferences
func (s *Settings) SetCachedTheme(mode model.ThemeMode, accent string) {
	s.app.Preferences().SetString(KeyCachedThemeMode, string(mode))
	s.app.Preferences().SetString(KeyCachedAccent, accent)
}

func isHTTPURL(value string) bool {
	u, err := url.Parse(value)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func isHostPort(value string) bool {
	if value == "" {
		return false
	}
	_, port, err := net.SplitHostPort(value)
	return err == nil && port != ""
}
