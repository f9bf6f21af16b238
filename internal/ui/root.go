package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/simplehac/simpletoolkit/internal/api"
	"github.com/simplehac/simpletoolkit/internal/bridge"
	"github.com/simplehac/simpletoolkit/internal/catalog"
	"github.com/simplehac/simpletoolkit/internal/config"
	"github.com/simplehac/simpletoolkit/internal/model"
	"github.com/simplehac/simpletoolkit/internal/platform"
	"github.com/simplehac/simpletoolkit/internal/session"
	"github.com/simplehac/simpletoolkit/internal/update"
)

// Services are the backend-facing components the UI drives
type Services struct {
	Backend     api.Backend
	Preferences api.PreferencesStore
	Catalog     *catalog.Catalog
	Updater     *update.Checker
	Loader      *bridge.Loader
}

// RootUI is the main window: the image catalog on top, the download queue below
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	services     Services

	manager        *session.Manager
	imageList      *ImageList
	downloadsList  *DownloadsList
	toaster        *Toaster
	recovery       *RecoveryDialog
	settingsDialog *SettingsDialog
	updateDialog   *UpdateDialog

	subtitleLabel  *widget.Label
	developerLabel *widget.Label
	updateBtn      *widget.Button
	checkUpdateBtn *widget.Button
	settingsBtn    *widget.Button

	prefsMutex sync.RWMutex
	prefs      model.Preferences
	available  *update.Result

	ctx    context.Context
	cancel context.CancelFunc
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, services Services) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ctx, cancel := context.WithCancel(context.Background())
	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		services:     services,
		prefs:        model.DefaultPreferences(),
		ctx:          ctx,
		cancel:       cancel,
	}

	ui.toaster = NewToaster(window, localization)
	ui.recovery = NewRecoveryDialog(window, localization)
	ui.downloadsList = NewDownloadsList(localization)
	ui.manager = session.NewManager(services.Backend, services.Loader, ui.downloadsList, ui.toaster, ui.recovery, session.Options{
		Text: localization.SessionText(),
	})
	ui.settingsDialog = NewSettingsDialog(settings, window, localization, ui.onSettingsSaved)
	ui.updateDialog = NewUpdateDialog(window, localization, platform.OpenURL)

	ui.applyCachedTheme()
	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// Manager returns the session manager; the push server delivers progress events to it
func (ui *RootUI) Manager() *session.Manager {
	return ui.manager
}

// Preferences returns the last loaded or saved preferences
func (ui *RootUI) Preferences() model.Preferences {
	ui.prefsMutex.RLock()
	defer ui.prefsMutex.RUnlock()
	return ui.prefs
}

// Start loads preferences and the catalog, then checks for updates when enabled
func (ui *RootUI) Start() {
	go func() {
		prefs := ui.loadPreferences()
		ui.loadCatalog()
		if prefs.AutoUpdateCheck {
			select {
			case <-time.After(AutoUpdateCheckDelay):
				ui.checkForUpdates(true)
			case <-ui.ctx.Done():
			}
		}
	}()
}

// Close cancels background work started by the UI
func (ui *RootUI) Close() {
	ui.cancel()
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()
	l := ui.localization

	logo := canvas.NewImageFromResource(LogoOrDefault())
	logo.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
	logo.FillMode = canvas.ImageFillContain

	title := widget.NewLabelWithStyle(l.GetText(KeyAppTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.subtitleLabel = widget.NewLabel(l.GetText(KeyAppSubtitle))
	ui.subtitleLabel.Importance = widget.LowImportance

	ui.developerLabel = widget.NewLabel(l.GetText(KeyDeveloperBadge))
	ui.developerLabel.Importance = widget.WarningImportance
	ui.developerLabel.Hide()

	ui.updateBtn = widget.NewButtonWithIcon("", theme.DownloadIcon(), ui.onShowUpdate)
	ui.updateBtn.Importance = widget.SuccessImportance
	ui.updateBtn.Hide()

	ui.checkUpdateBtn = widget.NewButtonWithIcon(l.GetText(KeyCheckUpdate), theme.ViewRefreshIcon(), func() {
		go ui.checkForUpdates(false)
	})
	ui.checkUpdateBtn.Importance = widget.LowImportance

	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	topPanel := container.NewBorder(nil, nil,
		container.NewHBox(logo, title, ui.subtitleLabel),
		container.NewHBox(ui.developerLabel, ui.updateBtn, ui.checkUpdateBtn, ui.settingsBtn),
	)

	ui.imageList = NewImageList(l)
	ui.imageList.SetCallbacks(ui.onDownloadImage, ui.onCopyLink, ui.onRefreshCatalog)
	ui.downloadsList.SetCallbacks(ui.onCancelDownload, ui.onOpenLocation, ui.onRetryDownload)

	split := container.NewVSplit(ui.imageList.Container(), ui.downloadsList.Container())
	split.Offset = ListSplitOffset

	content := container.NewBorder(
		container.NewVBox(topPanel, widget.NewSeparator()),
		nil,
		nil,
		nil,
		split,
	)

	ui.window.SetContent(content)
	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	l := ui.localization

	settingsItem := fyne.NewMenuItem(l.GetText(KeySettings), ui.onShowSettings)
	updateItem := fyne.NewMenuItem(l.GetText(KeyCheckUpdate), func() {
		go ui.checkForUpdates(false)
	})
	refreshItem := fyne.NewMenuItem(l.GetText(KeyRefresh), ui.onRefreshCatalog)

	languageMenu := fyne.NewMenu(l.GetText(KeyLanguage))
	for code, name := range l.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if l.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(l.GetText(KeyFile), refreshItem, updateItem, fyne.NewMenuItemSeparator(), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.manager.SetText(ui.localization.SessionText())

	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	l := ui.localization
	ui.window.SetTitle(l.GetText(KeyAppTitle))
	ui.subtitleLabel.SetText(l.GetText(KeyAppSubtitle))
	ui.developerLabel.SetText(l.GetText(KeyDeveloperBadge))
	ui.checkUpdateBtn.SetText(l.GetText(KeyCheckUpdate))
	if ui.available != nil {
		ui.updateBtn.SetText(fmt.Sprintf(l.GetText(KeyUpdateAvailable), ui.available.Info.LatestVersion))
	}
	ui.imageList.RefreshTexts()
	ui.downloadsList.RefreshTexts()

	// Dialogs are rebuilt so their labels follow the new language
	ui.settingsDialog = NewSettingsDialog(ui.settings, ui.window, l, ui.onSettingsSaved)
}

// Catalog

func (ui *RootUI) loadCatalog() {
	ctx, cancel := context.WithTimeout(ui.ctx, CatalogTimeout)
	defer cancel()

	images, err := ui.services.Catalog.Load(ctx, false)
	fyne.Do(func() {
		if err != nil {
			log.Printf("Failed to load image list: %v", err)
			ui.imageList.ShowError(ui.localization.GetText(KeyImagesFailed) + ": " + api.MessageOf(err, ""))
			return
		}
		ui.imageList.SetImages(images)
	})
}

func (ui *RootUI) onRefreshCatalog() {
	ui.imageList.SetRefreshing(true)
	go func() {
		ctx, cancel := context.WithTimeout(ui.ctx, CatalogTimeout)
		defer cancel()

		images, err := ui.services.Catalog.Refresh(ctx)
		fyne.Do(func() {
			ui.imageList.SetRefreshing(false)
			if err != nil {
				log.Printf("Failed to refresh image list: %v", err)
				ui.imageList.ShowError(ui.localization.GetText(KeyImagesFailed))
				ui.toaster.Notify(session.NoticeError, ui.localization.GetText(KeyRefreshFailed))
				return
			}
			ui.imageList.SetImages(images)
		})
	}()
}

func (ui *RootUI) onCopyLink(url string) {
	if url == "" {
		ui.toaster.Notify(session.NoticeError, ui.localization.GetText(KeyCopyLinkFailed))
		return
	}
	ui.app.Clipboard().SetContent(url)
	ui.toaster.Notify(session.NoticeSuccess, ui.localization.GetText(KeyLinkCopied))
}

// Downloads

func (ui *RootUI) onDownloadImage(image model.DiskImage, button *DownloadButton) {
	log.Printf("Download requested for %s", image.DisplayName())
	go func() {
		if _, err := ui.manager.StartDownload(ui.ctx, image.DownloadURL, image.SuggestedFilename(), button); err != nil {
			log.Printf("Download of %s did not start: %v", image.DisplayName(), err)
		}
	}()
}

func (ui *RootUI) onCancelDownload(sessionID string) {
	go func() {
		ctx, cancel := context.WithTimeout(ui.ctx, CancelTimeout)
		defer cancel()
		if err := ui.manager.CancelDownload(ctx, sessionID); err != nil {
			log.Printf("Cancel of %s failed: %v", sessionID, err)
		}
	}()
}

func (ui *RootUI) onOpenLocation(path string) {
	go func() {
		if err := ui.manager.OpenFileLocation(ui.ctx, path); err != nil {
			log.Printf("Open location %s failed: %v", path, err)
		}
	}()
}

func (ui *RootUI) onRetryDownload(sessionID string) {
	go func() {
		if _, err := ui.manager.Retry(ui.ctx, sessionID); err != nil && !errors.Is(err, session.ErrCancelled) {
			log.Printf("Retry of %s failed: %v", sessionID, err)
		}
	}()
}

// Preferences

// loadPreferences fetches the remote preferences and applies them. On
// failure the defaults stay in effect.
func (ui *RootUI) loadPreferences() model.Preferences {
	ctx, cancel := context.WithTimeout(ui.ctx, PreferencesTimeout)
	defer cancel()

	prefs, err := ui.services.Preferences.GetPreferences(ctx)
	if err != nil {
		log.Printf("Failed to load preferences: %v", err)
		ui.toaster.Notify(session.NoticeError, ui.localization.GetText(KeyLoadPrefsFailed))
		prefs = model.DefaultPreferences()
	}
	fyne.Do(func() {
		ui.applyPreferences(prefs)
	})
	return prefs
}

// applyPreferences must run on the UI goroutine
func (ui *RootUI) applyPreferences(prefs model.Preferences) {
	ui.prefsMutex.Lock()
	ui.prefs = prefs
	ui.prefsMutex.Unlock()

	ui.app.Settings().SetTheme(NewAppThemeFromPreferences(prefs))
	accent := ""
	if prefs.ThemeColor != nil {
		accent = *prefs.ThemeColor
	}
	ui.settings.SetCachedTheme(prefs.ThemeMode, accent)

	if prefs.DeveloperMode {
		ui.developerLabel.Show()
	} else {
		ui.developerLabel.Hide()
	}
}

// applyCachedTheme uses the last applied theme until the backend answers
func (ui *RootUI) applyCachedTheme() {
	mode, accent := ui.settings.GetCachedTheme()
	prefs := model.DefaultPreferences()
	prefs.ThemeMode = mode
	if accent != "" {
		prefs.ThemeColor = &accent
	}
	ui.app.Settings().SetTheme(NewAppThemeFromPreferences(prefs))
}

func (ui *RootUI) onShowSettings() {
	ui.settingsDialog.Show(ui.Preferences())
}

// onSettingsSaved stores local settings immediately and the shared
// preferences through the backend
func (ui *RootUI) onSettingsSaved(result SettingsResult) {
	if result.APIBaseURL != "" {
		ui.settings.SetAPIBaseURL(result.APIBaseURL)
	}
	if result.PushAddress != "" {
		ui.settings.SetPushAddress(result.PushAddress)
	}
	if result.Language != ui.settings.GetLanguage() {
		ui.onLanguageChange(result.Language)
	}

	go func() {
		ctx, cancel := context.WithTimeout(ui.ctx, PreferencesTimeout)
		defer cancel()

		if err := ui.services.Preferences.SavePreferences(ctx, result.Preferences); err != nil {
			log.Printf("Failed to save preferences: %v", err)
			ui.toaster.Notify(session.NoticeError, ui.localization.GetText(KeySettingsSaveFailed)+api.MessageOf(err, ""))
			return
		}
		fyne.Do(func() {
			ui.applyPreferences(result.Preferences)
		})
		ui.toaster.Notify(session.NoticeSuccess, ui.localization.GetText(KeySettingsSaved))
	}()
}

// Updates

// checkForUpdates asks the backend for the latest release. A silent check
// only reports an available update.
func (ui *RootUI) checkForUpdates(silent bool) {
	if !silent {
		fyne.Do(func() {
			ui.checkUpdateBtn.SetText(ui.localization.GetText(KeyCheckingUpdate))
			ui.checkUpdateBtn.Disable()
		})
		defer fyne.Do(func() {
			ui.checkUpdateBtn.SetText(ui.localization.GetText(KeyCheckUpdate))
			ui.checkUpdateBtn.Enable()
		})
	}

	ctx, cancel := context.WithTimeout(ui.ctx, UpdateTimeout)
	defer cancel()

	result, err := ui.services.Updater.Check(ctx)
	if errors.Is(err, update.ErrInProgress) {
		return
	}
	if err != nil {
		log.Printf("Update check failed: %v", err)
		if !silent {
			ui.toaster.Notify(session.NoticeError, ui.localization.GetText(KeyUpdateCheckFailed)+api.MessageOf(err, ""))
		}
		return
	}

	if !result.Available {
		if !silent {
			ui.toaster.Notify(session.NoticeInfo, ui.localization.GetText(KeyUpToDate))
		}
		return
	}

	fyne.Do(func() {
		ui.available = result
		ui.updateBtn.SetText(fmt.Sprintf(ui.localization.GetText(KeyUpdateAvailable), result.Info.LatestVersion))
		ui.updateBtn.Show()
		ui.updateDialog.Show(result)
	})
}

func (ui *RootUI) onShowUpdate() {
	if ui.available != nil {
		ui.updateDialog.Show(ui.available)
	}
}
