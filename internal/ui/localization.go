package ui

import (
	"os"
	"strings"
	"sync"

	"github.com/simplehac/simpletoolkit/internal/session"
)

// Localization manages UI text translations
type Localization struct {
	mu              sync.RWMutex
	currentLanguage string
	texts           map[string]map[string]string
}

// Language codes
const (
	LanguageSystem  = "system"
	LanguageEnglish = "en"
	LanguageChinese = "zh"
)

// Text keys for localization
const (
	KeyAppTitle    = "app_title"
	KeyAppSubtitle = "app_subtitle"
	KeyFile        = "file"
	KeySettings    = "settings"
	KeyLanguage    = "language"
	KeySave        = "save"
	KeyCancel      = "cancel"
	KeyClose       = "close"
	KeyRetry       = "retry"
	KeyRefresh     = "refresh"
	KeyRefreshing  = "refreshing"

	// Catalog
	KeyImages          = "images"
	KeyLoadingImages   = "loading_images"
	KeyNoImages        = "no_images"
	KeyImagesFailed    = "images_failed"
	KeyRefreshFailed   = "refresh_failed"
	KeyCopyLink        = "copy_link"
	KeyLinkCopied      = "link_copied"
	KeyCopyLinkFailed  = "copy_link_failed"
	KeyCollapse        = "collapse"
	KeyExpand          = "expand"
	KeyImageVersion    = "image_version"
	KeyImageBuild      = "image_build"
	KeyImageSize       = "image_size"
	KeyImageReleasedOn = "image_released_on"

	// Download control and notices
	KeyDownload          = "download"
	KeyPreparing         = "preparing"
	KeyDownloading       = "downloading"
	KeyPathInvalid       = "path_invalid"
	KeyFailedLabel       = "failed_label"
	KeyDownloadCancelled = "download_cancelled"
	KeyDialogUnavailable = "dialog_unavailable"
	KeyPathNotWritable   = "path_not_writable"
	KeyStartFailed       = "start_failed"
	KeyDownloadCompleted = "download_completed"
	KeyDownloadFailed    = "download_failed"
	KeyCancelFailed      = "cancel_failed"
	KeyOpenFailed        = "open_failed"

	// Downloads list
	KeyDownloads      = "downloads"
	KeyNoDownloads    = "no_downloads"
	KeyOpenLocation   = "open_location"
	KeyRemaining      = "remaining"
	KeyStatusSelect   = "status_selecting_path"
	KeyStatusVerify   = "status_verifying_path"
	KeyStatusStarting = "status_starting"
	KeyStatusActive   = "status_downloading"
	KeyStatusDone     = "status_completed"
	KeyStatusError    = "status_error"
	KeyStatusCanceled = "status_cancelled"

	// Recovery dialog
	KeyRecoveryTitle       = "recovery_title"
	KeyRecoverySuggestions = "recovery_suggestions"
	KeyRecoveryOtherFolder = "recovery_other_folder"
	KeyRecoveryPermissions = "recovery_permissions"
	KeyRecoveryAntivirus   = "recovery_antivirus"
	KeyRecoveryRetry       = "recovery_retry"
	KeyRecoveryDefault     = "recovery_default"

	// Settings
	KeyAppearance         = "appearance"
	KeyThemeMode          = "theme_mode"
	KeyThemeLight         = "theme_light"
	KeyThemeDark          = "theme_dark"
	KeyThemeSystem        = "theme_system"
	KeyThemeColor         = "theme_color"
	KeyThemeColorDefault  = "theme_color_default"
	KeyColorBlue          = "color_blue"
	KeyColorPurple        = "color_purple"
	KeyColorOrange        = "color_orange"
	KeyColorGreen         = "color_green"
	KeyColorCrimson       = "color_crimson"
	KeyAnimations         = "animations"
	KeyAutoUpdate         = "auto_update"
	KeyDeveloperMode      = "developer_mode"
	KeyDeveloperBadge     = "developer_badge"
	KeyBackendURL         = "backend_url"
	KeyPushAddress        = "push_address"
	KeyRestartRequired    = "restart_required"
	KeySettingsSaved      = "settings_saved"
	KeySettingsSaveFailed = "settings_save_failed"
	KeyLoadPrefsFailed    = "load_prefs_failed"

	// Updates
	KeyCheckUpdate       = "check_update"
	KeyCheckingUpdate    = "checking_update"
	KeyUpdateAvailable   = "update_available"
	KeyNewVersion        = "new_version"
	KeyReleaseDate       = "release_date"
	KeyNoReleaseNotes    = "no_release_notes"
	KeyUpdateNow         = "update_now"
	KeyLater             = "later"
	KeyUpToDate          = "up_to_date"
	KeyUpdateCheckFailed = "update_check_failed"
	KeyCurrentVersion    = "current_version"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: LanguageEnglish,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" resolves from the
// environment locale; unknown languages are ignored.
func (l *Localization) SetLanguage(lang string) {
	if lang == LanguageSystem || lang == "" {
		lang = systemLanguage()
	}

	if _, exists := l.texts[lang]; exists {
		l.mu.Lock()
		l.currentLanguage = lang
		l.mu.Unlock()
	}
}

// systemLanguage maps LC_ALL / LANG to a supported language code
func systemLanguage() string {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		value := strings.ToLower(os.Getenv(env))
		if value == "" {
			continue
		}
		if strings.HasPrefix(value, LanguageChinese) {
			return LanguageChinese
		}
		return LanguageEnglish
	}
	return LanguageEnglish
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.GetCurrentLanguage()]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts[LanguageEnglish]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		LanguageEnglish: "English",
		LanguageChinese: "简体中文",
	}
}

// SessionText returns the control labels and notices for the session manager
func (l *Localization) SessionText() session.Text {
	return session.Text{
		LabelIdle:        l.GetText(KeyDownload),
		LabelPreparing:   l.GetText(KeyPreparing),
		LabelDownloading: l.GetText(KeyDownloading),
		LabelPathInvalid: l.GetText(KeyPathInvalid),
		LabelFailed:      l.GetText(KeyFailedLabel),

		Cancelled:         l.GetText(KeyDownloadCancelled),
		DialogUnavailable: l.GetText(KeyDialogUnavailable),
		PathNotWritable:   l.GetText(KeyPathNotWritable),
		StartFailed:       l.GetText(KeyStartFailed),
		Completed:         l.GetText(KeyDownloadCompleted),
		DownloadFailed:    l.GetText(KeyDownloadFailed),
		CancelFailed:      l.GetText(KeyCancelFailed),
		OpenFailed:        l.GetText(KeyOpenFailed),
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts[LanguageEnglish] = map[string]string{
		KeyAppTitle:    "SimpleToolkit",
		KeyAppSubtitle: "Download the latest or earlier macOS disk images",
		KeyFile:        "File",
		KeySettings:    "Settings",
		KeyLanguage:    "Language",
		KeySave:        "Save",
		KeyCancel:      "Cancel",
		KeyClose:       "Close",
		KeyRetry:       "Retry",
		KeyRefresh:     "Refresh",
		KeyRefreshing:  "Refreshing...",

		KeyImages:          "Disk images",
		KeyLoadingImages:   "Loading image list...",
		KeyNoImages:        "No images are available right now",
		KeyImagesFailed:    "Failed to load the image list",
		KeyRefreshFailed:   "Refresh failed, please check your network connection",
		KeyCopyLink:        "Copy link",
		KeyLinkCopied:      "Download link copied to clipboard",
		KeyCopyLinkFailed:  "Failed to copy link",
		KeyCollapse:        "Collapse list",
		KeyExpand:          "Expand all",
		KeyImageVersion:    "Version: %s",
		KeyImageBuild:      "Build: %s",
		KeyImageSize:       "Size: %s",
		KeyImageReleasedOn: "Released: %s",

		KeyDownload:          "Download",
		KeyPreparing:         "Preparing...",
		KeyDownloading:       "Downloading...",
		KeyPathInvalid:       "Invalid path",
		KeyFailedLabel:       "Download failed",
		KeyDownloadCancelled: "Download cancelled",
		KeyDialogUnavailable: "Cannot open the save dialog",
		KeyPathNotWritable:   "Cannot write to the selected location",
		KeyStartFailed:       "Download failed: ",
		KeyDownloadCompleted: "Download completed: ",
		KeyDownloadFailed:    "Download failed: ",
		KeyCancelFailed:      "Failed to cancel download",
		KeyOpenFailed:        "Cannot open file location",

		KeyDownloads:      "Download queue",
		KeyNoDownloads:    "No downloads in progress",
		KeyOpenLocation:   "Show in folder",
		KeyRemaining:      "Remaining: %s",
		KeyStatusSelect:   "Choosing location",
		KeyStatusVerify:   "Checking location",
		KeyStatusStarting: "Starting",
		KeyStatusActive:   "Downloading",
		KeyStatusDone:     "Completed",
		KeyStatusError:    "Failed",
		KeyStatusCanceled: "Cancelled",

		KeyRecoveryTitle:       "Path verification failed",
		KeyRecoverySuggestions: "Suggested solutions:",
		KeyRecoveryOtherFolder: "Choose a different folder",
		KeyRecoveryPermissions: "Check the folder's write permissions",
		KeyRecoveryAntivirus:   "Disable antivirus software that may block writes",
		KeyRecoveryRetry:       "Choose again",
		KeyRecoveryDefault:     "Use default path",

		KeyAppearance:         "Appearance",
		KeyThemeMode:          "Theme mode",
		KeyThemeLight:         "Light",
		KeyThemeDark:          "Dark",
		KeyThemeSystem:        "System default",
		KeyThemeColor:         "Theme color",
		KeyThemeColorDefault:  "Default",
		KeyColorBlue:          "Blue gradient",
		KeyColorPurple:        "Purple gradient",
		KeyColorOrange:        "Orange gradient",
		KeyColorGreen:         "Green gradient",
		KeyColorCrimson:       "Crimson gradient",
		KeyAnimations:         "Enable animations",
		KeyAutoUpdate:         "Check for updates automatically",
		KeyDeveloperMode:      "Enable developer mode",
		KeyDeveloperBadge:     "Developer mode",
		KeyBackendURL:         "Backend URL",
		KeyPushAddress:        "Progress listener address",
		KeyRestartRequired:    "Connection changes take effect after restart",
		KeySettingsSaved:      "Settings saved",
		KeySettingsSaveFailed: "Failed to save settings: ",
		KeyLoadPrefsFailed:    "Failed to load preferences, using defaults",

		KeyCheckUpdate:       "Check for updates",
		KeyCheckingUpdate:    "Checking...",
		KeyUpdateAvailable:   "New version v%s available",
		KeyNewVersion:        "New version v%s",
		KeyReleaseDate:       "Release date: %s",
		KeyNoReleaseNotes:    "No release notes",
		KeyUpdateNow:         "Update now",
		KeyLater:             "Later",
		KeyUpToDate:          "You are running the latest version",
		KeyUpdateCheckFailed: "Update check failed: ",
		KeyCurrentVersion:    "Current version: %s",
	}

	l.texts[LanguageChinese] = map[string]string{
		KeyAppTitle:    "SimpleToolkit",
		KeyAppSubtitle: "下载最新或历史版本的黑苹果系统镜像",
		KeyFile:        "文件",
		KeySettings:    "设置",
		KeyLanguage:    "语言",
		KeySave:        "保存",
		KeyCancel:      "取消",
		KeyClose:       "关闭",
		KeyRetry:       "重试",
		KeyRefresh:     "刷新列表",
		KeyRefreshing:  "刷新中...",

		KeyImages:          "镜像下载",
		KeyLoadingImages:   "正在加载镜像列表...",
		KeyNoImages:        "当前没有可用的镜像",
		KeyImagesFailed:    "获取列表失败",
		KeyRefreshFailed:   "刷新失败，请检查网络连接",
		KeyCopyLink:        "复制链接",
		KeyLinkCopied:      "下载链接已复制到剪贴板",
		KeyCopyLinkFailed:  "复制链接失败",
		KeyCollapse:        "折叠列表",
		KeyExpand:          "展开全部",
		KeyImageVersion:    "版本: %s",
		KeyImageBuild:      "构建版本: %s",
		KeyImageSize:       "大小: %s",
		KeyImageReleasedOn: "发布日期: %s",

		KeyDownload:          "下载",
		KeyPreparing:         "准备下载...",
		KeyDownloading:       "下载中...",
		KeyPathInvalid:       "路径无效",
		KeyFailedLabel:       "下载失败",
		KeyDownloadCancelled: "下载已取消",
		KeyDialogUnavailable: "无法打开文件对话框",
		KeyPathNotWritable:   "无法写入选定位置",
		KeyStartFailed:       "下载失败: ",
		KeyDownloadCompleted: "下载完成: ",
		KeyDownloadFailed:    "下载失败: ",
		KeyCancelFailed:      "取消下载失败",
		KeyOpenFailed:        "无法打开文件位置",

		KeyDownloads:      "下载队列",
		KeyNoDownloads:    "没有正在进行的下载",
		KeyOpenLocation:   "打开文件所在位置",
		KeyRemaining:      "剩余: %s",
		KeyStatusSelect:   "选择保存路径",
		KeyStatusVerify:   "验证路径",
		KeyStatusStarting: "开始下载",
		KeyStatusActive:   "下载中",
		KeyStatusDone:     "已完成",
		KeyStatusError:    "失败",
		KeyStatusCanceled: "已取消",

		KeyRecoveryTitle:       "路径验证失败",
		KeyRecoverySuggestions: "建议解决方案：",
		KeyRecoveryOtherFolder: "选择不同的文件夹",
		KeyRecoveryPermissions: "检查文件夹写入权限",
		KeyRecoveryAntivirus:   "关闭可能拦截的防病毒软件",
		KeyRecoveryRetry:       "重新选择",
		KeyRecoveryDefault:     "使用默认路径",

		KeyAppearance:         "外观",
		KeyThemeMode:          "主题模式",
		KeyThemeLight:         "浅色",
		KeyThemeDark:          "深色",
		KeyThemeSystem:        "系统默认",
		KeyThemeColor:         "主题颜色",
		KeyThemeColorDefault:  "默认",
		KeyColorBlue:          "蓝色渐变",
		KeyColorPurple:        "紫色渐变",
		KeyColorOrange:        "橙红渐变",
		KeyColorGreen:         "绿色渐变",
		KeyColorCrimson:       "深红渐变",
		KeyAnimations:         "启用动画效果",
		KeyAutoUpdate:         "自动检查更新",
		KeyDeveloperMode:      "启用开发者模式",
		KeyDeveloperBadge:     "开发者模式",
		KeyBackendURL:         "后端地址",
		KeyPushAddress:        "进度监听地址",
		KeyRestartRequired:    "连接设置将在重启后生效",
		KeySettingsSaved:      "设置已保存",
		KeySettingsSaveFailed: "保存失败: ",
		KeyLoadPrefsFailed:    "加载偏好设置失败，使用默认值",

		KeyCheckUpdate:       "检查更新",
		KeyCheckingUpdate:    "检查中...",
		KeyUpdateAvailable:   "发现新版本 v%s",
		KeyNewVersion:        "新版本 v%s",
		KeyReleaseDate:       "发布日期：%s",
		KeyNoReleaseNotes:    "暂无更新说明",
		KeyUpdateNow:         "立即更新",
		KeyLater:             "稍后再说",
		KeyUpToDate:          "当前已是最新版本",
		KeyUpdateCheckFailed: "检查更新失败: ",
		KeyCurrentVersion:    "当前版本: %s",
	}
}
