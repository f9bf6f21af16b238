package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconCopy     = "📋"
	IconClose    = "×"
	IconRefresh  = "⟳"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	BytesSeparator     = " / "
)

// Layout sizing
const (
	WindowWidth  float32 = 960
	WindowHeight float32 = 680

	LogoSize float32 = 32

	ImageRowMinWidth   float32 = 420
	DownloadButtonMinW float32 = 140

	RowMinWidth  float32 = 400
	RowMinHeight float32 = 80

	// Split between the image list and the downloads list
	ListSplitOffset = 0.55

	SettingsDialogWidth  float32 = 480
	SettingsDialogHeight float32 = 520
	UpdateDialogWidth    float32 = 520
	UpdateDialogHeight   float32 = 420
	RecoveryDialogWidth  float32 = 460
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 72
	ToastMargin   float32 = 20
	ToastAutoHide         = 3 * time.Second
)

// Timeouts for background calls started from the UI
const (
	PreferencesTimeout = 10 * time.Second
	CatalogTimeout     = 30 * time.Second
	UpdateTimeout      = 30 * time.Second
	CancelTimeout      = 10 * time.Second
)

// Delays
const (
	AutoUpdateCheckDelay = 3 * time.Second
)
