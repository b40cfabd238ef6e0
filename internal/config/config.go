package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName        = "Hour Percent Clock"
	AppID          = "com.github.hinahinako39.hour-percent-clock"
	KeyringService = "com.github.hinahinako39.hour-percent-clock"
	LogFileName    = "app.log"
	IconFile       = "Icon.png"

	// KeyringBirthUser is the account name under which the birth date is
	// stored in the OS keyring. The birth date is personal data, so the
	// keyring is preferred over the plain preference store when available.
	KeyringBirthUser = "birth_date"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for sensitive files like logs.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating secure cache directories.
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	MainWindowWidth     = 440
	MainWindowHeight    = 620
	SettingsWindowWidth = 480

	// Preference Keys
	PrefBirthDate = "birth_date"
	PrefTheme     = "theme"
	PrefLanguage  = "language"
	PrefLastRun   = "last_run_version"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Themes & Display Modes
// -----------------------------------------------------------------------------

const (
	ThemeDark  = "dark"
	ThemeLight = "light"

	// DefaultTheme is persisted across sessions. DisplayMode deliberately is
	// not, and resets to detailed on every start.
	DefaultTheme = ThemeDark

	ModeDetailed = "detailed"
	ModeCompact  = "compact"

	DefaultLanguage = "en"
)

// -----------------------------------------------------------------------------
// Refresh & Milestone Logic
// -----------------------------------------------------------------------------

const (
	// RefreshInterval is the cadence of the display update loop. Each tick
	// renders fully before the next one fires.
	RefreshInterval = 1 * time.Second

	// MilestoneStep is the spacing of "days alive" milestones.
	MilestoneStep = 100

	// MilestoneWindowCount is how many upcoming milestones the table and the
	// calendar export cover.
	MilestoneWindowCount = 10

	// UIDSalt makes exported event UIDs deterministic across exports.
	UIDSalt         = "hour-percent-clock-v1-"
	UIDHashLength   = 16
	FormatHashInput = "%s|%d|%s"
	FormatUID       = "%s-%d@%s"
)

// -----------------------------------------------------------------------------
// Ring Widget Geometry & Colors
// -----------------------------------------------------------------------------

const (
	RingWidgetSize   = 240 // square, in device-independent pixels
	RingOuterMargin  = 8
	RingOuterStroke  = 8
	RingInnerGap     = 16
	RingInnerStroke  = 10
	RingCenterTextSz = 22

	ColorDayFill   = 0x3498db
	ColorDayTrack  = 0xe0e0e0
	ColorHourFill  = 0x2ecc71
	ColorHourTrack = 0xdddddd
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle       = "win_title"
	TKeyWinSettings    = "win_settings_title"
	TKeyWinMilestones  = "win_milestones_title"
	TKeyLblHourPct     = "lbl_hour_progress" // Requires Percent
	TKeyLblDayPct      = "lbl_day_progress"  // Requires Percent
	TKeyLblRemaining   = "lbl_remaining"     // Requires Percent
	TKeyLblDaysAlive   = "lbl_days_alive"    // Requires Count
	TKeyLblMilestone   = "lbl_milestone"     // Requires Count
	TKeyNoteNoBirthday = "note_no_birthday"
	TKeyLblBirthday    = "lbl_birthday"
	TKeyBtnCompact     = "btn_compact"
	TKeyBtnDetailed    = "btn_detailed"
	TKeyLblDarkTheme   = "lbl_dark_theme"
	TKeyLblLanguage    = "lbl_language"
	TKeyHelpLanguage   = "help_language"
	TKeyLblGeneral     = "lbl_general"
	TKeyLblData        = "lbl_data"
	TKeyBtnSave        = "btn_save"
	TKeyBtnCancel      = "btn_cancel"
	TKeyBtnImportVCard = "btn_import_vcard"
	TKeyBtnExportICS   = "btn_export_ics"
	TKeyLblFooter      = "lbl_footer"
	TKeyEvtSummary     = "event_summary" // Requires Day
	TKeyMsgImported    = "msg_import_success"
	TKeyTipSettings    = "tip_settings"
	TKeyTipMilestones  = "tip_milestones"

	// Column Headers
	TKeyColDay  = "col_day"
	TKeyColDate = "col_date"
	TKeyColIn   = "col_in_days"

	// Validation Errors (UI)
	TKeyErrDateFormat = "err_date_format"
	TKeyErrDateFuture = "err_date_future"
)

// -----------------------------------------------------------------------------
// Date & Number Formats
// -----------------------------------------------------------------------------

const (
	// DateFormatISO is the storage and input format for the birth date.
	DateFormatISO = "2006-01-02"

	// TimestampLayout renders the current instant with a three-letter weekday.
	TimestampLayout = "2006-01-02 (Mon) 15:04:05"

	// Additional layouts accepted when importing a BDAY field from vCards.
	DateFormatBasic = "20060102"
	DateFormatRFC   = time.RFC3339
	DateFormatFullT = "2006-01-02T15:04:05Z"

	PercentSuffix = "%"

	// Placeholders shown before the first tick and for unavailable stats.
	StatPlaceholder = "--"
	TimePlaceholder = "--:--:--"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//Hour Percent Clock//Milestones//EN"
	ICalCalName = "Life Milestones"
	ICalScale   = "GREGORIAN"
	ICalMethod  = "PUBLISH"
	ICalDomain  = "hourpercentclock"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	VCardBDAY = "BDAY"

	ExtICS   = ".ics"
	ExtVCF   = ".vcf"
	ExtVCard = ".vcard"

	FallbackEvtSummary = "Day %d"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrDateParse     = "unable to parse date"
	ErrBirthNotFound = "no birth date found in contact data"
	ErrNoLifeStats   = "life statistics unavailable: no valid birth date"
	ErrICalEncode    = "failed to encode iCalendar data"
	ErrVCardParse    = "failed to parse vCard stream"
	ErrLogFile       = "failed to open log file"
	ErrCacheDir      = "could not determine user cache dir"
	ErrCreateDir     = "could not create app cache dir"
	ErrAppFailed     = "application failed unexpectedly"
	ErrLocalesAccess = "failed to access embedded locales"
	ErrLocaleLoad    = "failed to load locale file"
	ErrLocNotInit    = "localizer not initialized"
	ErrExportWrite   = "failed to write calendar export"
	ErrImportOpen    = "failed to open contact file"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgLogWarning     = "Warning: %s at %s: %v\n"
	MsgAppStop        = "Application stopped gracefully"
	MsgCtxCancel      = "Context cancelled, shutting down UI"
	MsgAppStarting    = "Starting application"
	MsgWorkerStart    = "Refresh worker started"
	MsgWorkerStop     = "Refresh worker stopping due to context cancellation"
	MsgBirthUpdated   = "Birth date updated"
	MsgBirthCleared   = "Birth date cleared"
	MsgThemeUpdated   = "Theme updated"
	MsgModeToggled    = "Display mode toggled"
	MsgKeyringMiss    = "Keyring unavailable, using preference store"
	MsgSkippedCard    = "Skipping malformed vCard"
	MsgSkippedDate    = "Skipping invalid date format"
	MsgExportDone     = "Milestone calendar exported"
	MsgImportDone     = "Birth date imported from contact file"
	MsgLocaleSkip     = "Skipping non-locale file"
	MsgLocaleBadName  = "Skipping malformed locale filename"
	MsgLocaleLoaded   = "Locale loaded successfully"
	MsgTransMissing   = "Missing translation key"
	MsgOpenSettings   = "Opening settings window"
	MsgOpenMilestones = "Opening milestones window"
	MsgMilestonesSort = "Milestones sorted"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyValue     = "value"
	LogKeyTheme     = "theme"
	LogKeyMode      = "mode"
	LogKeyDOB       = "date_of_birth"
	LogKeyDaysAlive = "days_alive"
	LogKeyCount     = "count"
	LogKeyInterval  = "interval"
	LogKeySizeBytes = "size_bytes"
	LogKeySortCol   = "sort_column"
	LogKeySortAsc   = "sort_asc"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI     = "ui"
	CompUISet  = "ui_settings"
	CompEngine = "engine"
	CompWorker = "worker"
	CompMain   = "main"
	CompI18n   = "i18n"
)

// -----------------------------------------------------------------------------
// Milestones Window Table Layout
// -----------------------------------------------------------------------------

const (
	MilestonesWinWidth  = 420
	MilestonesWinHeight = 380

	ColIDDay  = 0
	ColIDDate = 1
	ColIDIn   = 2

	ColWidthDay  = 110
	ColWidthDate = 150
	ColWidthIn   = 110

	TablePlaceholder = "Cell Content"

	SortIconAsc  = " ▲"
	SortIconDesc = " ▼"
)

// -----------------------------------------------------------------------------
// UI Layout Constants
// -----------------------------------------------------------------------------

const (
	LayoutColumnsDouble = 2
)
