package config

import (
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

// UserAgent identifies the HTTP client.
var UserAgent = "Jalalipick/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName       = "Jalalipick"
	CLIName       = "jalalipick"
	ConfigDirName = "jalalipick"
	ConfigName    = "config"
	ConfigType    = "yaml"
	EnvPrefix     = "JALALIPICK"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
	ExitCodeUsage   = 2
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion   = "version"
	FlagDebug     = "debug"
	FlagConfig    = "config"
	FlagLang      = "lang"
	FlagSelect    = "select"
	FlagHolidays  = "holidays"
	FlagNoFridays = "no-fridays"
	FlagReverse   = "reverse"
	FlagSummary   = "summary"
	FlagOutput    = "output"

	FlagDescVersion   = "Show application version and exit"
	FlagDescDebug     = "Enable debug logging to stderr"
	FlagDescConfig    = "Path to an alternative config file"
	FlagDescLang      = "Display language (ISO 639-1)"
	FlagDescSelect    = "Initially selected date (YYYY/MM/DD, Jalali)"
	FlagDescHolidays  = "Holiday feed: path or URL of an iCalendar file"
	FlagDescNoFridays = "Treat Fridays as non-selectable"
	FlagDescReverse   = "Convert from Gregorian to Jalali instead"
	FlagDescSummary   = "Event summary for exported dates"
	FlagDescOutput    = "Output file (defaults to stdout)"

	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Configuration Keys (viper)
// -----------------------------------------------------------------------------

const (
	PrefLanguage = "language"
	PrefHolidays = "holidays"
)

// SupportedLanguages defines the list of available display languages (ISO 639-1).
var SupportedLanguages = []string{"fa", "en"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	// Calendar name keys are built by index: month_1..month_12 for Farvardin
	// through Esfand, weekday_0..weekday_6 for Shanbeh through Jomeh, and
	// weekday_narrow_0..weekday_narrow_6 for the grid header abbreviations.
	TKeyMonthPrefix         = "month_"
	TKeyWeekdayPrefix       = "weekday_"
	TKeyWeekdayNarrowPrefix = "weekday_narrow_"

	// Display templates. MonthYear requires Month/Year, FullDate requires
	// Weekday/Day/Month/Year.
	TKeyFormatMonthYear = "format_month_year"
	TKeyFormatFullDate  = "format_full_date"

	TKeyTodayLabel   = "lbl_today"
	TKeyHolidayLabel = "lbl_holiday"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultLanguage      = "fa"
	DefaultExportSummary = "Picked date"

	// UIDSalt keeps exported event UIDs deterministic across runs.
	UIDSalt = "jalalipick-v1-"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//Jalalipick//Export//EN"
	ICalCalName = "Picked Dates"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "jalalipick"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTEnd      = "DTEND"
	PropDTStamp    = "DTSTAMP"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
)

// -----------------------------------------------------------------------------
// Data Formats, Limits & File Extensions
// -----------------------------------------------------------------------------

const (
	// Date layouts. Jalali dates travel as slash triples, Gregorian ones in
	// ISO order.
	DateFormatJalali    = "%04d/%02d/%02d"
	DateFormatGregorian = "2006-01-02"

	// UID Generation
	UIDHashLength   = 16
	FormatHashInput = "%s|%s"
	FormatUID       = "%s%s@%s"

	// File Extensions
	ExtICS = ".ics"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	HTTPTimeout = 30 * time.Second
	MaxFeedSize = 16 * 1024 * 1024 // 16MB
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"

	HeaderUserAgent = "User-Agent"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrInvalidURL     = "invalid URL structure"
	ErrProtocol       = "unsupported protocol scheme (http/https only)"
	ErrCtxCancelled   = "operation cancelled by context"
	ErrICalDecode     = "failed to parse iCalendar stream"
	ErrICalEncode     = "failed to encode iCalendar data"
	ErrDateParse      = "unable to parse date"
	ErrHolidaySource  = "failed to load holiday feed"
	ErrWriteOutput    = "failed to write output"
	ErrLocalesAccess  = "failed to access embedded locales"
	ErrLocaleLoad     = "failed to load locale file"
	ErrLocNotInit     = "localizer not initialized"
	ErrLangUnsupport  = "unsupported display language"
	ErrAppFailed      = "application failed unexpectedly"
	ErrYearArg        = "year argument must be a number"
	ErrMonthArg       = "month argument must be a number between 1 and 12"
	ErrMonthArgs      = "expected both a year and a month, or neither"
	ErrNothingToWrite = "no dates given to export"
)

// -----------------------------------------------------------------------------
// Log & Status Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Application starting"
	MsgAppStop       = "Application finished"
	MsgSkippedEvent  = "Skipping malformed event"
	MsgSkippedDate   = "Skipping event date outside the supported span"
	MsgFeedLoaded    = "Holiday feed loaded"
	MsgFeedFetching  = "Downloading holiday feed"
	MsgExportDone    = "Calendar export successful"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgConfigMissing = "No config file found, using defaults"
	MsgConfigLoaded  = "Config file loaded"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyURL       = "url"
	LogKeyStatus    = "status_code"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyDate      = "date"
	LogKeyYear      = "year"
	LogKeyMonth     = "month"
	LogKeyCount     = "count"
	LogKeyTotal     = "total_events"
	LogKeyFound     = "days_found"
	LogKeySizeBytes = "size_bytes"
	LogKeySummary   = "summary"
	LogKeyOutput    = "output"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyEnv     = "env"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompMain    = "main"
	CompCLI     = "cli"
	CompEvent   = "event"
	CompFetcher = "fetcher"
	CompI18n    = "i18n"
)
