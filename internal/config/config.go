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
	AppName     = "Go Contacts"
	AppID       = "com.github.tartampluch.go-contacts"
	LogFileName = "app.log"
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
	// Used for the address book snapshot and logs.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagFile         = "file"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging"
	FlagDescFile     = "Path of the address book file (overrides " + EnvPrefix + "STORAGE_PATH)"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Environment Settings (koanf)
// -----------------------------------------------------------------------------

const (
	EnvPrefix     = "CONTACTS_"
	KoanfDelim    = "."
	DefaultFile   = "addressbook.vcf"
	DefaultRemind = "-P1D"
)

// -----------------------------------------------------------------------------
// Commands
// -----------------------------------------------------------------------------

const (
	CmdHello        = "hello"
	CmdAdd          = "add"
	CmdChange       = "change"
	CmdPhone        = "phone"
	CmdAll          = "all"
	CmdAddBirthday  = "add-birthday"
	CmdShowBirthday = "show-birthday"
	CmdBirthdays    = "birthdays"
	CmdDelete       = "delete"
	CmdRemovePhone  = "remove-phone"
	CmdExportCal    = "export-calendar"
	CmdClose        = "close"
	CmdExit         = "exit"

	// Usage strings shown when arguments are missing.
	UsageAdd          = "add <name> [phone]"
	UsageChange       = "change <name> <old phone> <new phone>"
	UsagePhone        = "phone <name>"
	UsageAddBirthday  = "add-birthday <name> <DD.MM.YYYY>"
	UsageShowBirthday = "show-birthday <name>"
	UsageDelete       = "delete <name>"
	UsageRemovePhone  = "remove-phone <name> <phone>"
	UsageExportCal    = "export-calendar <path>"
)

// -----------------------------------------------------------------------------
// Business Rules
// -----------------------------------------------------------------------------

const (
	PhoneLength        = 10
	UpcomingWindowDays = 7
	UIDSalt            = "go-contacts-v1-" // Salt for deterministic UID generation
	PhoneSeparator     = "; "
	FormatRecord       = "Contact name: %s, phones: %s"
)

// -----------------------------------------------------------------------------
// Date Formats
// -----------------------------------------------------------------------------

const (
	// DateFormatBirthday is the user-facing DD.MM.YYYY layout.
	DateFormatBirthday = "02.01.2006"

	// DateFormatCongrats is the YYYY.MM.DD layout of congratulation dates.
	DateFormatCongrats = "2006.01.02"

	// vCard BDAY layouts: extended form is written, both are accepted on load.
	DateFormatVCard      = "2006-01-02"
	DateFormatVCardBasic = "20060102"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion   = "2.0"
	ICalProdid    = "-//Go Contacts//Engine//EN"
	ICalCalName   = "Birthdays"
	ICalMethod    = "PUBLISH"
	ICalScale     = "GREGORIAN"
	ICalComponent = "VALARM"
	ICalAction    = "DISPLAY"
	ICalDomain    = "gocontacts"

	// iCal Fields
	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDTStart     = "DTSTART"
	PropDTStamp     = "DTSTAMP"
	PropRefresh     = "REFRESH-INTERVAL"
	PropAction      = "ACTION"
	PropDescription = "DESCRIPTION"
	PropTrigger     = "TRIGGER"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	VCardVersion = "4.0"

	DefaultICalRefresh = 24 * time.Hour

	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d@%s"

	// StubVCalendar is the minimal valid iCalendar object used when no events are found.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"

	FallbackSummary    = "Birthday: %s"
	FallbackSummaryAge = "Birthday: %s (%d)"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrStorageRead     = "failed to read address book"
	ErrStorageWrite    = "failed to write address book"
	ErrStoragePath     = "configuration error: storage path is empty"
	ErrVCardParse      = "failed to parse vCard stream"
	ErrVCardEncode     = "failed to encode vCard data"
	ErrICalEncode      = "failed to encode iCalendar data"
	ErrSettingsLoad    = "failed to load settings"
	ErrLogFile         = "failed to open log file"
	ErrCacheDir        = "could not determine user cache dir"
	ErrCreateDir       = "could not create app cache dir"
	ErrAppFailed       = "application failed unexpectedly"
	ErrLocalesAccess   = "failed to access embedded locales"
	ErrLocaleLoad      = "failed to load locale file"
	ErrCalendarWrite   = "failed to write calendar file"
	ErrInputRead       = "failed to read input"
	ErrEmptyBookOnLoad = "address book unreadable, starting with an empty one"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting    = "Starting application"
	MsgAppStop        = "Application stopped gracefully"
	MsgBookLoaded     = "Address book loaded"
	MsgBookMissing    = "Address book file not found, starting empty"
	MsgBookSaved      = "Address book saved"
	MsgSkippedCard    = "Skipping malformed vCard"
	MsgSkippedPhone   = "Skipping invalid phone"
	MsgSkippedDate    = "Skipping invalid birthday"
	MsgSkippedDup     = "Skipping duplicate contact"
	MsgSkippedName    = "Skipping vCard without a name"
	MsgGenSuccess     = "Calendar generation successful"
	MsgCommand        = "Command received"
	MsgCommandFailed  = "Command failed"
	MsgSessionEOF     = "Input closed, ending session"
	MsgCtxCancel      = "Context cancelled, ending session"
	MsgLocaleSkip     = "Skipping non-locale file"
	MsgLocaleBadName  = "Skipping malformed locale filename"
	MsgLocaleLoaded   = "Locale loaded successfully"
	MsgTransMissing   = "Missing translation key"
	MsgLogWarning     = "Warning: %s at %s: %v\n"
	MsgUpcomingBuilt  = "Upcoming birthdays computed"
	MsgSettingsLoaded = "Settings loaded"
)

// -----------------------------------------------------------------------------
// Message Catalog Keys (go-i18n)
// -----------------------------------------------------------------------------

const (
	TKeyWelcome         = "msg_welcome"
	TKeyGoodbye         = "msg_goodbye"
	TKeyPrompt          = "msg_prompt"
	TKeyHello           = "msg_hello"
	TKeyInvalidCmd      = "msg_invalid_command"
	TKeyEmptyInput      = "msg_empty_input"
	TKeyUsage           = "msg_usage" // Requires Usage
	TKeyContactAdded    = "msg_contact_added"
	TKeyContactUpdated  = "msg_contact_updated"
	TKeyContactDeleted  = "msg_contact_deleted"
	TKeyPhoneExists     = "msg_phone_exists"
	TKeyPhoneRemoved    = "msg_phone_removed"
	TKeyContactNotFound = "msg_contact_not_found" // Requires Name
	TKeyPhoneNotFound   = "msg_phone_not_found"   // Requires Phone
	TKeyNoContacts      = "msg_no_contacts"
	TKeyNoPhones        = "msg_no_phones" // Requires Name
	TKeyBirthdayAdded   = "msg_birthday_added"
	TKeyNoBirthday      = "msg_no_birthday" // Requires Name
	TKeyNoUpcoming      = "msg_no_upcoming"
	TKeyUpcomingEntry   = "msg_upcoming_entry"    // Requires Name, Date
	TKeyCalExported     = "msg_calendar_exported" // Requires Path
	TKeyCalFailed       = "msg_calendar_failed"   // Requires Path
	TKeyErrName         = "err_name_empty"
	TKeyErrPhone        = "err_phone_format"
	TKeyErrBirthday     = "err_birthday_format"
	TKeyErrUnexpected   = "err_unexpected"
	TKeyEvtSummary      = "event_summary"     // Requires Name
	TKeyEvtSummaryAge   = "event_summary_age" // Requires Name, Age
)

// DefaultLanguage is the only bundled catalog.
const DefaultLanguage = "en"

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
	LogKeyStats     = "stats"
	LogKeyCount     = "count"
	LogKeyName      = "name"
	LogKeyCommand   = "command"
	LogKeyArgs      = "arg_count"
	LogKeyRecords   = "records"
	LogKeyTotal     = "total_cards"
	LogKeyFound     = "birthdays_found"
	LogKeyToday     = "birthdays_today"
	LogKeyDuration  = "duration_ms"
	LogKeyDebug     = "debug"

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
	CompEngine  = "engine"
	CompStorage = "storage"
	CompCLI     = "cli"
	CompMain    = "main"
	CompI18n    = "i18n"
	CompConfig  = "config"
)
