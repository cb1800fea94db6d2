package cue

// CUE configuration keys used throughout the codebase.
// Centralised here to prevent typos and ease refactoring.
const (
	KeySettings = "settings"

	KeyEnvFile  = "env_file"
	KeyOverride = "override"
	KeyRequired = "required"
	KeyLogFile  = "log_file"
	KeyLogLevel = "log_level"
	KeyLogName  = "log_name"
)

// SettingsKeys lists every recognised field of the settings struct.
var SettingsKeys = []string{
	KeyEnvFile,
	KeyOverride,
	KeyRequired,
	KeyLogFile,
	KeyLogLevel,
	KeyLogName,
}
