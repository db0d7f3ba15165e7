// Package constants provides shared constants used throughout the voicemap codebase.
// This includes file permissions, default file names, and the identifiers used
// when rendering generated Go source.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Input defaults mirror the file names written by the catalog listing scripts.
const (
	// DefaultLanguagesFile is the language catalog produced by the translation provider
	DefaultLanguagesFile = "google_languages.json"

	// DefaultVoicesFile is the voice catalog produced by the text-to-speech provider
	DefaultVoicesFile = "google_voices.json"
)

// Generated source defaults
const (
	// DefaultPackage is the package clause of a generated file
	DefaultPackage = "models"

	// DefaultVoicesVar is the variable holding generated voice literals
	DefaultVoicesVar = "Voices"

	// DefaultLanguagesVar is the variable holding generated language literals
	DefaultLanguagesVar = "Languages"

	// DefaultVoiceType is the element type of the generated voice map
	DefaultVoiceType = "Voice"

	// DefaultLanguageType is the element type of the generated language map
	DefaultLanguageType = "Language"
)

// Configuration
const (
	// EnvPrefix is the prefix for voicemap environment variables
	EnvPrefix = "VOICEMAP"

	// ConfigName is the config file base name searched in $HOME and the working directory
	ConfigName = ".voicemap"
)

// DiagnosticPrefix starts every unresolved-voice line so tooling can filter it
// from generated output.
const DiagnosticPrefix = "unresolved:"
