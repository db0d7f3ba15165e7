package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/voicemap/internal/cmd/globals"
	"github.com/agentstation/voicemap/pkg/constants"
	"github.com/agentstation/voicemap/pkg/errors"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Catalog inputs
	LanguagesFile string
	VoicesFile    string
	AliasesFile   string
	Aliases       map[string]string

	// Generated file identifiers
	Package      string
	VoicesVar    string
	LanguagesVar string

	// Logging configuration. LogLevel is the explicit --log-level flag;
	// BaseLogLevel comes from LOG_LEVEL or the config file and only applies
	// when no flag selects a level.
	LogLevel     string
	BaseLogLevel string
	LogFormat    string
	LogOutput    string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (applied later by UpdateFromFlags)
// 2. Environment variables (VOICEMAP_ prefix)
// 3. .env files
// 4. Config file (~/.voicemap.yaml or ./.voicemap.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	return LoadConfigFile("")
}

// LoadConfigFile is LoadConfig with an explicit config file. An explicit
// file must exist; the default locations are optional.
func LoadConfigFile(path string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("config", "cannot read "+path, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(constants.ConfigName)

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.NewConfigError("config", "cannot parse config file", err)
			}
		}
	}

	return &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color") || os.Getenv("NO_COLOR") != "",
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		LanguagesFile: v.GetString("languages_file"),
		VoicesFile:    v.GetString("voices_file"),
		AliasesFile:   v.GetString("aliases_file"),
		Aliases:       v.GetStringMapString("aliases"),

		Package:      v.GetString("package"),
		VoicesVar:    v.GetString("voices_var"),
		LanguagesVar: v.GetString("languages_var"),

		BaseLogLevel: firstNonEmpty(v.GetString("log_level"), os.Getenv("LOG_LEVEL")),
		LogFormat:    firstNonEmpty(v.GetString("log_format"), os.Getenv("LOG_FORMAT"), "auto"),
		LogOutput:    firstNonEmpty(v.GetString("log_output"), os.Getenv("LOG_OUTPUT"), "stderr"),
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("languages_file", constants.DefaultLanguagesFile)
	v.SetDefault("voices_file", constants.DefaultVoicesFile)
	v.SetDefault("package", constants.DefaultPackage)
	v.SetDefault("voices_var", constants.DefaultVoicesVar)
	v.SetDefault("languages_var", constants.DefaultLanguagesVar)
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(flags *globals.Flags) {
	c.Verbose = c.Verbose || flags.Verbose
	c.Quiet = c.Quiet || flags.Quiet
	c.NoColor = c.NoColor || flags.NoColor
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
}

// loadEnvFiles loads environment variables from .env files. godotenv never
// overwrites a variable that is already set, so .env.local is loaded first
// to win over .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
