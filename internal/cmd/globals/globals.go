// Package globals provides shared flag structures and utilities for CLI commands.
package globals

import "github.com/spf13/cobra"

// Flags holds global common flags across all commands.
type Flags struct {
	ConfigFile string
	Format     string
	LogLevel   string
	Quiet      bool
	Verbose    bool
	NoColor    bool
}

// AddFlags adds common flags to the root command.
func AddFlags(cmd *cobra.Command) *Flags {
	flags := &Flags{}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.ConfigFile, "config", "",
		"config file (default is $HOME/.voicemap.yaml)")
	pf.StringVarP(&flags.Format, "format", "o", "",
		"output format: table, json, yaml, wide")
	pf.StringVar(&flags.LogLevel, "log-level", "",
		"log level: trace, debug, info, warn, error (overrides -v/-q)")
	pf.BoolVarP(&flags.Quiet, "quiet", "q", false,
		"minimal output (shortcut for --log-level=warn)")
	pf.BoolVarP(&flags.Verbose, "verbose", "v", false,
		"verbose output (shortcut for --log-level=debug)")
	pf.BoolVar(&flags.NoColor, "no-color", false,
		"disable colored output")

	return flags
}

// Parse extracts global flags from the command hierarchy, for subcommands
// that were not handed the Flags struct.
func Parse(cmd *cobra.Command) *Flags {
	root := cmd.Root()
	pf := root.PersistentFlags()

	configFile, _ := pf.GetString("config")
	format, _ := pf.GetString("format")
	logLevel, _ := pf.GetString("log-level")
	quiet, _ := pf.GetBool("quiet")
	verbose, _ := pf.GetBool("verbose")
	noColor, _ := pf.GetBool("no-color")

	return &Flags{
		ConfigFile: configFile,
		Format:     format,
		LogLevel:   logLevel,
		Quiet:      quiet,
		Verbose:    verbose,
		NoColor:    noColor,
	}
}

// InputFlags names the catalogs a command reads. Empty values fall back to
// configuration.
type InputFlags struct {
	Languages string
	Voices    string
	Aliases   string
}

// AddInputFlags adds catalog input flags to a command.
func AddInputFlags(cmd *cobra.Command) *InputFlags {
	flags := &InputFlags{}

	cmd.Flags().StringVarP(&flags.Languages, "languages", "l", "",
		"language catalog JSON file")
	cmd.Flags().StringVarP(&flags.Voices, "voices", "V", "",
		"voice catalog JSON file")
	cmd.Flags().StringVarP(&flags.Aliases, "aliases", "a", "",
		"extra alias table (.yaml, .yml or .toml)")

	return flags
}

// ParseInputs reads input flags from a command.
// The command must have had AddInputFlags called on it, otherwise this will panic.
func ParseInputs(cmd *cobra.Command) *InputFlags {
	return &InputFlags{
		Languages: mustGetString(cmd, "languages"),
		Voices:    mustGetString(cmd, "voices"),
		Aliases:   mustGetString(cmd, "aliases"),
	}
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
