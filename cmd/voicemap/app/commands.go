package app

import (
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/agentstation/voicemap/cmd/voicemap/cmd/aliases"
	"github.com/agentstation/voicemap/cmd/voicemap/cmd/check"
	"github.com/agentstation/voicemap/cmd/voicemap/cmd/generate"
	"github.com/agentstation/voicemap/cmd/voicemap/cmd/report"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(generate.NewCommand(a))
	rootCmd.AddCommand(check.NewCommand(a))
	rootCmd.AddCommand(aliases.NewCommand(a))
	rootCmd.AddCommand(report.NewCommand(a))

	rootCmd.AddCommand(a.newVersionCommand())
	rootCmd.AddCommand(newManCommand())
}

// newVersionCommand creates the version command.
func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("voicemap %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}

// newManCommand creates the hidden man page command.
func newManCommand() *cobra.Command {
	return &cobra.Command{
		Use:    "man",
		Short:  "Generate man page",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			header := &doc.GenManHeader{
				Title:   "VOICEMAP",
				Section: "1",
				Source:  "voicemap",
				Manual:  "voicemap Manual",
			}
			return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
		},
	}
}
