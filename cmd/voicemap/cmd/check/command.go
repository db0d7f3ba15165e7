// Package check provides the check command, which reconciles the catalogs
// and reports what did not resolve without generating code.
package check

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/voicemap/internal/cmd/catalog"
	"github.com/agentstation/voicemap/internal/cmd/globals"
	"github.com/agentstation/voicemap/pkg/reconcile"
)

// AppContext defines the interface that the check command needs from the app.
type AppContext interface {
	Logger() *zerolog.Logger
	OutputFormat() string
	Sources(flags *globals.InputFlags) catalog.Sources
	Reconciler(aliasesFile string) (*reconcile.Reconciler, error)
}

// Flags holds check command flags.
type Flags struct {
	Inputs *globals.InputFlags
	All    bool
	Lint   bool
	Strict bool
}

// NewCommand creates the check command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "check",
		GroupID: "core",
		Short:   "Reconcile catalogs and report unresolved voices",
		Args:    cobra.NoArgs,
		Long: `Check runs the same reconciliation as generate and prints a summary
followed by every voice whose language could not be resolved.

With --lint, language tags and voice codes that are not well-formed BCP 47
are listed as well. Lint findings never affect reconciliation.`,
		Example: `  voicemap check                       # Summary and unresolved voices
  voicemap check --all -o wide         # Every voice with alias details
  voicemap check --lint                # Also list malformed tags
  voicemap check --strict -o json      # Machine-readable, fail on unresolved`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags.Inputs = globals.ParseInputs(cmd)
			return Execute(app, flags, cmd.OutOrStdout())
		},
	}

	globals.AddInputFlags(cmd)
	cmd.Flags().BoolVar(&flags.All, "all", false,
		"list every voice, not only unresolved ones")
	cmd.Flags().BoolVar(&flags.Lint, "lint", false,
		"list tags that are not well-formed BCP 47")
	cmd.Flags().BoolVar(&flags.Strict, "strict", false,
		"exit non-zero when any voice is unresolved")

	return cmd
}
