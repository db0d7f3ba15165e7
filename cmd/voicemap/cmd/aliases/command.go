// Package aliases provides the aliases command.
package aliases

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/agentstation/voicemap/internal/cmd/catalog"
	"github.com/agentstation/voicemap/internal/cmd/globals"
	"github.com/agentstation/voicemap/internal/cmd/output"
	"github.com/agentstation/voicemap/internal/cmd/table"
	"github.com/agentstation/voicemap/pkg/reconcile"
)

// AppContext defines the interface that the aliases command needs from the app.
type AppContext interface {
	OutputFormat() string
	Sources(flags *globals.InputFlags) catalog.Sources
	Aliases(aliasesFile string) (reconcile.Aliases, error)
}

// NewCommand creates the aliases command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:     "aliases",
		GroupID: "core",
		Short:   "Show the effective language subtag alias table",
		Args:    cobra.NoArgs,
		Long: `Aliases prints the subtag corrections applied before a voice's language
is looked up: the built-in table, then aliases from the config file, then the
aliases file, each layer overriding the one before.`,
		Example: `  voicemap aliases
  voicemap aliases --aliases extra.toml -o yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Execute(app, file, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&file, "aliases", "a", "",
		"extra alias table (.yaml, .yml or .toml)")

	return cmd
}

// Execute writes the effective alias table.
func Execute(app AppContext, file string, w io.Writer) error {
	format, err := output.ParseFormat(app.OutputFormat())
	if err != nil {
		return err
	}

	src := app.Sources(&globals.InputFlags{Aliases: file})
	aliases, err := app.Aliases(src.Aliases)
	if err != nil {
		return err
	}

	data := output.Select(format, table.AliasesToTableData(aliases), map[string]string(aliases))
	return output.NewFormatter(format).Format(w, data)
}
