// Package report provides the report command, which writes a Markdown
// coverage report for a reconciliation pass.
package report

import (
	"bytes"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/voicemap/internal/cmd/catalog"
	"github.com/agentstation/voicemap/internal/cmd/globals"
	"github.com/agentstation/voicemap/internal/cmd/output"
	"github.com/agentstation/voicemap/internal/report"
	"github.com/agentstation/voicemap/pkg/reconcile"
)

// AppContext defines the interface that the report command needs from the app.
type AppContext interface {
	Logger() *zerolog.Logger
	Sources(flags *globals.InputFlags) catalog.Sources
	Reconciler(aliasesFile string) (*reconcile.Reconciler, error)
}

// Flags holds report command flags.
type Flags struct {
	Inputs      *globals.InputFlags
	Out         string
	Title       string
	CoveredOnly bool
}

// NewCommand creates the report command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "report",
		GroupID: "core",
		Short:   "Write a Markdown coverage report",
		Args:    cobra.NoArgs,
		Long: `Report reconciles the catalogs and writes a Markdown document listing
how many voices each language owns, which voices could not be resolved and
which aliases were applied.`,
		Example: `  voicemap report > COVERAGE.md
  voicemap report --covered-only -O docs/voices.md`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags.Inputs = globals.ParseInputs(cmd)
			return Execute(app, flags, cmd.OutOrStdout())
		},
	}

	globals.AddInputFlags(cmd)
	cmd.Flags().StringVarP(&flags.Out, "out", "O", "",
		"write the report to this file instead of stdout")
	cmd.Flags().StringVar(&flags.Title, "title", report.DefaultTitle,
		"report heading")
	cmd.Flags().BoolVar(&flags.CoveredOnly, "covered-only", false,
		"list only languages that own at least one voice")

	return cmd
}

// Execute reconciles the catalogs and writes the report.
func Execute(app AppContext, flags *Flags, stdout io.Writer) error {
	src := app.Sources(flags.Inputs)
	loaded, err := catalog.Load(src, app.Logger())
	if err != nil {
		return err
	}

	reconciler, err := app.Reconciler(src.Aliases)
	if err != nil {
		return err
	}
	pass := reconciler.Reconcile(loaded.Voices, loaded.Languages)

	gen := report.New(report.Options{
		Title:           flags.Title,
		CoveredOnly:     flags.CoveredOnly,
		LanguagesSource: src.Languages,
		VoicesSource:    src.Voices,
	})

	var buf bytes.Buffer
	if err := gen.Write(&buf, pass, loaded.Languages); err != nil {
		return err
	}

	if err := output.Flush(flags.Out, buf.Bytes(), stdout); err != nil {
		return err
	}
	app.Logger().Info().
		Int("languages", len(loaded.Languages)).
		Int("voices", len(loaded.Voices)).
		Str("out", output.Dest(flags.Out)).
		Msg("Wrote coverage report")
	return nil
}
