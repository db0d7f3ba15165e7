package check

import (
	"fmt"
	"io"

	"github.com/agentstation/voicemap/internal/cmd/alerts"
	"github.com/agentstation/voicemap/internal/cmd/catalog"
	"github.com/agentstation/voicemap/internal/cmd/output"
	"github.com/agentstation/voicemap/internal/cmd/table"
	"github.com/agentstation/voicemap/pkg/catalogs"
	"github.com/agentstation/voicemap/pkg/reconcile"
)

// Result is the structured form of a check, used for json and yaml output.
type Result struct {
	Sources   catalog.Sources         `json:"sources" yaml:"sources"`
	Languages int                     `json:"languages" yaml:"languages"`
	Stats     reconcile.Stats         `json:"stats" yaml:"stats"`
	Aliases   []reconcile.AliasUse    `json:"aliases_applied" yaml:"aliases_applied"`
	Voices    []reconcile.VoiceResult `json:"voices" yaml:"voices"`
	Lints     []catalogs.Lint         `json:"lints,omitempty" yaml:"lints,omitempty"`
}

// Execute reconciles the catalogs and writes the result in the configured
// format.
func Execute(app AppContext, flags *Flags, w io.Writer) error {
	logger := app.Logger()

	format, err := output.ParseFormat(app.OutputFormat())
	if err != nil {
		return err
	}

	src := app.Sources(flags.Inputs)
	loaded, err := catalog.Load(src, logger)
	if err != nil {
		return err
	}

	reconciler, err := app.Reconciler(src.Aliases)
	if err != nil {
		return err
	}
	pass := reconciler.Reconcile(loaded.Voices, loaded.Languages)

	res := Result{
		Sources:   src,
		Languages: len(loaded.Languages),
		Stats:     pass.Stats(),
		Aliases:   pass.AliasUses(),
		Voices:    pass.Unresolved(),
	}
	if flags.All {
		res.Voices = pass.Results
	}
	if res.Voices == nil {
		res.Voices = []reconcile.VoiceResult{}
	}
	if flags.Lint {
		res.Lints = append(catalogs.LintLanguages(loaded.Languages), catalogs.LintVoices(loaded.Voices)...)
		for _, l := range res.Lints {
			logger.Warn().
				Str("catalog", l.Catalog).
				Int("position", l.Position).
				Str("code", l.Code).
				Msg("Malformed language tag")
		}
	}

	if err := write(w, format, res); err != nil {
		return err
	}

	if flags.Strict && res.Stats.Unresolved > 0 {
		return fmt.Errorf("%d voices unresolved: %w", res.Stats.Unresolved, pass.Err())
	}
	return nil
}

func write(w io.Writer, format output.Format, res Result) error {
	formatter := output.NewFormatter(format)
	if !format.Tabular() {
		return formatter.Format(w, res)
	}

	tables := []table.Data{table.StatsToTableData(res.Stats, res.Languages)}
	if len(res.Voices) > 0 {
		tables = append(tables, table.ResultsToTableData(res.Voices, format.Wide()))
	}
	if len(res.Lints) > 0 {
		tables = append(tables, table.LintsToTableData(res.Lints))
	}

	for i, t := range tables {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := formatter.Format(w, t); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	aw := alerts.NewWriterTo(w, false)
	for _, a := range statusAlerts(res) {
		if err := aw.WriteAlert(a); err != nil {
			return err
		}
	}
	return nil
}

// statusAlerts summarizes a check for the end of tabular output.
func statusAlerts(res Result) []*alerts.Alert {
	var out []*alerts.Alert
	if res.Stats.Unresolved == 0 {
		out = append(out, alerts.NewSuccess(fmt.Sprintf("All %d voices resolved", res.Stats.Voices)))
	} else {
		out = append(out, alerts.NewWarning(fmt.Sprintf("%d of %d voices unresolved",
			res.Stats.Unresolved, res.Stats.Voices)))
	}
	if len(res.Lints) > 0 {
		out = append(out, alerts.NewWarning(fmt.Sprintf("%d malformed language tags", len(res.Lints))))
	}
	return out
}
