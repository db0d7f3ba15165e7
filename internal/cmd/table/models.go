// Package table converts reconciliation results to table rows for CLI output.
package table

import (
	"strconv"
	"strings"

	"github.com/agentstation/voicemap/pkg/catalogs"
	"github.com/agentstation/voicemap/pkg/reconcile"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align
}

const none = "-"

// ResultsToTableData converts voice results to table format. Wide output
// adds the alias, the full code list and the sample rate.
func ResultsToTableData(results []reconcile.VoiceResult, wide bool) Data {
	headers := []string{"Position", "Voice", "Code", "Subtag", "Language ID"}
	align := []Align{AlignRight, AlignLeft, AlignLeft, AlignLeft, AlignRight}
	if wide {
		headers = append(headers, "Alias", "Codes", "Gender", "Sample Rate")
		align = append(align, AlignLeft, AlignLeft, AlignLeft, AlignRight)
	}

	rows := make([][]string, 0, len(results))
	for _, vr := range results {
		languageID := none
		if vr.Result.Resolved() {
			languageID = strconv.Itoa(vr.Result.LanguagePosition)
		}
		row := []string{
			strconv.Itoa(vr.Voice.Position),
			vr.Voice.Name,
			orNone(vr.Result.Code),
			orNone(vr.Result.Subtag),
			languageID,
		}
		if wide {
			alias := none
			if vr.Result.AliasedFrom != "" {
				alias = vr.Result.AliasedFrom + " -> " + vr.Result.Subtag
			}
			row = append(row,
				alias,
				strings.Join(vr.Voice.LanguageCodes, ","),
				vr.Voice.Gender.String(),
				strconv.Itoa(int(vr.Voice.SampleRateHertz)),
			)
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

// StatsToTableData renders pass statistics as a key-value table.
func StatsToTableData(stats reconcile.Stats, languages int) Data {
	return Data{
		Headers: []string{"Metric", "Count"},
		Rows: [][]string{
			{"Languages", strconv.Itoa(languages)},
			{"Voices", strconv.Itoa(stats.Voices)},
			{"Resolved", strconv.Itoa(stats.Resolved)},
			{"Aliased", strconv.Itoa(stats.Aliased)},
			{"Unresolved", strconv.Itoa(stats.Unresolved)},
		},
		ColumnAlignment: []Align{AlignLeft, AlignRight},
	}
}

// AliasesToTableData lists an alias table sorted by subtag.
func AliasesToTableData(aliases reconcile.Aliases) Data {
	rows := make([][]string, 0, len(aliases))
	for _, from := range aliases.Keys() {
		rows = append(rows, []string{from, aliases[from]})
	}
	return Data{Headers: []string{"From", "To"}, Rows: rows}
}

// LintsToTableData lists catalog lint findings.
func LintsToTableData(lints []catalogs.Lint) Data {
	rows := make([][]string, 0, len(lints))
	for _, l := range lints {
		rows = append(rows, []string{l.Catalog, strconv.Itoa(l.Position), l.Name, l.Code, l.Message})
	}
	return Data{
		Headers:         []string{"Catalog", "Position", "Name", "Code", "Message"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight, AlignLeft, AlignLeft, AlignLeft},
	}
}

func orNone(s string) string {
	if s == "" {
		return none
	}
	return s
}
