// Package output provides formatters for command output.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/voicemap/internal/cmd/table"
	"github.com/agentstation/voicemap/pkg/errors"
)

// Format types for output.
type Format string

const (
	// FormatTable represents table output format.
	FormatTable Format = "table"
	// FormatJSON represents JSON output format.
	FormatJSON Format = "json"
	// FormatYAML represents YAML output format.
	FormatYAML Format = "yaml"
	// FormatWide represents wide table output format.
	FormatWide Format = "wide"
)

// Wide reports whether the format asks for extra table columns.
func (f Format) Wide() bool {
	return f == FormatWide
}

// Tabular reports whether the format renders a table.
func (f Format) Tabular() bool {
	return f == FormatTable || f == FormatWide || f == ""
}

// Formatter interface for all output types.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// FormatterFunc allows functions to implement Formatter.
type FormatterFunc func(io.Writer, any) error

// Format implements the Formatter interface.
func (f FormatterFunc) Format(w io.Writer, data any) error {
	return f(w, data)
}

// NewFormatter creates appropriate formatter based on format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: "  "}
	case FormatYAML:
		return &YAMLFormatter{}
	default:
		return &TableFormatter{}
	}
}

// JSONFormatter outputs JSON format.
type JSONFormatter struct {
	Indent string
}

// Format implements the Formatter interface for JSON output.
func (f *JSONFormatter) Format(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if f.Indent != "" {
		encoder.SetIndent("", f.Indent)
	}
	if err := encoder.Encode(data); err != nil {
		return errors.WrapIO("encode", "json", err)
	}
	return nil
}

// YAMLFormatter outputs YAML format.
type YAMLFormatter struct{}

// Format outputs data in YAML format.
func (f *YAMLFormatter) Format(w io.Writer, data any) error {
	out, err := yaml.MarshalWithOptions(data,
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
	if err != nil {
		return errors.WrapParse("yaml", "output", err)
	}
	_, err = w.Write(out)
	return errors.WrapIO("write", "output", err)
}

// TableFormatter outputs table format.
type TableFormatter struct{}

// Format renders Data or table.Data directly. Structs and slices of structs
// are converted by reflection; anything else falls back to JSON.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	switch v := data.(type) {
	case Data:
		return f.render(w, v)
	case table.Data:
		return f.render(w, FromTable(v))
	}

	if d, ok := reflectTable(data); ok {
		return f.render(w, d)
	}
	return (&JSONFormatter{Indent: "  "}).Format(w, data)
}

func (f *TableFormatter) render(w io.Writer, data Data) error {
	config := tablewriter.Config{}
	if len(data.ColumnAlignment) > 0 {
		perColumn := make([]tw.Align, len(data.ColumnAlignment))
		for i, a := range data.ColumnAlignment {
			perColumn[i] = twAlign(a)
		}
		config.Header.Alignment = tw.CellAlignment{PerColumn: perColumn}
		config.Row.Alignment = tw.CellAlignment{PerColumn: perColumn}
	}

	t := tablewriter.NewTable(w, tablewriter.WithConfig(config))
	if len(data.Headers) > 0 {
		t.Header(toAny(data.Headers)...)
	}
	for _, row := range data.Rows {
		if err := t.Append(toAny(row)...); err != nil {
			return errors.WrapIO("render", "table", err)
		}
	}
	return errors.WrapIO("render", "table", t.Render())
}

func twAlign(a table.Align) tw.Align {
	switch a {
	case table.AlignLeft:
		return tw.AlignLeft
	case table.AlignCenter:
		return tw.AlignCenter
	case table.AlignRight:
		return tw.AlignRight
	default:
		return tw.Skip
	}
}

func toAny(cells []string) []any {
	out := make([]any, len(cells))
	for i, c := range cells {
		out[i] = c
	}
	return out
}

// Data represents data formatted for table output.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []table.Align
}

// FromTable converts table.Data to Data.
func FromTable(d table.Data) Data {
	return Data{Headers: d.Headers, Rows: d.Rows, ColumnAlignment: d.ColumnAlignment}
}

// Select returns tableData for tabular formats and raw otherwise, so JSON and
// YAML carry the full records.
func Select(format Format, tableData table.Data, raw any) any {
	if format.Tabular() {
		return FromTable(tableData)
	}
	return raw
}

// DetectFormat auto-detects format based on terminal and environment.
func DetectFormat(explicitFormat string) Format {
	return detectFormat(explicitFormat, os.Stdout)
}

func detectFormat(explicitFormat string, out *os.File) Format {
	if explicitFormat != "" {
		return Format(strings.ToLower(explicitFormat))
	}
	if isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd()) {
		return FormatTable
	}
	// Pipes and redirects get JSON.
	return FormatJSON
}

// ParseFormat converts string to Format with validation.
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(s))
	switch format {
	case FormatTable, FormatJSON, FormatYAML, FormatWide, "":
		return format, nil
	default:
		return "", errors.NewValidationError("format", s,
			fmt.Sprintf("invalid format %q: must be one of: table, json, yaml, wide", s))
	}
}

// reflectTable converts a struct into a property table and a non-empty slice
// of structs into one row per element.
func reflectTable(data any) (Data, bool) {
	v := reflect.ValueOf(data)
	switch {
	case v.Kind() == reflect.Struct:
		rows := make([][]string, 0, v.NumField())
		for i := 0; i < v.NumField(); i++ {
			rows = append(rows, []string{headerName(v.Type().Field(i)), fmt.Sprint(v.Field(i).Interface())})
		}
		return Data{Headers: []string{"Property", "Value"}, Rows: rows}, true

	case v.Kind() == reflect.Slice && v.Len() > 0 && v.Index(0).Kind() == reflect.Struct:
		elemType := v.Index(0).Type()
		headers := make([]string, elemType.NumField())
		for i := range headers {
			headers[i] = headerName(elemType.Field(i))
		}
		rows := make([][]string, v.Len())
		for i := range rows {
			elem := v.Index(i)
			row := make([]string, elem.NumField())
			for j := range row {
				row[j] = fmt.Sprint(elem.Field(j).Interface())
			}
			rows[i] = row
		}
		return Data{Headers: headers, Rows: rows}, true
	}
	return Data{}, false
}

// headerName titles the json tag of a field, falling back to its Go name.
func headerName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return field.Name
	}
	return cases.Title(language.English).String(strings.ReplaceAll(name, "_", " "))
}
