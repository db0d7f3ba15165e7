package emit

import (
	"bytes"
	"go/format"
	"strings"
	"text/template"

	"github.com/agentstation/voicemap/pkg/catalogs"
	"github.com/agentstation/voicemap/pkg/constants"
	"github.com/agentstation/voicemap/pkg/errors"
	"github.com/agentstation/voicemap/pkg/reconcile"
)

// FileOptions names the identifiers of a generated Go file.
type FileOptions struct {
	Package      string
	VoicesVar    string
	VoiceType    string
	LanguagesVar string
	LanguageType string

	// SkipLanguages omits the language map, for files that only carry voices.
	SkipLanguages bool
}

// DefaultFileOptions returns the identifiers used by the consuming models package.
func DefaultFileOptions() FileOptions {
	return FileOptions{
		Package:      constants.DefaultPackage,
		VoicesVar:    constants.DefaultVoicesVar,
		VoiceType:    constants.DefaultVoiceType,
		LanguagesVar: constants.DefaultLanguagesVar,
		LanguageType: constants.DefaultLanguageType,
	}
}

func (o FileOptions) withDefaults() FileOptions {
	d := DefaultFileOptions()
	if o.Package == "" {
		o.Package = d.Package
	}
	if o.VoicesVar == "" {
		o.VoicesVar = d.VoicesVar
	}
	if o.VoiceType == "" {
		o.VoiceType = d.VoiceType
	}
	if o.LanguagesVar == "" {
		o.LanguagesVar = d.LanguagesVar
	}
	if o.LanguageType == "" {
		o.LanguageType = d.LanguageType
	}
	return o
}

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by voicemap; DO NOT EDIT.

package {{.Package}}
{{if .Languages}}
// {{.LanguagesVar}} is the language catalog keyed by catalog position.
var {{.LanguagesVar}} = map[int]{{.LanguageType}}{
{{range .Languages}}{{.}}
{{end}}}
{{end}}
// {{.VoicesVar}} is the voice catalog keyed by voice position.
// LanguageID is the key of the voice's language in {{.LanguagesVar}}.
var {{.VoicesVar}} = map[int]{{.VoiceType}}{
{{range .Voices}}{{.}}
{{end}}}
`))

type fileData struct {
	FileOptions
	Languages []string
	Voices    []string
}

// File writes a complete, gofmt-formatted Go source file holding the
// language map and the resolved voices. Unresolved voices are written to the
// diagnostic writer only.
func (e *Emitter) File(pass *reconcile.Pass, languages []catalogs.Language, opts FileOptions) (Summary, error) {
	opts = opts.withDefaults()

	var voiceBuf bytes.Buffer
	lines := New(&voiceBuf, e.diag, WithFilter(e.filter))
	summary, err := lines.Voices(pass)
	if err != nil {
		return summary, err
	}

	data := fileData{
		FileOptions: opts,
		Voices:      splitLines(voiceBuf.String()),
	}
	if !opts.SkipLanguages {
		data.Languages = make([]string, 0, len(languages))
		for _, l := range languages {
			data.Languages = append(data.Languages, LanguageLine(l))
		}
	}

	var src bytes.Buffer
	if err := fileTemplate.Execute(&src, data); err != nil {
		return summary, errors.WrapIO("render", "template", err)
	}

	formatted, err := format.Source(src.Bytes())
	if err != nil {
		return summary, errors.NewParseError("go", opts.Package, "generated source does not parse", err)
	}

	if _, err := e.out.Write(formatted); err != nil {
		return summary, errors.WrapIO("write", "output", err)
	}
	return summary, nil
}

func splitLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
