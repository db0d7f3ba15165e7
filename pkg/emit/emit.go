// Package emit renders reconciled voices as Go composite literal elements
// and unresolved voices as diagnostic lines.
//
// Generated lines and diagnostics go to separate writers. Every diagnostic
// starts with constants.DiagnosticPrefix so it can be filtered out even when
// both streams are captured together.
package emit

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/agentstation/voicemap/pkg/catalogs"
	"github.com/agentstation/voicemap/pkg/constants"
	"github.com/agentstation/voicemap/pkg/errors"
	"github.com/agentstation/voicemap/pkg/reconcile"
)

// NameFilter selects voices by name for emission.
type NameFilter interface {
	Match(name string) bool
}

// VoiceLine renders one resolved voice, keyed by its voice position:
//
//	3: {LanguageID: 12, LanguageCodes: []string{"en-US"}, SsmlGender: "FEMALE", Name: "en-US-Standard-A", NaturalSampleRateHertz: 24000},
func VoiceLine(vr reconcile.VoiceResult) string {
	v := vr.Voice
	return fmt.Sprintf("%d: {LanguageID: %d, LanguageCodes: %s, SsmlGender: %s, Name: %s, NaturalSampleRateHertz: %d},",
		v.Position,
		vr.Result.LanguagePosition,
		stringSlice(v.LanguageCodes),
		strconv.Quote(v.Gender.String()),
		strconv.Quote(v.Name),
		v.SampleRateHertz,
	)
}

// LanguageLine renders one language, keyed by its catalog position:
//
//	12: {Name: "English", Tag: "en"},
func LanguageLine(l catalogs.Language) string {
	return fmt.Sprintf("%d: {Name: %s, Tag: %s},", l.Position, strconv.Quote(l.Name), strconv.Quote(l.Tag))
}

// DiagnosticLine renders one unresolved voice.
func DiagnosticLine(vr reconcile.VoiceResult) string {
	return fmt.Sprintf("%s voice=%s code=%s subtag=%s",
		constants.DiagnosticPrefix, vr.Voice.Name, vr.Result.Code, vr.Result.Subtag)
}

func stringSlice(values []string) string {
	quoted := make([]string, len(values))
	for i, s := range values {
		quoted[i] = strconv.Quote(s)
	}
	return "[]string{" + strings.Join(quoted, ", ") + "}"
}

// Emitter writes the lines of a reconciliation pass.
type Emitter struct {
	out    io.Writer
	diag   io.Writer
	filter NameFilter
}

// Option configures an Emitter.
type Option func(*Emitter)

// WithFilter emits only resolved voices whose name the filter accepts.
// Filtering never changes voice positions.
func WithFilter(f NameFilter) Option {
	return func(e *Emitter) {
		e.filter = f
	}
}

// New creates an Emitter writing generated lines to out and diagnostics to
// diag. A nil diag discards diagnostics.
func New(out, diag io.Writer, opts ...Option) *Emitter {
	if diag == nil {
		diag = io.Discard
	}
	e := &Emitter{out: out, diag: diag}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Summary counts what an Emitter wrote.
type Summary struct {
	Written     int `json:"written" yaml:"written"`
	Filtered    int `json:"filtered" yaml:"filtered"`
	Diagnostics int `json:"diagnostics" yaml:"diagnostics"`
}

// Voices writes one line per resolved voice and one diagnostic per
// unresolved voice, both in voice order.
func (e *Emitter) Voices(pass *reconcile.Pass) (Summary, error) {
	var s Summary
	for _, vr := range pass.Results {
		if !vr.Result.Resolved() {
			if _, err := fmt.Fprintln(e.diag, DiagnosticLine(vr)); err != nil {
				return s, errors.WrapIO("write", "diagnostics", err)
			}
			s.Diagnostics++
			continue
		}
		if e.filter != nil && !e.filter.Match(vr.Voice.Name) {
			s.Filtered++
			continue
		}
		if _, err := fmt.Fprintln(e.out, VoiceLine(vr)); err != nil {
			return s, errors.WrapIO("write", "output", err)
		}
		s.Written++
	}
	return s, nil
}

// Languages writes one line per language in catalog order.
func (e *Emitter) Languages(languages []catalogs.Language) error {
	for _, l := range languages {
		if _, err := fmt.Fprintln(e.out, LanguageLine(l)); err != nil {
			return errors.WrapIO("write", "output", err)
		}
	}
	return nil
}
