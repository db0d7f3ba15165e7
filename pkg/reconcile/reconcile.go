// Package reconcile matches each voice's primary language code to the
// language catalog entry it belongs to.
//
// Matching compares only the leading subtag of the code ("fil" of "fil-PH").
// Subtags the voice provider spells differently from the language provider
// are corrected through an alias table before a first-match scan of the
// catalog. Reconciliation is total: every voice yields exactly one Result,
// and a voice that cannot be matched is reported instead of failing the pass.
package reconcile

import (
	"fmt"

	"github.com/agentstation/voicemap/pkg/catalogs"
)

// Status is the outcome of resolving one language code.
type Status string

// Resolution outcomes.
const (
	StatusResolved   Status = "resolved"
	StatusUnresolved Status = "unresolved"
)

// Result is the outcome of resolving a primary language code.
type Result struct {
	Status Status `json:"status" yaml:"status"`

	// Code is the primary language code as declared.
	Code string `json:"code" yaml:"code"`

	// Subtag is the subtag that was looked up, after alias substitution.
	Subtag string `json:"subtag" yaml:"subtag"`

	// AliasedFrom holds the declared subtag when an alias replaced it.
	AliasedFrom string `json:"aliased_from,omitempty" yaml:"aliased_from,omitempty"`

	// LanguagePosition is the matched language's position, or -1.
	LanguagePosition int `json:"language_position" yaml:"language_position"`

	// Reason explains an unresolved result.
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Resolved reports whether the code matched a catalog language.
func (r Result) Resolved() bool {
	return r.Status == StatusResolved
}

// Resolve finds the language that owns primaryCode. The code's leading
// subtag is replaced through aliases if present, then languages is scanned
// in order and the first record with an equal tag wins. Resolve never fails;
// a code with no match yields an unresolved Result.
func Resolve(primaryCode string, languages []catalogs.Language, aliases Aliases) Result {
	declared := catalogs.Subtag(primaryCode)
	subtag, aliased := aliases.Lookup(declared)

	result := Result{
		Code:             primaryCode,
		Subtag:           subtag,
		LanguagePosition: -1,
	}
	if aliased {
		result.AliasedFrom = declared
	}

	if subtag != "" {
		for _, l := range languages {
			if l.Tag == subtag {
				result.Status = StatusResolved
				result.LanguagePosition = l.Position
				return result
			}
		}
	}

	result.Status = StatusUnresolved
	switch {
	case primaryCode == "":
		result.Reason = "empty language code"
	case aliased:
		result.Reason = fmt.Sprintf("no language with tag %q (code %s, aliased from %q)", subtag, primaryCode, declared)
	default:
		result.Reason = fmt.Sprintf("no language with tag %q (code %s)", subtag, primaryCode)
	}
	return result
}
