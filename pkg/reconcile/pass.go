package reconcile

import (
	"sort"

	"github.com/agentstation/voicemap/pkg/catalogs"
	"github.com/agentstation/voicemap/pkg/errors"
)

// VoiceResult pairs a voice with the result of resolving its primary code.
type VoiceResult struct {
	Voice  catalogs.Voice `json:"voice" yaml:"voice"`
	Result Result         `json:"result" yaml:"result"`
}

// Err returns an *errors.UnresolvedTagError for an unresolved voice and nil
// otherwise.
func (vr VoiceResult) Err() error {
	if vr.Result.Resolved() {
		return nil
	}
	return errors.NewUnresolvedTagError(vr.Voice.Name, vr.Result.Code, vr.Result.Subtag)
}

// Pass holds the results of one reconciliation pass, one per voice, in
// voice input order.
type Pass struct {
	Results []VoiceResult `json:"results" yaml:"results"`
}

// Stats summarizes a pass.
type Stats struct {
	Voices     int `json:"voices" yaml:"voices"`
	Resolved   int `json:"resolved" yaml:"resolved"`
	Unresolved int `json:"unresolved" yaml:"unresolved"`
	Aliased    int `json:"aliased" yaml:"aliased"`
}

// Stats counts resolved, unresolved and aliased voices.
func (p *Pass) Stats() Stats {
	s := Stats{Voices: len(p.Results)}
	for _, vr := range p.Results {
		if vr.Result.Resolved() {
			s.Resolved++
			if vr.Result.AliasedFrom != "" {
				s.Aliased++
			}
		} else {
			s.Unresolved++
		}
	}
	return s
}

// Resolved returns the resolved results in voice order.
func (p *Pass) Resolved() []VoiceResult {
	return p.filter(true)
}

// Unresolved returns the unresolved results in voice order.
func (p *Pass) Unresolved() []VoiceResult {
	return p.filter(false)
}

func (p *Pass) filter(resolved bool) []VoiceResult {
	var out []VoiceResult
	for _, vr := range p.Results {
		if vr.Result.Resolved() == resolved {
			out = append(out, vr)
		}
	}
	return out
}

// Err joins the errors of all unresolved voices, or returns nil when every
// voice resolved.
func (p *Pass) Err() error {
	var errs []error
	for _, vr := range p.Results {
		if err := vr.Err(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// AliasUse counts how many voices an alias resolved.
type AliasUse struct {
	From   string `json:"from" yaml:"from"`
	To     string `json:"to" yaml:"to"`
	Voices int    `json:"voices" yaml:"voices"`
}

// AliasUses lists the aliases applied during the pass, sorted by subtag.
func (p *Pass) AliasUses() []AliasUse {
	counts := make(map[string]*AliasUse)
	for _, vr := range p.Results {
		if vr.Result.AliasedFrom == "" {
			continue
		}
		u, ok := counts[vr.Result.AliasedFrom]
		if !ok {
			u = &AliasUse{From: vr.Result.AliasedFrom, To: vr.Result.Subtag}
			counts[vr.Result.AliasedFrom] = u
		}
		u.Voices++
	}

	uses := make([]AliasUse, 0, len(counts))
	for _, u := range counts {
		uses = append(uses, *u)
	}
	sort.Slice(uses, func(i, j int) bool { return uses[i].From < uses[j].From })
	return uses
}

// LanguageCoverage is the number of resolved voices owned by a language.
type LanguageCoverage struct {
	Language catalogs.Language `json:"language" yaml:"language"`
	Voices   int               `json:"voices" yaml:"voices"`
}

// Coverage counts resolved voices per language, in catalog order. Languages
// with no voices are included with a zero count.
func (p *Pass) Coverage(languages []catalogs.Language) []LanguageCoverage {
	counts := make(map[int]int)
	for _, vr := range p.Results {
		if vr.Result.Resolved() {
			counts[vr.Result.LanguagePosition]++
		}
	}

	coverage := make([]LanguageCoverage, 0, len(languages))
	for _, l := range languages {
		coverage = append(coverage, LanguageCoverage{Language: l, Voices: counts[l.Position]})
	}
	return coverage
}
