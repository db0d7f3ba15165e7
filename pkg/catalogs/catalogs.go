// Package catalogs defines the language and voice records that voicemap
// cross-references and loads them from the JSON documents written by the
// provider listing scripts.
//
// Catalog order is significant. A record's Position is its index in load
// order and is the identifier persisted into generated source, so loaders
// never sort or de-duplicate.
package catalogs

import "strings"

// Language is one entry of the translation provider's language catalog.
type Language struct {
	Position int    `json:"position" yaml:"position"`
	Tag      string `json:"tag" yaml:"tag"`
	Name     string `json:"name" yaml:"name"`
}

// Voice is one entry of the text-to-speech provider's voice catalog.
type Voice struct {
	Position        int      `json:"position" yaml:"position"`
	LanguageCodes   []string `json:"language_codes" yaml:"language_codes"`
	Gender          Gender   `json:"gender" yaml:"gender"`
	Name            string   `json:"name" yaml:"name"`
	SampleRateHertz int32    `json:"sample_rate_hertz" yaml:"sample_rate_hertz"`
}

// PrimaryCode returns the voice's first language code, or "" if it has none.
func (v Voice) PrimaryCode() string {
	if len(v.LanguageCodes) == 0 {
		return ""
	}
	return v.LanguageCodes[0]
}

// Subtag returns the portion of a language code before its first separator.
// Both "-" and "_" separate subtags; "fil-PH" and "fil_PH" yield "fil".
func Subtag(code string) string {
	if i := strings.IndexAny(code, "-_"); i >= 0 {
		return code[:i]
	}
	return code
}
