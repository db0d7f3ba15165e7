package catalogs

import (
	"strings"

	"golang.org/x/text/language"
)

// Lint is a non-fatal finding about a catalog entry.
type Lint struct {
	Catalog  string `json:"catalog" yaml:"catalog"`
	Position int    `json:"position" yaml:"position"`
	Name     string `json:"name" yaml:"name"`
	Code     string `json:"code" yaml:"code"`
	Message  string `json:"message" yaml:"message"`
}

// MsgUnderscore flags a code that separates subtags with "_". Subtag accepts
// it, but BCP 47 and the provider only use "-".
const MsgUnderscore = `underscore used as subtag separator`

// lintCode returns the finding for code, or "" if it is well-formed BCP 47.
func lintCode(code string) string {
	if strings.Contains(code, "_") {
		return MsgUnderscore
	}
	if _, err := language.Parse(code); err != nil {
		return err.Error()
	}
	return ""
}

// LintLanguages reports language tags that are not well-formed BCP 47.
// Findings never affect reconciliation.
func LintLanguages(languages []Language) []Lint {
	var lints []Lint
	for _, l := range languages {
		if msg := lintCode(l.Tag); msg != "" {
			lints = append(lints, Lint{
				Catalog:  "languages",
				Position: l.Position,
				Name:     l.Name,
				Code:     l.Tag,
				Message:  msg,
			})
		}
	}
	return lints
}

// LintVoices reports voice language codes that are not well-formed BCP 47.
// Every code of a voice is checked, not only the primary one.
func LintVoices(voices []Voice) []Lint {
	var lints []Lint
	for _, v := range voices {
		for _, code := range v.LanguageCodes {
			if msg := lintCode(code); msg != "" {
				lints = append(lints, Lint{
					Catalog:  "voices",
					Position: v.Position,
					Name:     v.Name,
					Code:     code,
					Message:  msg,
				})
			}
		}
	}
	return lints
}
