// Package catalog provides common catalog operations for CLI commands.
package catalog

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/voicemap/pkg/catalogs"
)

// Sources names the files a command reads.
type Sources struct {
	Languages string `json:"languages" yaml:"languages"`
	Voices    string `json:"voices" yaml:"voices"`
	Aliases   string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

// Loaded holds both catalogs in file order.
type Loaded struct {
	Sources   Sources
	Languages []catalogs.Language
	Voices    []catalogs.Voice
}

// Load reads the language catalog and then the voice catalog. Any read or
// parse failure aborts the run; no output may be produced from a partial load.
func Load(src Sources, logger *zerolog.Logger) (*Loaded, error) {
	loaded, err := LoadLanguages(src, logger)
	if err != nil {
		return nil, err
	}

	voices, err := catalogs.LoadVoicesFile(src.Voices)
	if err != nil {
		return nil, err
	}
	logger.Debug().
		Str("file", src.Voices).
		Int("voices", len(voices)).
		Msg("Loaded voice catalog")

	loaded.Voices = voices
	return loaded, nil
}

// LoadLanguages reads only the language catalog. src.Voices is never opened.
func LoadLanguages(src Sources, logger *zerolog.Logger) (*Loaded, error) {
	languages, err := catalogs.LoadLanguagesFile(src.Languages)
	if err != nil {
		return nil, err
	}
	logger.Debug().
		Str("file", src.Languages).
		Int("languages", len(languages)).
		Msg("Loaded language catalog")

	return &Loaded{Sources: src, Languages: languages}, nil
}
