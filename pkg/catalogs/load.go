package catalogs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/agentstation/voicemap/pkg/errors"
)

// languageEntry is one element of the language catalog document.
type languageEntry struct {
	Language string `json:"language"`
	Name     string `json:"name"`
}

// voiceEntry is one element of the voice catalog document. The REST listing
// uses camelCase keys; marshaling the provider's protobuf structs yields
// snake_case keys with the gender as an enum number. Both are accepted.
type voiceEntry struct {
	LanguageCodes          []string `json:"languageCodes"`
	SsmlGender             *Gender  `json:"ssmlGender"`
	Name                   string   `json:"name"`
	NaturalSampleRateHertz int32    `json:"naturalSampleRateHertz"`

	LanguageCodesSnake          []string `json:"language_codes"`
	SsmlGenderSnake             *Gender  `json:"ssml_gender"`
	NaturalSampleRateHertzSnake int32    `json:"natural_sample_rate_hertz"`
}

func (e voiceEntry) codes() []string {
	if len(e.LanguageCodes) > 0 {
		return e.LanguageCodes
	}
	return e.LanguageCodesSnake
}

// rest reports whether the entry uses the REST listing's camelCase keys.
func (e voiceEntry) rest() bool {
	return len(e.LanguageCodes) > 0
}

func (e voiceEntry) gender() Gender {
	switch {
	case e.SsmlGender != nil:
		return *e.SsmlGender
	case e.SsmlGenderSnake != nil:
		return *e.SsmlGenderSnake
	default:
		return GenderUnspecified
	}
}

func (e voiceEntry) sampleRate() int32 {
	if e.NaturalSampleRateHertz != 0 {
		return e.NaturalSampleRateHertz
	}
	return e.NaturalSampleRateHertzSnake
}

// voicesDocument is the REST response shape: {"voices": [...]}.
type voicesDocument struct {
	Voices *[]voiceEntry `json:"voices"`
}

// LoadLanguages parses a language catalog. Positions follow document order.
// An empty catalog or an entry without a tag or name is malformed input and
// nothing is returned. source names the document in errors.
func LoadLanguages(r io.Reader, source string) ([]Language, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WrapIO("read", source, err)
	}

	var entries []languageEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.WrapParse("json", source, err)
	}
	if len(entries) == 0 {
		return nil, errors.NewValidationError("languages", source, "language catalog is empty")
	}

	languages := make([]Language, 0, len(entries))
	for i, e := range entries {
		if e.Language == "" {
			return nil, errors.NewValidationError(fmt.Sprintf("languages[%d].language", i), e, "missing language tag")
		}
		if e.Name == "" {
			return nil, errors.NewValidationError(fmt.Sprintf("languages[%d].name", i), e, "missing language name")
		}
		languages = append(languages, Language{
			Position: i,
			Tag:      e.Language,
			Name:     e.Name,
		})
	}
	return languages, nil
}

// LoadVoices parses a voice catalog, either {"voices": [...]} or a bare
// array. Positions follow document order and language codes keep their
// order. An empty catalog, a voice without a name, language codes or sample
// rate, or a REST-shaped voice without a gender is malformed input and
// nothing is returned. The protobuf shape omits a zero gender, so there a
// missing gender means unspecified.
func LoadVoices(r io.Reader, source string) ([]Voice, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WrapIO("read", source, err)
	}

	entries, err := decodeVoiceEntries(data, source)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, errors.NewValidationError("voices", source, "voice catalog is empty")
	}

	voices := make([]Voice, 0, len(entries))
	for i, e := range entries {
		if e.Name == "" {
			return nil, errors.NewValidationError(fmt.Sprintf("voices[%d].name", i), nil, "missing voice name")
		}
		codes := e.codes()
		if len(codes) == 0 {
			return nil, errors.NewValidationError(fmt.Sprintf("voices[%d].languageCodes", i), e.Name, "voice has no language codes")
		}
		for j, c := range codes {
			if c == "" {
				return nil, errors.NewValidationError(fmt.Sprintf("voices[%d].languageCodes[%d]", i, j), e.Name, "empty language code")
			}
		}
		if e.rest() && e.SsmlGender == nil {
			return nil, errors.NewValidationError(fmt.Sprintf("voices[%d].ssmlGender", i), e.Name, "missing gender")
		}
		if e.sampleRate() <= 0 {
			return nil, errors.NewValidationError(fmt.Sprintf("voices[%d].naturalSampleRateHertz", i), e.Name, "missing sample rate")
		}
		voices = append(voices, Voice{
			Position:        i,
			LanguageCodes:   append([]string(nil), codes...),
			Gender:          e.gender(),
			Name:            e.Name,
			SampleRateHertz: e.sampleRate(),
		})
	}
	return voices, nil
}

func decodeVoiceEntries(data []byte, source string) ([]voiceEntry, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.NewValidationError("voices", source, "voice catalog is empty")
	}

	if trimmed[0] == '[' {
		var entries []voiceEntry
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, errors.WrapParse("json", source, err)
		}
		return entries, nil
	}

	var doc voicesDocument
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, errors.WrapParse("json", source, err)
	}
	if doc.Voices == nil {
		return nil, errors.NewValidationError("voices", source, `document has no "voices" field`)
	}
	return *doc.Voices, nil
}

// LoadLanguagesFile loads a language catalog from a path on disk.
func LoadLanguagesFile(path string) ([]Language, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()
	return LoadLanguages(f, path)
}

// LoadVoicesFile loads a voice catalog from a path on disk.
func LoadVoicesFile(path string) ([]Voice, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()
	return LoadVoices(f, path)
}
