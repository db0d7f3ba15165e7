package catalogs

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Gender is the SSML gender a voice declares. Values follow the provider's
// enum numbering so the protobuf JSON form can be read directly.
type Gender int32

// Gender values.
const (
	GenderUnspecified Gender = iota
	GenderMale
	GenderFemale
	GenderNeutral
)

var genderNames = map[Gender]string{
	GenderUnspecified: "SSML_VOICE_GENDER_UNSPECIFIED",
	GenderMale:        "MALE",
	GenderFemale:      "FEMALE",
	GenderNeutral:     "NEUTRAL",
}

// String returns the provider's name for the gender.
func (g Gender) String() string {
	if name, ok := genderNames[g]; ok {
		return name
	}
	return genderNames[GenderUnspecified]
}

// ParseGender maps a provider gender name to a Gender. Unknown or empty
// names map to GenderUnspecified.
func ParseGender(s string) Gender {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "MALE":
		return GenderMale
	case "FEMALE":
		return GenderFemale
	case "NEUTRAL":
		return GenderNeutral
	default:
		return GenderUnspecified
	}
}

// MarshalText renders the gender by name in JSON and YAML output.
func (g Gender) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText parses a gender name.
func (g *Gender) UnmarshalText(text []byte) error {
	*g = ParseGender(string(text))
	return nil
}

// UnmarshalJSON accepts either the REST form ("FEMALE") or the protobuf
// enum number (2).
func (g *Gender) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*g = GenderUnspecified
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*g = ParseGender(s)
		return nil
	}

	var n int32
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*g = Gender(n)
	if _, ok := genderNames[*g]; !ok {
		*g = GenderUnspecified
	}
	return nil
}
