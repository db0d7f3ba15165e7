package reconcile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"github.com/agentstation/voicemap/pkg/errors"
)

// Aliases maps a voice subtag that never appears in the language catalog to
// the catalog subtag it stands for. Lookups substitute at most once; alias
// chains are not followed.
type Aliases map[string]string

// DefaultAliases returns the known mismatches between the voice and language
// providers:
//
//	fil -> tl  Filipino voices, catalog lists the language as Tagalog
//	nb  -> no  Norwegian Bokmål voices, catalog uses the Norwegian macro-code
func DefaultAliases() Aliases {
	return Aliases{
		"fil": "tl",
		"nb":  "no",
	}
}

// Lookup returns the canonical subtag for subtag and whether an alias applied.
func (a Aliases) Lookup(subtag string) (string, bool) {
	canonical, ok := a[subtag]
	if !ok {
		return subtag, false
	}
	return canonical, true
}

// Merge returns a new table holding a overlaid with each of others in turn.
// Later tables win on conflicting keys.
func (a Aliases) Merge(others ...Aliases) Aliases {
	merged := make(Aliases, len(a))
	for k, v := range a {
		merged[k] = v
	}
	for _, o := range others {
		for k, v := range o {
			merged[k] = v
		}
	}
	return merged
}

// Keys returns the aliased subtags in sorted order.
func (a Aliases) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate rejects empty subtags and entries that alias a subtag to itself.
func (a Aliases) Validate() error {
	for _, k := range a.Keys() {
		v := a[k]
		switch {
		case strings.TrimSpace(k) == "":
			return errors.NewValidationError("aliases", k, "alias subtag cannot be empty")
		case strings.TrimSpace(v) == "":
			return errors.NewValidationError("aliases."+k, v, "canonical subtag cannot be empty")
		case k == v:
			return errors.NewValidationError("aliases."+k, v, "alias maps a subtag to itself")
		case strings.ContainsAny(k, "-_"):
			return errors.NewValidationError("aliases."+k, k, "alias key must be a bare subtag without region")
		}
	}
	return nil
}

// aliasDocument is the on-disk shape of an alias file:
//
//	aliases:
//	  fil: tl
//	  nb: "no"
type aliasDocument struct {
	Aliases map[string]string `yaml:"aliases" toml:"aliases"`
}

// LoadAliases reads an alias table in the given format ("yaml" or "toml").
// source names the document in errors.
func LoadAliases(r io.Reader, format, source string) (Aliases, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WrapIO("read", source, err)
	}

	var doc aliasDocument
	switch strings.ToLower(format) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.WrapParse("yaml", source, err)
		}
	case "toml":
		if err := toml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
			return nil, errors.WrapParse("toml", source, err)
		}
	default:
		return nil, errors.NewValidationError("format", format, fmt.Sprintf("unsupported alias file format %q: must be yaml or toml", format))
	}

	aliases := Aliases(doc.Aliases)
	if aliases == nil {
		aliases = Aliases{}
	}
	if err := aliases.Validate(); err != nil {
		return nil, err
	}
	return aliases, nil
}

// LoadAliasesFile reads an alias table from disk, choosing the format from
// the file extension (.yaml, .yml or .toml).
func LoadAliasesFile(path string) (Aliases, error) {
	format := strings.TrimPrefix(filepath.Ext(path), ".")

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	return LoadAliases(f, format, path)
}
