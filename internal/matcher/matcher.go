// Package matcher selects voices by name using glob or regular expression
// patterns.
//
// A pattern is a glob by default ("*-Chirp3-HD-*"). Prefix it with "re:" to
// use a regular expression ("re:^en-.*-Studio-"). A Filter built from several
// patterns accepts a name when any pattern matches it.
package matcher

import (
	"path"
	"regexp"
	"strings"

	"github.com/agentstation/voicemap/pkg/errors"
)

// RegexPrefix marks a pattern as a regular expression.
const RegexPrefix = "re:"

// PatternType represents the type of pattern matching to use.
type PatternType int

const (
	// Glob uses shell-style glob patterns (*, ?, []).
	Glob PatternType = iota
	// Regex uses regular expressions.
	Regex
)

// String returns a string representation of the PatternType.
func (pt PatternType) String() string {
	switch pt {
	case Glob:
		return "glob"
	case Regex:
		return "regex"
	default:
		return "unknown"
	}
}

// Matcher matches a single pattern.
type Matcher struct {
	pattern     string
	patternType PatternType
	compiled    *regexp.Regexp
	fold        bool
}

// Options configures matching.
type Options struct {
	// CaseInsensitive makes matching case-insensitive.
	CaseInsensitive bool
}

// New parses pattern. A "re:" prefix selects a regular expression; anything
// else is a glob.
func New(pattern string, opts ...Options) (*Matcher, error) {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}

	if pattern == "" {
		return nil, errors.NewValidationError("pattern", pattern, "empty voice name pattern")
	}

	m := &Matcher{pattern: pattern, fold: o.CaseInsensitive}

	if expr, ok := strings.CutPrefix(pattern, RegexPrefix); ok {
		m.patternType = Regex
		if o.CaseInsensitive && !strings.HasPrefix(expr, "(?i)") {
			expr = "(?i)" + expr
		}
		compiled, err := regexp.Compile(expr)
		if err != nil {
			return nil, errors.WrapValidation("pattern", err)
		}
		m.compiled = compiled
		return m, nil
	}

	m.patternType = Glob
	if _, err := path.Match(m.glob(), ""); err != nil {
		return nil, errors.NewValidationError("pattern", pattern, "invalid glob pattern")
	}
	return m, nil
}

func (m *Matcher) glob() string {
	if m.fold {
		return strings.ToLower(m.pattern)
	}
	return m.pattern
}

// Match reports whether name matches the pattern. Globs must match the
// whole name; regular expressions match anywhere unless anchored.
func (m *Matcher) Match(name string) bool {
	if m.patternType == Regex {
		return m.compiled.MatchString(name)
	}
	if m.fold {
		name = strings.ToLower(name)
	}
	ok, _ := path.Match(m.glob(), name)
	return ok
}

// Pattern returns the original pattern string.
func (m *Matcher) Pattern() string {
	return m.pattern
}

// Filter accepts a name when any of its patterns match.
type Filter struct {
	matchers []*Matcher
}

// NewFilter compiles every pattern. It fails on the first invalid one.
func NewFilter(patterns []string, opts ...Options) (*Filter, error) {
	f := &Filter{matchers: make([]*Matcher, 0, len(patterns))}
	for _, p := range patterns {
		m, err := New(p, opts...)
		if err != nil {
			return nil, err
		}
		f.matchers = append(f.matchers, m)
	}
	return f, nil
}

// Match reports whether any pattern matches name. An empty filter matches
// everything.
func (f *Filter) Match(name string) bool {
	if len(f.matchers) == 0 {
		return true
	}
	for _, m := range f.matchers {
		if m.Match(name) {
			return true
		}
	}
	return false
}

// Patterns returns the patterns in the order given, each prefixed with its
// kind ("glob:*-Studio-*", "regex:^en-") for logging.
func (f *Filter) Patterns() []string {
	out := make([]string, len(f.matchers))
	for i, m := range f.matchers {
		expr := strings.TrimPrefix(m.pattern, RegexPrefix)
		out[i] = m.patternType.String() + ":" + expr
	}
	return out
}
