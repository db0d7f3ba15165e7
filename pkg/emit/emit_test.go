package emit_test

import (
	"bytes"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/voicemap/pkg/catalogs"
	"github.com/agentstation/voicemap/pkg/emit"
	"github.com/agentstation/voicemap/pkg/reconcile"
)

type prefixFilter string

func (p prefixFilter) Match(name string) bool { return strings.HasPrefix(name, string(p)) }

func testPass(t *testing.T) (*reconcile.Pass, []catalogs.Language) {
	t.Helper()

	languages := []catalogs.Language{
		{Position: 0, Tag: "en", Name: "English"},
		{Position: 1, Tag: "es", Name: "Spanish"},
		{Position: 2, Tag: "tl", Name: "Filipino"},
	}
	voices := []catalogs.Voice{
		{Position: 0, LanguageCodes: []string{"es-ES"}, Gender: catalogs.GenderFemale, Name: "es-ES-Standard-A", SampleRateHertz: 24000},
		{Position: 1, LanguageCodes: []string{"xx-YY"}, Gender: catalogs.GenderMale, Name: "xx-YY-Standard-A", SampleRateHertz: 16000},
		{Position: 2, LanguageCodes: []string{"fil-PH"}, Gender: catalogs.GenderMale, Name: "fil-PH-Wavenet-B", SampleRateHertz: 24000},
		{Position: 3, LanguageCodes: []string{"en-US", "en-GB"}, Gender: catalogs.GenderNeutral, Name: "en-US-Studio-Q", SampleRateHertz: 22050},
	}

	r, err := reconcile.New()
	require.NoError(t, err)
	return r.Reconcile(voices, languages), languages
}

func TestVoiceLine(t *testing.T) {
	pass, _ := testPass(t)

	assert.Equal(t,
		`0: {LanguageID: 1, LanguageCodes: []string{"es-ES"}, SsmlGender: "FEMALE", Name: "es-ES-Standard-A", NaturalSampleRateHertz: 24000},`,
		emit.VoiceLine(pass.Results[0]))
	assert.Equal(t,
		`3: {LanguageID: 0, LanguageCodes: []string{"en-US", "en-GB"}, SsmlGender: "NEUTRAL", Name: "en-US-Studio-Q", NaturalSampleRateHertz: 22050},`,
		emit.VoiceLine(pass.Results[3]))
}

func TestLanguageLine(t *testing.T) {
	line := emit.LanguageLine(catalogs.Language{Position: 4, Tag: "no", Name: `Norsk "bokmål"`})
	assert.Equal(t, `4: {Name: "Norsk \"bokmål\"", Tag: "no"},`, line)
}

func TestEmitterVoices(t *testing.T) {
	pass, _ := testPass(t)

	var out, diag bytes.Buffer
	summary, err := emit.New(&out, &diag).Voices(pass)
	require.NoError(t, err)

	assert.Equal(t, emit.Summary{Written: 3, Diagnostics: 1}, summary)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "0: "))
	assert.True(t, strings.HasPrefix(lines[1], "2: {LanguageID: 2,"))
	assert.True(t, strings.HasPrefix(lines[2], "3: "))
	assert.NotContains(t, out.String(), "xx-YY")

	assert.Equal(t, "unresolved: voice=xx-YY-Standard-A code=xx-YY subtag=xx\n", diag.String())
}

func TestEmitterFilterKeepsPositions(t *testing.T) {
	pass, _ := testPass(t)

	var out bytes.Buffer
	summary, err := emit.New(&out, nil, emit.WithFilter(prefixFilter("fil"))).Voices(pass)
	require.NoError(t, err)

	assert.Equal(t, emit.Summary{Written: 1, Filtered: 2, Diagnostics: 1}, summary)
	assert.True(t, strings.HasPrefix(out.String(), "2: "))
}

func TestEmitterLanguages(t *testing.T) {
	_, languages := testPass(t)

	var out bytes.Buffer
	require.NoError(t, emit.New(&out, nil).Languages(languages))
	assert.Equal(t, `0: {Name: "English", Tag: "en"},
1: {Name: "Spanish", Tag: "es"},
2: {Name: "Filipino", Tag: "tl"},
`, out.String())
}

func TestEmitterFile(t *testing.T) {
	pass, languages := testPass(t)

	var out, diag bytes.Buffer
	summary, err := emit.New(&out, &diag).File(pass, languages, emit.FileOptions{Package: "models"})
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Written)
	assert.Equal(t, 1, summary.Diagnostics)

	src := out.String()
	assert.True(t, strings.HasPrefix(src, "// Code generated by voicemap; DO NOT EDIT.\n"))
	assert.Contains(t, src, "package models")
	assert.Contains(t, src, "var Languages = map[int]Language{")
	assert.Contains(t, src, "var Voices = map[int]Voice{")
	assert.Contains(t, src, "\t2: {LanguageID: 2, LanguageCodes: []string{\"fil-PH\"}")
	assert.NotContains(t, src, "xx-YY")
	assert.Contains(t, diag.String(), "unresolved: voice=xx-YY-Standard-A")

	_, err = parser.ParseFile(token.NewFileSet(), "voices.go", src, parser.AllErrors)
	assert.NoError(t, err, "generated file must parse")
}

func TestEmitterFileDeterministic(t *testing.T) {
	pass, languages := testPass(t)

	render := func() string {
		var out bytes.Buffer
		_, err := emit.New(&out, nil).File(pass, languages, emit.DefaultFileOptions())
		require.NoError(t, err)
		return out.String()
	}

	assert.Equal(t, render(), render())
}

func TestEmitterFileSkipLanguages(t *testing.T) {
	pass, languages := testPass(t)

	var out bytes.Buffer
	_, err := emit.New(&out, nil).File(pass, languages, emit.FileOptions{
		Package:       "voices",
		VoicesVar:     "GoogleVoices",
		SkipLanguages: true,
	})
	require.NoError(t, err)

	src := out.String()
	assert.Contains(t, src, "package voices")
	assert.Contains(t, src, "var GoogleVoices = map[int]Voice{")
	assert.NotContains(t, src, "map[int]Language{")
}
