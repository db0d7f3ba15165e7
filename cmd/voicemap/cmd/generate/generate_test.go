package generate

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/voicemap/internal/appcontext"
	"github.com/agentstation/voicemap/internal/cmd/globals"
	"github.com/agentstation/voicemap/pkg/errors"
	"github.com/agentstation/voicemap/pkg/logging"
)

var fixtures = filepath.Join("..", "..", "..", "..", "pkg", "catalogs", "testdata")

func testFlags() *Flags {
	return &Flags{
		Kind: KindVoices,
		Inputs: &globals.InputFlags{
			Languages: filepath.Join(fixtures, "languages.json"),
			Voices:    filepath.Join(fixtures, "voices_rest.json"),
		},
	}
}

func TestExecuteVoiceLines(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, Execute(&appcontext.Mock{}, testFlags(), &stdout, &stderr))

	assert.Equal(t, `0: {LanguageID: 3, LanguageCodes: []string{"es-ES"}, SsmlGender: "FEMALE", Name: "es-ES-Standard-A", NaturalSampleRateHertz: 24000},
1: {LanguageID: 5, LanguageCodes: []string{"fil-PH"}, SsmlGender: "MALE", Name: "fil-PH-Wavenet-B", NaturalSampleRateHertz: 24000},
2: {LanguageID: 4, LanguageCodes: []string{"nb-NO"}, SsmlGender: "FEMALE", Name: "nb-NO-Standard-C", NaturalSampleRateHertz: 22050},
4: {LanguageID: 2, LanguageCodes: []string{"en-US", "en-GB"}, SsmlGender: "FEMALE", Name: "en-US-Studio-O", NaturalSampleRateHertz: 24000},
`, stdout.String())
	assert.Equal(t, "unresolved: voice=xx-YY-Standard-A code=xx-YY subtag=xx\n", stderr.String())
}

func TestExecuteStrict(t *testing.T) {
	flags := testFlags()
	flags.Strict = true

	var stdout, stderr bytes.Buffer
	err := Execute(&appcontext.Mock{}, flags, &stdout, &stderr)
	require.Error(t, err)
	assert.True(t, errors.IsUnresolvedTag(err))
	assert.Contains(t, err.Error(), "1 voices unresolved")
	assert.NotEmpty(t, stdout.String(), "output is written before the strict failure")
}

func TestExecuteInclude(t *testing.T) {
	flags := testFlags()
	flags.Include = []string{"re:-Studio-", "es-*"}

	var stdout bytes.Buffer
	require.NoError(t, Execute(&appcontext.Mock{}, flags, &stdout, nil))

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "0: "))
	assert.True(t, strings.HasPrefix(lines[1], "4: "))
}

func TestExecuteIncludeLogsPatterns(t *testing.T) {
	tl := logging.NewTestLogger(t)
	app := &appcontext.Mock{LoggerFunc: func() *zerolog.Logger { return tl.Logger }}

	flags := testFlags()
	flags.Include = []string{"re:-Studio-", "es-*"}
	require.NoError(t, Execute(app, flags, &bytes.Buffer{}, &bytes.Buffer{}))

	assert.Contains(t, tl.Messages(), "Generated voice literals")
	assert.True(t, tl.Contains(`"include":["regex:-Studio-","glob:es-*"]`), tl.Output())
}

func TestExecuteInvalidInclude(t *testing.T) {
	flags := testFlags()
	flags.Include = []string{"re:("}

	err := Execute(&appcontext.Mock{}, flags, &bytes.Buffer{}, nil)
	assert.True(t, errors.IsValidationError(err))
}

func TestExecuteLanguages(t *testing.T) {
	flags := testFlags()
	flags.Kind = KindLanguages

	var stdout bytes.Buffer
	require.NoError(t, Execute(&appcontext.Mock{}, flags, &stdout, nil))
	assert.True(t, strings.HasPrefix(stdout.String(), `0: {Name: "Afrikaans", Tag: "af"},`))
	assert.Contains(t, stdout.String(), `5: {Name: "Filipino", Tag: "tl"},`)
}

func TestExecuteLanguagesSkipsVoiceCatalog(t *testing.T) {
	tl := logging.NewTestLogger(t)
	app := &appcontext.Mock{LoggerFunc: func() *zerolog.Logger { return tl.Logger }}

	flags := testFlags()
	flags.Kind = KindLanguages
	flags.Inputs.Voices = filepath.Join(t.TempDir(), "missing.json")

	var stdout bytes.Buffer
	require.NoError(t, Execute(app, flags, &stdout, nil))
	assert.Contains(t, stdout.String(), `5: {Name: "Filipino", Tag: "tl"},`)
	assert.False(t, tl.Contains("Loaded voice catalog"))
	assert.Contains(t, tl.Messages(), "Generated language literals")
}

func TestExecuteFileToDisk(t *testing.T) {
	out := filepath.Join(t.TempDir(), "models", "voices_gen.go")

	flags := testFlags()
	flags.File = true
	flags.Out = out
	flags.Package = "voices"
	flags.SkipLanguages = true

	var stdout bytes.Buffer
	require.NoError(t, Execute(&appcontext.Mock{}, flags, &stdout, nil))
	assert.Empty(t, stdout.String())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	src := string(data)
	assert.Contains(t, src, "package voices")
	assert.Contains(t, src, "var Voices = map[int]Voice{")
	assert.NotContains(t, src, "map[int]Language{")
}

func TestExecuteFailsBeforeWriting(t *testing.T) {
	out := filepath.Join(t.TempDir(), "voices_gen.go")

	flags := testFlags()
	flags.Out = out
	flags.Inputs.Voices = filepath.Join(t.TempDir(), "missing.json")

	require.Error(t, Execute(&appcontext.Mock{}, flags, &bytes.Buffer{}, nil))
	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

func TestExecuteInvalidKind(t *testing.T) {
	flags := testFlags()
	flags.Kind = "providers"
	assert.True(t, errors.IsValidationError(Execute(&appcontext.Mock{}, flags, &bytes.Buffer{}, nil)))
}

func TestCommandFlags(t *testing.T) {
	cmd := NewCommand(&appcontext.Mock{})
	for _, name := range []string{"languages", "voices", "aliases", "out", "file", "package", "include", "strict", "kind"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}
