package app

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/agentstation/voicemap/internal/cmd/globals"
	"github.com/agentstation/voicemap/pkg/errors"
)

// fixtures returns the absolute path of the catalog fixtures, resolved before
// a test changes directory.
func fixtures(t *testing.T) string {
	t.Helper()
	dir, err := filepath.Abs(filepath.Join("..", "..", "..", "pkg", "catalogs", "testdata"))
	if err != nil {
		t.Fatalf("resolve fixtures: %v", err)
	}
	return dir
}

// TestApp_New verifies app initialization.
func TestApp_New(t *testing.T) {
	isolate(t)

	app, err := New("1.0.0", "abc123", "2024-01-01", "test")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if app.Version() != "1.0.0" {
		t.Errorf("Version() = %s, want 1.0.0", app.Version())
	}
	if app.Commit() != "abc123" {
		t.Errorf("Commit() = %s, want abc123", app.Commit())
	}
	if app.Date() != "2024-01-01" {
		t.Errorf("Date() = %s, want 2024-01-01", app.Date())
	}
	if app.BuiltBy() != "test" {
		t.Errorf("BuiltBy() = %s, want test", app.BuiltBy())
	}
	if app.Logger() == nil {
		t.Error("Logger() returned nil")
	}
	if app.Config() == nil {
		t.Error("Config() returned nil")
	}
}

// TestApp_WithOptions verifies functional options override the loaded state.
func TestApp_WithOptions(t *testing.T) {
	isolate(t)

	logger := zerolog.Nop()
	config := &Config{Package: "speech", VoicesVar: "Speakers"}

	app, err := New("dev", "", "", "", WithConfig(config), WithLogger(&logger))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if app.Logger() != &logger {
		t.Error("WithLogger() not applied")
	}

	opts := app.FileOptions()
	if opts.Package != "speech" {
		t.Errorf("Package = %s, want speech", opts.Package)
	}
	if opts.VoicesVar != "Speakers" {
		t.Errorf("VoicesVar = %s, want Speakers", opts.VoicesVar)
	}
	if opts.LanguagesVar == "" {
		t.Error("LanguagesVar lost its default")
	}
}

// TestApp_Sources verifies flags win over configuration.
func TestApp_Sources(t *testing.T) {
	logger := zerolog.Nop()
	app := &App{
		config: &Config{LanguagesFile: "langs.json", VoicesFile: "voices.json", AliasesFile: "aliases.yaml"},
		logger: &logger,
	}

	src := app.Sources(nil)
	if src.Languages != "langs.json" || src.Voices != "voices.json" || src.Aliases != "aliases.yaml" {
		t.Errorf("Sources(nil) = %+v, want configured files", src)
	}

	src = app.Sources(&globals.InputFlags{Voices: "other.json", Aliases: "extra.toml"})
	if src.Languages != "langs.json" {
		t.Errorf("Languages = %s, want langs.json", src.Languages)
	}
	if src.Voices != "other.json" {
		t.Errorf("Voices = %s, want other.json", src.Voices)
	}
	if src.Aliases != "extra.toml" {
		t.Errorf("Aliases = %s, want extra.toml", src.Aliases)
	}
}

// TestApp_Aliases verifies built-in, configured and file aliases layer in order.
func TestApp_Aliases(t *testing.T) {
	logger := zerolog.Nop()
	aliasesFile, err := filepath.Abs(filepath.Join("..", "..", "..", "pkg", "reconcile", "testdata", "aliases.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	app := &App{
		config: &Config{Aliases: map[string]string{"iw": "yi", "yue": "zh"}},
		logger: &logger,
	}

	aliases, err := app.Aliases("")
	if err != nil {
		t.Fatalf("Aliases() failed: %v", err)
	}
	if aliases["fil"] != "tl" || aliases["nb"] != "no" {
		t.Errorf("built-in aliases missing: %v", aliases)
	}
	if aliases["iw"] != "yi" || aliases["yue"] != "zh" {
		t.Errorf("configured aliases missing: %v", aliases)
	}

	aliases, err = app.Aliases(aliasesFile)
	if err != nil {
		t.Fatalf("Aliases(file) failed: %v", err)
	}
	if aliases["iw"] != "he" {
		t.Errorf("aliases[iw] = %q, want the file to override config", aliases["iw"])
	}
	if aliases["cmn"] != "zh" {
		t.Errorf("aliases[cmn] = %q, want zh", aliases["cmn"])
	}

	rec, err := app.Reconciler(aliasesFile)
	if err != nil {
		t.Fatalf("Reconciler() failed: %v", err)
	}
	if rec.Aliases()["iw"] != "he" {
		t.Error("Reconciler() did not use the effective aliases")
	}
}

// TestApp_Aliases_InvalidConfig verifies configured aliases are validated.
func TestApp_Aliases_InvalidConfig(t *testing.T) {
	logger := zerolog.Nop()
	app := &App{
		config: &Config{Aliases: map[string]string{"he": "he"}},
		logger: &logger,
	}

	_, err := app.Aliases("")
	if err == nil {
		t.Fatal("Aliases() accepted a self alias")
	}
	var configErr *errors.ConfigError
	if !errors.As(err, &configErr) {
		t.Errorf("error = %T, want *errors.ConfigError", err)
	}
}

// TestApp_Execute runs the CLI end to end against the fixture catalogs.
func TestApp_Execute(t *testing.T) {
	data := fixtures(t)
	isolate(t)

	app, err := New("1.2.3", "abc", "today", "test")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	root := app.createRootCommand()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs([]string{
		"generate", "-q",
		"--languages", filepath.Join(data, "languages.json"),
		"--voices", filepath.Join(data, "voices_rest.json"),
	})

	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d voice lines, want 4:\n%s", len(lines), stdout.String())
	}
	if !strings.HasPrefix(lines[1], `1: {LanguageID: 5, LanguageCodes: []string{"fil-PH"}`) {
		t.Errorf("fil-PH line = %s", lines[1])
	}
	if !strings.Contains(stderr.String(), "unresolved: voice=xx-YY-Standard-A") {
		t.Errorf("stderr missing diagnostic:\n%s", stderr.String())
	}
	if !app.Config().Quiet {
		t.Error("-q flag not applied to config")
	}
}

// TestApp_Execute_ConfigFlag verifies --config replaces the startup config.
func TestApp_Execute_ConfigFlag(t *testing.T) {
	data := fixtures(t)
	dir := isolate(t)

	configFile := filepath.Join(dir, "voicemap.yaml")
	writeFile(t, configFile, "languages_file: "+filepath.Join(data, "languages.json")+"\n"+
		"voices_file: "+filepath.Join(data, "voices_proto.json")+"\n")

	app, err := New("dev", "", "", "")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	root := app.createRootCommand()
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"generate", "-q", "--config", configFile})

	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if !strings.Contains(stdout.String(), `Name: "de-DE-Neural2-B"`) {
		t.Errorf("output did not use the configured catalogs:\n%s", stdout.String())
	}
}

// TestApp_Execute_MissingCatalog verifies a missing input is fatal.
func TestApp_Execute_MissingCatalog(t *testing.T) {
	dir := isolate(t)

	app, err := New("dev", "", "", "")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	root := app.createRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"generate", "-q", "--voices", filepath.Join(dir, "nope.json")})

	if err := root.ExecuteContext(context.Background()); err == nil {
		t.Fatal("generate succeeded without catalogs")
	}
}

// TestApp_VersionCommand verifies the version output.
func TestApp_VersionCommand(t *testing.T) {
	isolate(t)

	app, err := New("1.2.3", "abc", "today", "ci")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	root := app.createRootCommand()
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetArgs([]string{"version", "-v"})

	if err := root.Execute(); err != nil {
		t.Fatalf("version failed: %v", err)
	}
	out := stdout.String()
	if !strings.Contains(out, "voicemap 1.2.3") {
		t.Errorf("version output = %q", out)
	}
	if !strings.Contains(out, "commit:   abc") {
		t.Errorf("verbose version output missing commit: %q", out)
	}
}

// TestApp_ManCommand verifies the hidden man page generator.
func TestApp_ManCommand(t *testing.T) {
	isolate(t)

	app, err := New("dev", "", "", "")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	root := app.createRootCommand()
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetArgs([]string{"man", "-q"})

	if err := root.Execute(); err != nil {
		t.Fatalf("man failed: %v", err)
	}
	if !strings.Contains(stdout.String(), "VOICEMAP") {
		t.Errorf("man output missing title:\n%s", stdout.String())
	}
}
