package generate

import (
	"bytes"
	"fmt"
	"io"

	"github.com/agentstation/voicemap/internal/cmd/catalog"
	"github.com/agentstation/voicemap/internal/cmd/output"
	"github.com/agentstation/voicemap/internal/matcher"
	"github.com/agentstation/voicemap/pkg/emit"
	"github.com/agentstation/voicemap/pkg/errors"
)

// Execute loads both catalogs, reconciles them and writes the generated
// output to stdout or flags.Out. Diagnostics go to stderr. Output is buffered
// so a failed run never leaves a partial file behind.
func Execute(app AppContext, flags *Flags, stdout, stderr io.Writer) error {
	logger := app.Logger()

	if flags.Kind != KindVoices && flags.Kind != KindLanguages {
		return errors.NewValidationError("kind", flags.Kind, "must be one of: voices, languages")
	}

	src := app.Sources(flags.Inputs)

	if flags.Kind == KindLanguages {
		loaded, err := catalog.LoadLanguages(src, logger)
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := emit.New(&buf, stderr).Languages(loaded.Languages); err != nil {
			return err
		}
		if err := output.Flush(flags.Out, buf.Bytes(), stdout); err != nil {
			return err
		}
		logger.Info().
			Int("written", len(loaded.Languages)).
			Str("out", output.Dest(flags.Out)).
			Msg("Generated language literals")
		return nil
	}

	loaded, err := catalog.Load(src, logger)
	if err != nil {
		return err
	}

	reconciler, err := app.Reconciler(src.Aliases)
	if err != nil {
		return err
	}

	var (
		opts    []emit.Option
		include []string
	)
	if len(flags.Include) > 0 {
		filter, err := matcher.NewFilter(flags.Include, matcher.Options{CaseInsensitive: flags.IgnoreCase})
		if err != nil {
			return err
		}
		opts = append(opts, emit.WithFilter(filter))
		include = filter.Patterns()
	}

	var buf bytes.Buffer
	emitter := emit.New(&buf, stderr, opts...)

	pass := reconciler.Reconcile(loaded.Voices, loaded.Languages)

	var summary emit.Summary
	if flags.File {
		summary, err = emitter.File(pass, loaded.Languages, fileOptions(app.FileOptions(), flags))
	} else {
		summary, err = emitter.Voices(pass)
	}
	if err != nil {
		return err
	}

	if err := output.Flush(flags.Out, buf.Bytes(), stdout); err != nil {
		return err
	}

	logger.Info().
		Int("written", summary.Written).
		Int("filtered", summary.Filtered).
		Int("unresolved", summary.Diagnostics).
		Strs("include", include).
		Str("out", output.Dest(flags.Out)).
		Msg("Generated voice literals")

	if flags.Strict && summary.Diagnostics > 0 {
		return fmt.Errorf("%d voices unresolved: %w", summary.Diagnostics, pass.Err())
	}
	return nil
}

// fileOptions layers non-empty flag values over configured options.
func fileOptions(base emit.FileOptions, flags *Flags) emit.FileOptions {
	if flags.Package != "" {
		base.Package = flags.Package
	}
	if flags.VoicesVar != "" {
		base.VoicesVar = flags.VoicesVar
	}
	if flags.LanguagesVar != "" {
		base.LanguagesVar = flags.LanguagesVar
	}
	if flags.SkipLanguages {
		base.SkipLanguages = true
	}
	return base
}
