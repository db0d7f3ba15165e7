package reconcile

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/voicemap/pkg/catalogs"
	"github.com/agentstation/voicemap/pkg/errors"
	"github.com/agentstation/voicemap/pkg/logging"
)

// Reconciler resolves voices against a language catalog using a fixed
// alias table. It holds no catalog state; both catalogs are passed to each
// call and are never modified.
type Reconciler struct {
	aliases Aliases
	logger  *zerolog.Logger
}

// Option configures a Reconciler
type Option func(*Reconciler) error

// WithAliases replaces the alias table, including the defaults.
func WithAliases(aliases Aliases) Option {
	return func(r *Reconciler) error {
		if err := aliases.Validate(); err != nil {
			return err
		}
		r.aliases = aliases.Merge()
		return nil
	}
}

// WithExtraAliases layers additional aliases over the current table.
func WithExtraAliases(aliases Aliases) Option {
	return func(r *Reconciler) error {
		if err := aliases.Validate(); err != nil {
			return err
		}
		r.aliases = r.aliases.Merge(aliases)
		return nil
	}
}

// WithLogger sets the logger used to report unresolved voices.
func WithLogger(logger *zerolog.Logger) Option {
	return func(r *Reconciler) error {
		if logger != nil {
			r.logger = logger
		}
		return nil
	}
}

// New creates a Reconciler with the default alias table.
func New(opts ...Option) (*Reconciler, error) {
	r := &Reconciler{
		aliases: DefaultAliases(),
		logger:  logging.Nop(),
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Aliases returns a copy of the alias table in use.
func (r *Reconciler) Aliases() Aliases {
	return r.aliases.Merge()
}

// Resolve resolves one primary language code with the reconciler's aliases.
func (r *Reconciler) Resolve(primaryCode string, languages []catalogs.Language) Result {
	return Resolve(primaryCode, languages, r.aliases)
}

// Reconcile resolves every voice in input order. Only each voice's primary
// code participates. The pass always completes; unresolved voices are
// logged at warn level and kept in the pass for reporting.
func (r *Reconciler) Reconcile(voices []catalogs.Voice, languages []catalogs.Language) *Pass {
	pass := &Pass{
		Results: make([]VoiceResult, 0, len(voices)),
	}

	for _, v := range voices {
		res := r.Resolve(v.PrimaryCode(), languages)
		if !res.Resolved() {
			res.Reason = errors.NewUnresolvedTagError(v.Name, res.Code, res.Subtag).Error()
			r.logger.Warn().
				Str("voice", v.Name).
				Str("code", res.Code).
				Str("subtag", res.Subtag).
				Msg("No language found for voice")
		} else if res.AliasedFrom != "" {
			r.logger.Debug().
				Str("voice", v.Name).
				Str("from", res.AliasedFrom).
				Str("to", res.Subtag).
				Msg("Applied language alias")
		}
		pass.Results = append(pass.Results, VoiceResult{Voice: v, Result: res})
	}

	stats := pass.Stats()
	r.logger.Info().
		Int("voices", stats.Voices).
		Int("languages", len(languages)).
		Int("resolved", stats.Resolved).
		Int("unresolved", stats.Unresolved).
		Int("aliased", stats.Aliased).
		Msg("Reconciliation complete")

	return pass
}
