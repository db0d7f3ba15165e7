package generate

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/voicemap/internal/cmd/globals"
)

// Kinds of generated output.
const (
	KindVoices    = "voices"
	KindLanguages = "languages"
)

// Flags holds generate command flags.
type Flags struct {
	Inputs *globals.InputFlags

	Kind          string
	Out           string
	File          bool
	Package       string
	VoicesVar     string
	LanguagesVar  string
	SkipLanguages bool
	Include       []string
	IgnoreCase    bool
	Strict        bool
}

func addFlags(cmd *cobra.Command) *Flags {
	flags := &Flags{}

	globals.AddInputFlags(cmd)

	cmd.Flags().StringVar(&flags.Kind, "kind", KindVoices,
		"what to generate: voices, languages")
	cmd.Flags().StringVarP(&flags.Out, "out", "O", "",
		"write output to this file instead of stdout")
	cmd.Flags().BoolVar(&flags.File, "file", false,
		"write a complete gofmt-formatted Go file")
	cmd.Flags().StringVar(&flags.Package, "package", "",
		"package clause of the generated file (with --file)")
	cmd.Flags().StringVar(&flags.VoicesVar, "voices-var", "",
		"name of the generated voice map (with --file)")
	cmd.Flags().StringVar(&flags.LanguagesVar, "languages-var", "",
		"name of the generated language map (with --file)")
	cmd.Flags().BoolVar(&flags.SkipLanguages, "no-languages", false,
		"omit the language map (with --file)")
	cmd.Flags().StringSliceVarP(&flags.Include, "include", "i", nil,
		"only emit voices whose name matches a glob, or a regex prefixed with re: (repeatable)")
	cmd.Flags().BoolVar(&flags.IgnoreCase, "ignore-case", false,
		"match --include patterns case-insensitively")
	cmd.Flags().BoolVar(&flags.Strict, "strict", false,
		"exit non-zero when any voice is unresolved")

	return flags
}
