// Package report renders a reconciliation pass as a Markdown coverage report.
package report

import (
	"fmt"
	"io"
	"strconv"

	md "github.com/nao1215/markdown"

	"github.com/agentstation/voicemap/pkg/catalogs"
	"github.com/agentstation/voicemap/pkg/errors"
	"github.com/agentstation/voicemap/pkg/reconcile"
)

// DefaultTitle is the report heading when none is configured.
const DefaultTitle = "Voice Catalog Coverage"

// Options controls report content.
type Options struct {
	Title string

	// CoveredOnly lists only languages that own at least one voice.
	CoveredOnly bool

	// LanguagesSource and VoicesSource name the catalogs in the summary.
	LanguagesSource string
	VoicesSource    string
}

// Generator writes Markdown reports.
type Generator struct {
	opts Options
}

// New creates a Generator.
func New(opts Options) *Generator {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	return &Generator{opts: opts}
}

// Write renders the report for pass to w. The output depends only on its
// inputs, so two runs over the same catalogs produce identical reports.
func (g *Generator) Write(w io.Writer, pass *reconcile.Pass, languages []catalogs.Language) error {
	doc := md.NewMarkdown(w)

	doc.H1(g.opts.Title).LF()
	g.summary(doc, pass, languages)
	g.coverage(doc, pass, languages)
	g.unresolved(doc, pass)
	g.aliases(doc, pass)

	if err := doc.Build(); err != nil {
		return errors.WrapIO("write", "report", err)
	}
	return nil
}

func (g *Generator) summary(doc *md.Markdown, pass *reconcile.Pass, languages []catalogs.Language) {
	stats := pass.Stats()

	items := []string{}
	if g.opts.LanguagesSource != "" {
		items = append(items, "Language catalog: "+md.Code(g.opts.LanguagesSource))
	}
	if g.opts.VoicesSource != "" {
		items = append(items, "Voice catalog: "+md.Code(g.opts.VoicesSource))
	}
	items = append(items,
		fmt.Sprintf("Languages: %d", len(languages)),
		fmt.Sprintf("Voices: %d", stats.Voices),
		fmt.Sprintf("Resolved: %d (%d through an alias)", stats.Resolved, stats.Aliased),
		fmt.Sprintf("Unresolved: %d", stats.Unresolved),
	)

	doc.H2("Summary").LF()
	doc.BulletList(items...).LF()
}

func (g *Generator) coverage(doc *md.Markdown, pass *reconcile.Pass, languages []catalogs.Language) {
	rows := [][]string{}
	for _, c := range pass.Coverage(languages) {
		if g.opts.CoveredOnly && c.Voices == 0 {
			continue
		}
		rows = append(rows, []string{
			strconv.Itoa(c.Language.Position),
			md.Code(c.Language.Tag),
			c.Language.Name,
			strconv.Itoa(c.Voices),
		})
	}

	doc.H2("Languages").LF()
	if len(rows) == 0 {
		doc.PlainText("No language owns a voice.").LF()
		return
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Tag", "Name", "Voices"},
		Rows:   rows,
	}).LF()
}

func (g *Generator) unresolved(doc *md.Markdown, pass *reconcile.Pass) {
	doc.H2("Unresolved Voices").LF()

	unresolved := pass.Unresolved()
	if len(unresolved) == 0 {
		doc.PlainText("Every voice resolved to a language.").LF()
		return
	}

	rows := make([][]string, 0, len(unresolved))
	for _, vr := range unresolved {
		rows = append(rows, []string{
			strconv.Itoa(vr.Voice.Position),
			vr.Voice.Name,
			md.Code(vr.Result.Code),
			md.Code(vr.Result.Subtag),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Position", "Voice", "Code", "Subtag"},
		Rows:   rows,
	}).LF()
}

func (g *Generator) aliases(doc *md.Markdown, pass *reconcile.Pass) {
	uses := pass.AliasUses()
	if len(uses) == 0 {
		return
	}

	rows := make([][]string, 0, len(uses))
	for _, u := range uses {
		rows = append(rows, []string{md.Code(u.From), md.Code(u.To), strconv.Itoa(u.Voices)})
	}

	doc.H2("Aliases Applied").LF()
	doc.Table(md.TableSet{
		Header: []string{"From", "To", "Voices"},
		Rows:   rows,
	}).LF()
}
