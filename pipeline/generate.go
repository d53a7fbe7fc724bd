// Package pipeline wires record parsing, affiliation indexing, ordering
// and rendering into the single generate operation.
package pipeline

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/skysurvey-tools/authlist/author"
	"github.com/skysurvey-tools/authlist/order"
	"github.com/skysurvey-tools/authlist/pubdb"
	"github.com/skysurvey-tools/authlist/target"
)

// Options configures one generation run.
type Options struct {
	// Policy selects the ordering policy.
	Policy order.Policy

	// Target is the render target name or alias.
	Target string

	// ORCID enables ORCID markup for authors that have an identifier.
	ORCID bool

	// NoCollab suppresses the collaboration name in the rendered text.
	NoCollab bool

	// CollaborationFirst prepends the collaboration pseudo-author to the
	// ordered sequence.
	CollaborationFirst bool

	// SortedAffiliations numbers affiliations in lexicographic instead of
	// first-seen order.
	SortedAffiliations bool

	// SortBuilders and SortNonBuilders alphabetize the builder tiers.
	SortBuilders    bool
	SortNonBuilders bool

	// Aux pulls explicitly named authors to the front before sorting.
	Aux []order.AuxName

	// Contributions renders the author contribution list to
	// Extras["contributions"].
	Contributions bool

	// Collaboration, CollabID, PubRef, ContactEmail, Title, Abstract,
	// StartIndex, Document and Date pass through to rendering.
	Collaboration string
	CollabID      string
	PubRef        string
	ContactEmail  string
	Title         string
	Abstract      string
	StartIndex    int
	Document      bool
	Date          string
}

// Output is the complete result of one run. Extras holds secondary
// documents (the jcap.appendix affiliation section, contribution lists)
// keyed by name.
type Output struct {
	Main   string
	Extras map[string]string
}

// ExtraContributions is the Extras key for the contribution list.
const ExtraContributions = "contributions"

// Generate turns table rows into the formatted author-list text for a
// target. It is deterministic and side-effect-free: everything is rendered
// into memory, and any error aborts with no output at all.
func Generate(rows []pubdb.Row, opts Options) (*Output, error) {
	renderer, err := target.GetRenderer(opts.Target)
	if err != nil {
		return nil, err
	}

	records := make([]*author.Record, 0, len(rows))
	for i, row := range rows {
		r, err := author.ParseRecord(map[string]string(row), i)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	records = author.Merge(records)

	orderOpts := order.Options{
		Policy:          opts.Policy,
		SortBuilders:    opts.SortBuilders,
		SortNonBuilders: opts.SortNonBuilders,
		Aux:             opts.Aux,
	}
	if opts.CollaborationFirst {
		orderOpts.Collaboration = opts.Collaboration
	}
	list, err := order.Order(records, orderOpts)
	if err != nil {
		return nil, err
	}

	idx := author.BuildIndex(target.Authors(list), opts.SortedAffiliations)

	renderOpts := target.NewRenderOptions()
	renderOpts.ORCID = opts.ORCID
	renderOpts.SuppressCollaboration = opts.NoCollab
	renderOpts.Collaboration = opts.Collaboration
	renderOpts.CollabID = opts.CollabID
	renderOpts.PubRef = opts.PubRef
	renderOpts.ContactEmail = opts.ContactEmail
	renderOpts.Title = opts.Title
	renderOpts.Abstract = opts.Abstract
	renderOpts.Document = opts.Document
	renderOpts.Date = opts.Date
	if opts.StartIndex > 0 {
		renderOpts.StartIndex = opts.StartIndex
	}

	extras := make(map[string]*bytes.Buffer)
	renderOpts.ExtraWriters = map[string]io.Writer{}
	for _, name := range []string{"affiliations"} {
		buf := &bytes.Buffer{}
		extras[name] = buf
		renderOpts.ExtraWriters[name] = buf
	}

	var main bytes.Buffer
	main.WriteString(header(renderer, renderOpts))
	if err := renderer.Render(&main, list, idx, renderOpts); err != nil {
		return nil, err
	}

	out := &Output{Main: main.String(), Extras: make(map[string]string)}
	for name, buf := range extras {
		if buf.Len() > 0 {
			out.Extras[name] = headerComment() + buf.String()
		}
	}

	if opts.Contributions {
		text, err := contributions(target.Authors(list))
		if err != nil {
			return nil, err
		}
		out.Extras[ExtraContributions] = text
	}

	return out, nil
}

// header builds the leading comment block for LaTeX targets. Plain-text
// and XML targets get no preface.
func header(t target.Target, opts *target.RenderOptions) string {
	tex := false
	for _, ext := range t.Extensions() {
		if ext == "tex" {
			tex = true
		}
	}
	if !tex {
		return ""
	}
	var b strings.Builder
	b.WriteString(headerComment())
	if opts.ORCID {
		b.WriteString("% Orcid numbers may need \\usepackage{orcidlink}.\n")
	}
	b.WriteString("\n")
	return b.String()
}

func headerComment() string {
	return "% Author list generated by authlist\n"
}

// contributions renders the "Author: contribution" list. Every author is
// expected to carry a Contribution value; blanks are only warnings, a
// table without the column at all is an error.
func contributions(authors []*author.Record) (string, error) {
	any := false
	for _, a := range authors {
		if a.Contribution != "" {
			any = true
			break
		}
	}
	if !any {
		return "", fmt.Errorf("no Contribution values found in input table")
	}

	var b strings.Builder
	b.WriteString("Author contributions are listed below. \\\\\n")
	for _, a := range authors {
		if a.Contribution == "" {
			slog.Warn("blank contribution", "author", a.Name)
		}
		fmt.Fprintf(&b, "%s: %s \\\\\n", a.Name, a.Contribution)
	}
	return b.String(), nil
}
