// Package author provides the in-memory author record model shared by the
// ordering and rendering packages.
package author

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Record is a single author parsed from one input row. Records are built
// once at load time and never mutated afterward.
type Record struct {
	// Name is the display name as it should appear in the author list.
	// May contain LaTeX markup (accents, non-breaking spaces).
	Name string

	// Firstname and Lastname are optional sort-key columns. When Lastname
	// is empty the surname is derived from Name.
	Firstname string
	Lastname  string

	// Affiliations in the order given by the source row.
	Affiliations []string

	// ORCID is the bare identifier (no URL prefix), or empty.
	ORCID string

	// FirstTier is the explicit rank for first-tier ordering, valid only
	// when HasTier is set.
	FirstTier int
	HasTier   bool

	// Builder marks instrument-builder authors (AuthorType or
	// JoinedAsBuilder columns).
	Builder bool

	// Contribution is the free-text author contribution, if provided.
	Contribution string

	// Collaboration marks the synthetic pseudo-author representing the
	// collaboration as a whole.
	Collaboration bool
}

// CollaborationRecord returns the synthetic pseudo-author for a
// collaboration name.
func CollaborationRecord(name string) *Record {
	return &Record{Name: name, Collaboration: true}
}

// Column names recognized in input rows. The PubDB export uses the
// capitalized forms; lowercase variants are accepted for hand-made tables.
var (
	nameColumns        = []string{"Authorname", "Name", "name"}
	firstnameColumns   = []string{"Firstname", "firstname"}
	lastnameColumns    = []string{"Lastname", "lastname"}
	affiliationColumns = []string{"Affiliation", "affiliation"}
	// Plural affiliation columns additionally treat commas as delimiters;
	// the singular PubDB column holds one full postal address per row.
	affiliationsColumns = []string{"Affiliations", "affiliations"}
	orcidColumns        = []string{"ORCID", "Orcid", "orcid"}
	tierColumns         = []string{"FirstTier", "firsttier", "first_tier"}
	contributionColumns = []string{"Contribution", "contribution"}
)

func field(row map[string]string, columns []string) (string, bool) {
	for _, c := range columns {
		if v, ok := row[c]; ok {
			return strings.TrimSpace(v), true
		}
	}
	return "", false
}

// ParseRecord builds a Record from a row of column name to string value.
// pos is the zero-based row position, used only for error messages.
func ParseRecord(row map[string]string, pos int) (*Record, error) {
	name, ok := field(row, nameColumns)
	if !ok || name == "" {
		return nil, &MissingFieldError{Field: "Authorname", Row: pos}
	}

	r := &Record{Name: name}
	r.Firstname, _ = field(row, firstnameColumns)
	r.Lastname, _ = field(row, lastnameColumns)
	r.Contribution, _ = field(row, contributionColumns)

	if v, ok := field(row, affiliationColumns); ok {
		r.Affiliations = append(r.Affiliations, SplitAffiliations(v, false)...)
	}
	if v, ok := field(row, affiliationsColumns); ok {
		r.Affiliations = append(r.Affiliations, SplitAffiliations(v, true)...)
	}

	if v, ok := field(row, orcidColumns); ok && v != "" {
		orcid := NormalizeORCID(v)
		if !ValidORCID(orcid) {
			return nil, &InvalidOrcidError{Name: name, Value: v}
		}
		r.ORCID = orcid
	}

	if v, ok := field(row, tierColumns); ok && v != "" {
		rank, err := strconv.Atoi(v)
		switch {
		case err != nil:
			// PubDB exports carry stray text in this column; the author is
			// simply not first-tier.
			slog.Warn("ignoring non-numeric FirstTier value", "value", v, "author", name)
		case rank < 1:
			return nil, fmt.Errorf("row %d: invalid FirstTier rank %q for %s", pos, v, name)
		default:
			r.FirstTier = rank
			r.HasTier = true
		}
	}

	if v, ok := row["AuthorType"]; ok {
		r.Builder = strings.EqualFold(strings.TrimSpace(v), "builder")
	} else if v, ok := row["JoinedAsBuilder"]; ok {
		r.Builder = strings.EqualFold(strings.TrimSpace(v), "true")
	}

	return r, nil
}

// SplitAffiliations splits a delimited affiliation cell. Semicolons always
// delimit; commas only when comma is set, since postal addresses contain
// commas of their own. Entries are trimmed and empties dropped.
func SplitAffiliations(value string, comma bool) []string {
	parts := strings.Split(value, ";")
	if comma {
		var expanded []string
		for _, p := range parts {
			expanded = append(expanded, strings.Split(p, ",")...)
		}
		parts = expanded
	}
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

// Merge folds rows that repeat an author (the PubDB export emits one row
// per author-affiliation pair) into single records, preserving first-seen
// order. Affiliations accumulate in row order; all other fields keep the
// first non-empty value.
func Merge(records []*Record) []*Record {
	index := make(map[string]*Record, len(records))
	var merged []*Record
	for _, r := range records {
		prev, ok := index[r.Name]
		if !ok {
			c := *r
			c.Affiliations = append([]string(nil), r.Affiliations...)
			index[r.Name] = &c
			merged = append(merged, &c)
			continue
		}
		prev.Affiliations = append(prev.Affiliations, r.Affiliations...)
		if prev.ORCID == "" {
			prev.ORCID = r.ORCID
		}
		if prev.Contribution == "" {
			prev.Contribution = r.Contribution
		}
		if !prev.HasTier && r.HasTier {
			prev.FirstTier = r.FirstTier
			prev.HasTier = true
		}
	}
	return merged
}
