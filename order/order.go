// Package order implements the author ordering policies.
package order

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/skysurvey-tools/authlist/author"
)

// Policy selects how the author sequence is determined.
type Policy string

const (
	// PolicyNone preserves the input row order.
	PolicyNone Policy = "none"
	// PolicyAlphabetical sorts by surname, case-insensitive.
	PolicyAlphabetical Policy = "alphabetical"
	// PolicyFirstTier puts explicitly ranked authors first, in rank order,
	// followed by the rest alphabetically.
	PolicyFirstTier Policy = "first-tier"
)

// ParsePolicy validates a policy name.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyNone, PolicyAlphabetical, PolicyFirstTier:
		return Policy(s), nil
	case "":
		return PolicyNone, nil
	}
	return "", fmt.Errorf("unknown ordering policy %q (want none, alphabetical or first-tier)", s)
}

// AuxName is one entry of an auxiliary ordering file: a surname with an
// optional first name to disambiguate.
type AuxName struct {
	Last  string
	First string
}

// Options configures the ordering engine.
type Options struct {
	Policy Policy

	// SortBuilders and SortNonBuilders alphabetize the builder and
	// non-builder partitions; builders always follow non-builders when
	// either is set.
	SortBuilders    bool
	SortNonBuilders bool

	// Aux pulls explicitly named authors to the front, in the given order,
	// before the policy applies to the remainder.
	Aux []AuxName

	// Collaboration, when non-empty, prepends a synthetic pseudo-author
	// exempt from all sorting. Suppressing it is a rendering concern.
	Collaboration string
}

// List is the ordered author sequence. Position in Authors is the 1-based
// display rank minus one.
type List struct {
	Authors []*author.Record
}

// Order produces the final author sequence for a policy. The input slice
// is never modified. The result is deterministic: stable sorts throughout,
// ties broken by full name and then input position.
func Order(records []*author.Record, opts Options) (*List, error) {
	seq := append([]*author.Record(nil), records...)

	if opts.SortBuilders || opts.SortNonBuilders {
		seq = sortBuilderTiers(seq, opts.SortBuilders, opts.SortNonBuilders)
	}

	if len(opts.Aux) > 0 {
		var err error
		seq, err = applyAux(seq, opts.Aux)
		if err != nil {
			return nil, err
		}
	}

	switch opts.Policy {
	case PolicyAlphabetical:
		sortAlphabetical(seq)
	case PolicyFirstTier:
		ranked, unranked, err := splitRanked(seq)
		if err != nil {
			return nil, err
		}
		sortAlphabetical(unranked)
		seq = append(ranked, unranked...)
	}

	if opts.Collaboration != "" {
		seq = append([]*author.Record{author.CollaborationRecord(opts.Collaboration)}, seq...)
	}

	return &List{Authors: seq}, nil
}

func sortAlphabetical(seq []*author.Record) {
	sort.SliceStable(seq, func(i, j int) bool {
		si, sj := author.SortKey(seq[i].Surname()), author.SortKey(seq[j].Surname())
		if si != sj {
			return si < sj
		}
		return author.SortKey(seq[i].Name) < author.SortKey(seq[j].Name)
	})
}

// splitRanked partitions into ranked authors sorted by ascending rank and
// the unranked remainder in input order. Two authors sharing a rank is a
// hard error.
func splitRanked(seq []*author.Record) (ranked, unranked []*author.Record, err error) {
	byRank := make(map[int]*author.Record)
	for _, r := range seq {
		if !r.HasTier {
			unranked = append(unranked, r)
			continue
		}
		if prev, ok := byRank[r.FirstTier]; ok {
			return nil, nil, &DuplicateRankError{Rank: r.FirstTier, Names: [2]string{prev.Name, r.Name}}
		}
		byRank[r.FirstTier] = r
		ranked = append(ranked, r)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].FirstTier < ranked[j].FirstTier
	})
	return ranked, unranked, nil
}

// sortBuilderTiers emits non-builders first, then builders, alphabetizing
// whichever partitions were requested.
func sortBuilderTiers(seq []*author.Record, builders, nonBuilders bool) []*author.Record {
	var b, nb []*author.Record
	for _, r := range seq {
		if r.Builder {
			b = append(b, r)
		} else {
			nb = append(nb, r)
		}
	}
	if nonBuilders {
		sortAlphabetical(nb)
	}
	if builders {
		sortAlphabetical(b)
	}
	return append(nb, b...)
}

// applyAux pulls authors named in the auxiliary list to the front, in list
// order; everyone else keeps their relative order after them. A name that
// matches nothing is only a warning; a surname matching several distinct
// authors without a first name to disambiguate is an error.
func applyAux(seq []*author.Record, aux []AuxName) ([]*author.Record, error) {
	remaining := append([]*author.Record(nil), seq...)
	var front []*author.Record

	for _, a := range aux {
		var matched []*author.Record
		var rest []*author.Record
		for _, r := range remaining {
			if author.SortKey(r.Surname()) == author.SortKey(a.Last) &&
				(a.First == "" || author.SortKey(r.Firstname) == author.SortKey(a.First)) {
				matched = append(matched, r)
			} else {
				rest = append(rest, r)
			}
		}
		if len(matched) == 0 {
			slog.Warn("auxiliary name not found", "lastname", a.Last, "firstname", a.First)
			continue
		}
		if a.First == "" && !sameFirstname(matched) {
			return nil, fmt.Errorf("ambiguous auxiliary name %q: matches multiple authors", a.Last)
		}
		front = append(front, matched...)
		remaining = rest
	}

	return append(front, remaining...), nil
}

func sameFirstname(records []*author.Record) bool {
	for _, r := range records[1:] {
		if r.Firstname != records[0].Firstname {
			return false
		}
	}
	return true
}
