package author

import "sort"

// AffiliationIndex maps distinct affiliation label strings to 1-based,
// contiguous indices. Built once, read-only afterward.
type AffiliationIndex struct {
	labels []string
	index  map[string]int
}

// BuildIndex assigns indices to every distinct affiliation label across
// records. By default labels are numbered in first-seen order, traversing
// records in the order given; with sorted set, the distinct labels are
// sorted lexicographically before numbering. Identical label strings
// (byte-for-byte) always collapse to one index.
func BuildIndex(records []*Record, sorted bool) *AffiliationIndex {
	x := &AffiliationIndex{index: make(map[string]int)}
	for _, r := range records {
		for _, label := range r.Affiliations {
			if _, ok := x.index[label]; ok {
				continue
			}
			x.labels = append(x.labels, label)
			x.index[label] = len(x.labels)
		}
	}
	if sorted {
		sort.Strings(x.labels)
		for i, label := range x.labels {
			x.index[label] = i + 1
		}
	}
	return x
}

// Lookup returns the 1-based index for a label.
func (x *AffiliationIndex) Lookup(label string) (int, bool) {
	i, ok := x.index[label]
	return i, ok
}

// Label returns the label for a 1-based index, or "" when out of range.
func (x *AffiliationIndex) Label(i int) string {
	if i < 1 || i > len(x.labels) {
		return ""
	}
	return x.labels[i-1]
}

// Labels returns all labels in index order. The slice is a copy.
func (x *AffiliationIndex) Labels() []string {
	return append([]string(nil), x.labels...)
}

// Len returns the number of distinct labels.
func (x *AffiliationIndex) Len() int {
	return len(x.labels)
}

// Indices returns the indices of a record's affiliations, in the record's
// own affiliation order.
func (x *AffiliationIndex) Indices(r *Record) []int {
	indices := make([]int, 0, len(r.Affiliations))
	for _, label := range r.Affiliations {
		if i, ok := x.index[label]; ok {
			indices = append(indices, i)
		}
	}
	return indices
}
