package author

import (
	"errors"
	"testing"
)

func TestParseRecord_FullRow(t *testing.T) {
	row := map[string]string{
		"Authorname":   `D.~Gr\"un`,
		"Firstname":    "Daniel",
		"Lastname":     `Gr\"un`,
		"Affiliation":  "Fermilab, Batavia, IL; University of Chicago, Chicago, IL",
		"ORCID":        "0000-0002-1825-0097",
		"FirstTier":    "2",
		"Contribution": "Led the analysis.",
	}

	r, err := ParseRecord(row, 0)
	if err != nil {
		t.Fatalf("ParseRecord failed: %v", err)
	}

	if r.Name != `D.~Gr\"un` {
		t.Fatalf("Name = %q", r.Name)
	}
	if len(r.Affiliations) != 2 {
		t.Fatalf("affiliation count = %d, want 2", len(r.Affiliations))
	}
	if r.Affiliations[0] != "Fermilab, Batavia, IL" {
		t.Fatalf("Affiliations[0] = %q, comma split should not apply to the singular column", r.Affiliations[0])
	}
	if r.ORCID != "0000-0002-1825-0097" {
		t.Fatalf("ORCID = %q", r.ORCID)
	}
	if !r.HasTier || r.FirstTier != 2 {
		t.Fatalf("FirstTier = %d (HasTier=%v), want 2", r.FirstTier, r.HasTier)
	}
	if r.Contribution != "Led the analysis." {
		t.Fatalf("Contribution = %q", r.Contribution)
	}
}

func TestParseRecord_MissingName(t *testing.T) {
	_, err := ParseRecord(map[string]string{"Affiliation": "Somewhere"}, 3)
	if err == nil {
		t.Fatalf("expected error for missing name column")
	}
	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("error type = %T, want *MissingFieldError", err)
	}
	if missing.Row != 3 {
		t.Fatalf("Row = %d, want 3", missing.Row)
	}
}

func TestParseRecord_InvalidOrcid(t *testing.T) {
	row := map[string]string{
		"Authorname": "A.~Author",
		"ORCID":      "not-an-orcid",
	}
	_, err := ParseRecord(row, 0)
	var invalid *InvalidOrcidError
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want *InvalidOrcidError", err)
	}
	if invalid.Name != "A.~Author" {
		t.Fatalf("Name = %q", invalid.Name)
	}
}

func TestParseRecord_OrcidURLNormalized(t *testing.T) {
	row := map[string]string{
		"Authorname": "A.~Author",
		"ORCID":      "https://orcid.org/0000-0002-1825-009X",
	}
	r, err := ParseRecord(row, 0)
	if err != nil {
		t.Fatalf("ParseRecord failed: %v", err)
	}
	if r.ORCID != "0000-0002-1825-009X" {
		t.Fatalf("ORCID = %q, want bare identifier", r.ORCID)
	}
}

func TestParseRecord_NonPositiveFirstTier(t *testing.T) {
	for _, bad := range []string{"0", "-1"} {
		row := map[string]string{"Authorname": "A.~Author", "FirstTier": bad}
		if _, err := ParseRecord(row, 0); err == nil {
			t.Fatalf("FirstTier=%q: expected error", bad)
		}
	}
}

func TestParseRecord_NonNumericFirstTierIgnored(t *testing.T) {
	// Real exports carry stray text in the FirstTier column; the row still
	// parses and the author is simply not first-tier.
	for _, junk := range []string{"builder", "two", "yes"} {
		row := map[string]string{"Authorname": "A.~Author", "FirstTier": junk}
		r, err := ParseRecord(row, 0)
		if err != nil {
			t.Fatalf("FirstTier=%q: ParseRecord failed: %v", junk, err)
		}
		if r.HasTier {
			t.Fatalf("FirstTier=%q: author should not be first-tier", junk)
		}
	}
}

func TestParseRecord_PluralAffiliationsSplitOnComma(t *testing.T) {
	row := map[string]string{
		"Authorname":   "A.~Author",
		"Affiliations": "Fermilab,University of Chicago; SLAC",
	}
	r, err := ParseRecord(row, 0)
	if err != nil {
		t.Fatalf("ParseRecord failed: %v", err)
	}
	want := []string{"Fermilab", "University of Chicago", "SLAC"}
	if len(r.Affiliations) != len(want) {
		t.Fatalf("affiliation count = %d, want %d", len(r.Affiliations), len(want))
	}
	for i := range want {
		if r.Affiliations[i] != want[i] {
			t.Fatalf("Affiliations[%d] = %q, want %q", i, r.Affiliations[i], want[i])
		}
	}
}

func TestMerge_RepeatedAuthorAccumulatesAffiliations(t *testing.T) {
	records := []*Record{
		{Name: "A.~Author", Affiliations: []string{"Fermilab"}},
		{Name: "B.~Builder", Affiliations: []string{"SLAC"}},
		{Name: "A.~Author", Affiliations: []string{"University of Chicago"}, ORCID: "0000-0002-1825-0097"},
	}

	merged := Merge(records)
	if len(merged) != 2 {
		t.Fatalf("merged count = %d, want 2", len(merged))
	}
	if merged[0].Name != "A.~Author" || merged[1].Name != "B.~Builder" {
		t.Fatalf("first-seen order not preserved: %q, %q", merged[0].Name, merged[1].Name)
	}
	if len(merged[0].Affiliations) != 2 {
		t.Fatalf("affiliation count = %d, want 2", len(merged[0].Affiliations))
	}
	if merged[0].ORCID != "0000-0002-1825-0097" {
		t.Fatalf("ORCID not folded in: %q", merged[0].ORCID)
	}
}

func TestMerge_DoesNotMutateInput(t *testing.T) {
	records := []*Record{
		{Name: "A.~Author", Affiliations: []string{"Fermilab"}},
		{Name: "A.~Author", Affiliations: []string{"SLAC"}},
	}
	Merge(records)
	if len(records[0].Affiliations) != 1 {
		t.Fatalf("input record mutated: %v", records[0].Affiliations)
	}
}
