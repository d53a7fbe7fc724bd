package pubdb

import (
	"strings"
	"testing"
)

func TestParse_HeaderCommentsAndQuotes(t *testing.T) {
	input := strings.Join([]string{
		"# Exported 2026-08-30",
		"Authorname,Affiliation,ORCID",
		`A.~Alice,"Fermilab, Batavia, IL",0000-0002-1825-0097`,
		"# trailing comment",
		"B.~Bob,SLAC,",
	}, "\n")

	rows, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("row count = %d, want 2", len(rows))
	}
	if rows[0]["Authorname"] != "A.~Alice" {
		t.Fatalf("Authorname = %q", rows[0]["Authorname"])
	}
	if rows[0]["Affiliation"] != "Fermilab, Batavia, IL" {
		t.Fatalf("quoted affiliation = %q", rows[0]["Affiliation"])
	}
	if rows[1]["ORCID"] != "" {
		t.Fatalf("empty ORCID = %q", rows[1]["ORCID"])
	}
}

func TestParse_RowOrderPreserved(t *testing.T) {
	input := "Authorname\nC\nA\nB\n"
	rows, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	got := []string{rows[0]["Authorname"], rows[1]["Authorname"], rows[2]["Authorname"]}
	if got[0] != "C" || got[1] != "A" || got[2] != "B" {
		t.Fatalf("row order = %v, want input order", got)
	}
}

func TestParse_RaggedRows(t *testing.T) {
	input := "Authorname,Affiliation\nA.~Alice\n"
	rows, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if rows[0]["Authorname"] != "A.~Alice" {
		t.Fatalf("Authorname = %q", rows[0]["Authorname"])
	}
	if _, ok := rows[0]["Affiliation"]; ok {
		t.Fatalf("short row should not carry the missing column")
	}
}

func TestParse_LaTeXAccentInBareField(t *testing.T) {
	input := "Authorname,Affiliation\n" + `D.~Gr\"un,Fermilab` + "\n"
	rows, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if rows[0]["Authorname"] != `D.~Gr\"un` {
		t.Fatalf("Authorname = %q", rows[0]["Authorname"])
	}
}

func TestParse_Empty(t *testing.T) {
	rows, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("row count = %d, want 0", len(rows))
	}
}

func TestParseAux(t *testing.T) {
	input := "# leading authors\nSmith,Anna\nLee\n"
	names, err := ParseAux(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseAux failed: %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("name count = %d, want 2", len(names))
	}
	if names[0].Last != "Smith" || names[0].First != "Anna" {
		t.Fatalf("names[0] = %+v", names[0])
	}
	if names[1].Last != "Lee" || names[1].First != "" {
		t.Fatalf("names[1] = %+v", names[1])
	}
}

func TestParseAux_DuplicateName(t *testing.T) {
	if _, err := ParseAux(strings.NewReader("Lee\nLee\n")); err == nil {
		t.Fatalf("expected error for duplicate aux name")
	}
}
