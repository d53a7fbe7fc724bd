package profile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_EmbeddedProfile(t *testing.T) {
	p := Default()
	if p.Name != "default" {
		t.Fatalf("Name = %q, want default", p.Name)
	}
	if p.Collaboration == "" {
		t.Fatalf("default profile has no collaboration name")
	}
	if p.Journal == "" {
		t.Fatalf("default profile has no journal")
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
name: desi-dr2
collaboration: DESI Collaboration
collab_id: c1
journal: jcap
policy: alphabetical
orcid: true
sorted_affiliations: true
start_index: 5
`)
	p, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if p.Name != "desi-dr2" {
		t.Fatalf("Name = %q", p.Name)
	}
	if p.Policy != "alphabetical" {
		t.Fatalf("Policy = %q", p.Policy)
	}
	if !p.ORCID || !p.SortedAffiliations {
		t.Fatalf("boolean flags not parsed: orcid=%v sorted=%v", p.ORCID, p.SortedAffiliations)
	}
	if p.StartIndex != 5 {
		t.Fatalf("StartIndex = %d, want 5", p.StartIndex)
	}
}

func TestParse_BadYAML(t *testing.T) {
	if _, err := Parse([]byte("name: [unterminated")); err == nil {
		t.Fatalf("expected error for malformed YAML")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "survey.yaml")
	if err := os.WriteFile(path, []byte("name: survey\njournal: mnras\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if p.Journal != "mnras" {
		t.Fatalf("Journal = %q, want mnras", p.Journal)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestList_IncludesDefault(t *testing.T) {
	names := List()
	for _, n := range names {
		if n == "default" {
			return
		}
	}
	t.Fatalf("List() = %v, default profile missing", names)
}
