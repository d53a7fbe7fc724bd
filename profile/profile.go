// Package profile provides YAML run profiles: per-collaboration defaults
// for the generator (collaboration name, journal, ordering policy, flags).
package profile

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed profiles/*.yaml
var embeddedProfiles embed.FS

// Profile holds per-collaboration generation defaults. Zero values mean
// "not set"; command-line flags override whatever a profile provides.
type Profile struct {
	// Name is the profile identifier.
	Name string `yaml:"name"`

	// Description provides human-readable documentation.
	Description string `yaml:"description,omitempty"`

	// Collaboration is the collaboration display name.
	Collaboration string `yaml:"collaboration,omitempty"`

	// CollabID is the collaboration id for INSPIRE author.xml.
	CollabID string `yaml:"collab_id,omitempty"`

	// ContactEmail is the contact address for targets that emit one.
	ContactEmail string `yaml:"contact_email,omitempty"`

	// Journal is the default render target name.
	Journal string `yaml:"journal,omitempty"`

	// Policy is the default ordering policy.
	Policy string `yaml:"policy,omitempty"`

	// Title and Abstract fill standalone documents.
	Title    string `yaml:"title,omitempty"`
	Abstract string `yaml:"abstract,omitempty"`

	// ORCID enables ORCID markup by default.
	ORCID bool `yaml:"orcid,omitempty"`

	// SortedAffiliations numbers affiliations lexicographically.
	SortedAffiliations bool `yaml:"sorted_affiliations,omitempty"`

	// StartIndex is the first affiliation number.
	StartIndex int `yaml:"start_index,omitempty"`
}

// Load reads a profile from a YAML file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile file: %w", err)
	}
	return Parse(data)
}

// Parse loads a profile from YAML content.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing profile YAML: %w", err)
	}
	return &p, nil
}

// Default returns the embedded fallback profile.
func Default() *Profile {
	data, err := embeddedProfiles.ReadFile("profiles/default.yaml")
	if err != nil {
		return &Profile{Name: "default"}
	}
	p, err := Parse(data)
	if err != nil {
		return &Profile{Name: "default"}
	}
	return p
}

// List returns the names of all embedded profiles.
func List() []string {
	entries, err := embeddedProfiles.ReadDir("profiles")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".yaml") {
			names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
		}
	}
	return names
}
