// Package party holds the static reference data: the party roster and
// election metadata. The roster is embedded at build time and never
// mutated at runtime.
package party

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed parties.yaml
var partiesYAML []byte

// Party describes one party on the ballot. Name is the join key used to
// match evaluator output against the roster.
type Party struct {
	Name       string   `json:"name" yaml:"name"`
	Leader     string   `json:"leader" yaml:"leader"`
	Ideology   string   `json:"ideology" yaml:"ideology"`
	Motto      string   `json:"motto" yaml:"motto"`
	Candidates []string `json:"candidates" yaml:"candidates"`
	Summary    string   `json:"summary" yaml:"summary"`
}

// ElectionInfo identifies the election a quiz session is about.
type ElectionInfo struct {
	Name string `json:"name" yaml:"name"`
	Year int    `json:"year" yaml:"year"`
}

// Roster is a read-only list of parties with name lookup.
type Roster struct {
	parties []Party
	byName  map[string]int
}

// NewRoster builds a Roster from the given parties.
func NewRoster(parties []Party) *Roster {
	byName := make(map[string]int, len(parties))
	for i, p := range parties {
		byName[p.Name] = i
	}
	return &Roster{parties: parties, byName: byName}
}

// Load parses the embedded roster.
func Load() (*Roster, error) {
	var parties []Party
	if err := yaml.Unmarshal(partiesYAML, &parties); err != nil {
		return nil, fmt.Errorf("parsing embedded party roster: %w", err)
	}
	if len(parties) == 0 {
		return nil, fmt.Errorf("embedded party roster is empty")
	}
	return NewRoster(parties), nil
}

// Parties returns all parties in roster order. The returned slice must be
// treated as read-only.
func (r *Roster) Parties() []Party {
	return r.parties
}

// Find returns the party with the exact given name.
func (r *Roster) Find(name string) (Party, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Party{}, false
	}
	return r.parties[i], true
}

// Len returns the number of parties in the roster.
func (r *Roster) Len() int {
	return len(r.parties)
}
