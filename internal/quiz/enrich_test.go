package quiz

import "testing"

func TestEnrichJoinsRosterFields(t *testing.T) {
	e := testEnricher()

	results := e.Enrich([]MatchResult{{Name: "Alpha", MatchPercentage: 91.5, Reasoning: "aligned"}})

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	r := results[0]
	if r.Name != "Alpha" || r.Leader != "A. Alpha" || r.Ideology != "center" || r.Motto != "onward" || r.Summary != "alpha party" {
		t.Errorf("roster fields not joined: %+v", r)
	}
	if r.MatchPercentage != 91.5 || r.Reasoning != "aligned" {
		t.Errorf("evaluator fields not carried: %+v", r)
	}
}

func TestEnrichUnknownPartyGetsPlaceholders(t *testing.T) {
	e := testEnricher()

	r := e.Enrich([]MatchResult{{Name: "Ghost", MatchPercentage: 5}})[0]

	if r.Name != "Ghost" {
		t.Errorf("Name = %q, want evaluator's name kept", r.Name)
	}
	for field, got := range map[string]string{
		"Leader":   r.Leader,
		"Ideology": r.Ideology,
		"Motto":    r.Motto,
		"Summary":  r.Summary,
	} {
		if got != "N/A" {
			t.Errorf("%s = %q, want N/A", field, got)
		}
	}
	if r.Candidates == nil || len(r.Candidates) != 0 {
		t.Errorf("Candidates = %v, want empty non-nil slice", r.Candidates)
	}
}

func TestEnrichPreservesInputOrder(t *testing.T) {
	e := testEnricher()

	// Deliberately not sorted by percentage; order must pass through.
	in := []MatchResult{
		{Name: "Beta", MatchPercentage: 20},
		{Name: "Ghost", MatchPercentage: 80},
		{Name: "Alpha", MatchPercentage: 50},
	}
	out := e.Enrich(in)

	for i := range in {
		if out[i].Name != in[i].Name {
			t.Errorf("out[%d].Name = %q, want %q", i, out[i].Name, in[i].Name)
		}
	}
}
