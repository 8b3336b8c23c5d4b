package party

import "testing"

func TestLoadEmbeddedRoster(t *testing.T) {
	roster, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if roster.Len() < 20 {
		t.Errorf("roster has %d parties, expected at least 20", roster.Len())
	}

	for _, p := range roster.Parties() {
		if p.Name == "" {
			t.Error("party with empty name in roster")
		}
		if p.Summary == "" {
			t.Errorf("party %q has no summary", p.Name)
		}
	}
}

func TestRosterNamesAreUnique(t *testing.T) {
	roster, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	seen := make(map[string]bool)
	for _, p := range roster.Parties() {
		if seen[p.Name] {
			t.Errorf("duplicate party name %q", p.Name)
		}
		seen[p.Name] = true
	}
}

func TestRosterFind(t *testing.T) {
	roster := NewRoster([]Party{
		{Name: "Alpha", Leader: "A"},
		{Name: "Beta", Leader: "B"},
	})

	p, ok := roster.Find("Beta")
	if !ok {
		t.Fatal("Find(Beta): not found")
	}
	if p.Leader != "B" {
		t.Errorf("Find(Beta).Leader = %q, want %q", p.Leader, "B")
	}

	if _, ok := roster.Find("Gamma"); ok {
		t.Error("Find(Gamma): found, want miss")
	}
}
