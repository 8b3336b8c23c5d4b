package history

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/mandator-dev/mandator/internal/party"
	"github.com/mandator-dev/mandator/internal/quiz"
)

func testEnricher() *quiz.Enricher {
	roster := party.NewRoster([]party.Party{
		{Name: "Alpha", Leader: "A. Alpha", Ideology: "center", Motto: "onward", Candidates: []string{"A1", "A2"}, Summary: "alpha party"},
		{Name: "Beta", Leader: "B. Beta", Ideology: "left", Motto: "together", Candidates: []string{"B1"}, Summary: "beta party"},
	})
	return quiz.NewEnricher(roster)
}

func sampleResults() []quiz.PartyResult {
	return testEnricher().Enrich([]quiz.MatchResult{
		{Name: "Alpha", MatchPercentage: 80, Reasoning: "strong overlap"},
		{Name: "Beta", MatchPercentage: 40, Reasoning: "partial overlap"},
	})
}

func TestLoadAbsentStorage(t *testing.T) {
	store := NewStore(NewMemoryStore(), testEnricher(), nil)
	store.Load()

	if store.Len() != 0 {
		t.Errorf("Len = %d after loading empty storage, want 0", store.Len())
	}
}

func TestLoadCorruptStorage(t *testing.T) {
	kv := NewMemoryStore()
	if err := kv.Set(historyKey, "{not json"); err != nil {
		t.Fatal(err)
	}

	store := NewStore(kv, testEnricher(), nil)
	store.Load()

	if store.Len() != 0 {
		t.Errorf("Len = %d after corrupt load, want 0", store.Len())
	}
}

func TestAppendPrependsAndPersists(t *testing.T) {
	kv := NewMemoryStore()
	store := NewStore(kv, testEnricher(), nil)
	store.Load()

	first := NewSavedResult(sampleResults(), nil)
	second := NewSavedResult(sampleResults(), nil)
	store.Append(first)
	store.Append(second)

	items := store.Items()
	if len(items) != 2 {
		t.Fatalf("Len = %d, want 2", len(items))
	}
	if items[0].ID != second.ID || items[1].ID != first.ID {
		t.Error("most recent result should come first")
	}

	// A fresh store over the same storage sees both entries.
	reloaded := NewStore(kv, testEnricher(), nil)
	reloaded.Load()
	if reloaded.Len() != 2 {
		t.Errorf("reloaded Len = %d, want 2", reloaded.Len())
	}
	if got, ok := reloaded.ByID(first.ID); !ok || got.Results[0].Name != "Alpha" {
		t.Error("persisted entry lost or mangled")
	}
}

func TestAppendSwallowsWriteFailure(t *testing.T) {
	kv := NewMemoryStore()
	kv.FailSet = errors.New("disk full")
	store := NewStore(kv, testEnricher(), nil)
	store.Load()

	item := NewSavedResult(sampleResults(), nil)
	store.Append(item)

	// The in-memory list keeps the item even though persistence failed.
	if store.Len() != 1 {
		t.Fatalf("Len = %d after failed write, want 1", store.Len())
	}
	if _, ok, _ := kv.Get(historyKey); ok {
		t.Error("failed write should leave storage untouched")
	}
}

func TestSaveResultStampsEntry(t *testing.T) {
	store := NewStore(NewMemoryStore(), testEnricher(), nil)
	store.Load()

	answers := []quiz.Answer{{QuestionID: 0, QuestionText: "q0", Choice: quiz.ChoiceYes}}
	store.SaveResult(sampleResults(), answers)

	item, ok := store.At(0)
	if !ok {
		t.Fatal("expected one saved result")
	}
	if item.ID == "" || item.Date == "" {
		t.Error("saved result should carry ID and timestamp")
	}
	if len(item.Answers) != 1 || item.Answers[0].QuestionText != "q0" {
		t.Error("answers not saved alongside results")
	}
}

func TestLoadMigratesPreEnrichmentRecords(t *testing.T) {
	// A record from before enrichment existed: bare match triples, no
	// candidates field anywhere.
	raw := `[{"date":"2021-10-01T10:00:00Z","results":[
		{"name":"Alpha","matchPercentage":75,"reasoning":"old entry"},
		{"name":"Ghost","matchPercentage":10,"reasoning":"defunct party"}
	]}]`
	kv := NewMemoryStore()
	if err := kv.Set(historyKey, raw); err != nil {
		t.Fatal(err)
	}

	store := NewStore(kv, testEnricher(), nil)
	store.Load()

	item, ok := store.At(0)
	if !ok {
		t.Fatal("expected migrated entry")
	}
	results := item.Results
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	// Known party re-enriched from the current roster.
	if results[0].Leader != "A. Alpha" || len(results[0].Candidates) != 2 {
		t.Errorf("migrated entry not re-enriched: %+v", results[0])
	}
	if results[0].MatchPercentage != 75 || results[0].Reasoning != "old entry" {
		t.Error("migration must not touch evaluator fields")
	}
	// Party no longer in the roster gets placeholders.
	if results[1].Leader != "N/A" || results[1].Candidates == nil {
		t.Errorf("unknown party not placeholdered: %+v", results[1])
	}

	// Migration is a read-time view: the stored bytes stay untouched.
	stored, _, _ := kv.Get(historyKey)
	if stored != raw {
		t.Error("stored record was rewritten during migration")
	}
}

func TestLoadKeepsEnrichedRecordsVerbatim(t *testing.T) {
	kv := NewMemoryStore()
	store := NewStore(kv, testEnricher(), nil)
	store.Load()

	// Save an enriched result whose roster fields then "change": the
	// saved copy must win over the current roster.
	results := sampleResults()
	results[0].Leader = "Former Leader"
	store.Append(NewSavedResult(results, nil))

	reloaded := NewStore(kv, testEnricher(), nil)
	reloaded.Load()
	item, _ := reloaded.At(0)
	if item.Results[0].Leader != "Former Leader" {
		t.Errorf("Leader = %q, want saved copy kept", item.Results[0].Leader)
	}
}

func TestByIDMissing(t *testing.T) {
	store := NewStore(NewMemoryStore(), testEnricher(), nil)
	store.Load()

	if _, ok := store.ByID("nope"); ok {
		t.Error("ByID should miss on unknown id")
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	kv, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	defer kv.Close()

	if _, ok, err := kv.Get("missing"); err != nil || ok {
		t.Errorf("Get(missing) = ok=%v err=%v, want miss", ok, err)
	}

	if err := kv.Set("k", "v1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := kv.Set("k", "v2"); err != nil {
		t.Fatalf("Set (overwrite): %v", err)
	}

	v, ok, err := kv.Get("k")
	if err != nil || !ok || v != "v2" {
		t.Errorf("Get(k) = %q ok=%v err=%v, want v2", v, ok, err)
	}
}
