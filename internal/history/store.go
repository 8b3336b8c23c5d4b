package history

import (
	"encoding/json"

	"github.com/mandator-dev/mandator/internal/log"
	"github.com/mandator-dev/mandator/internal/quiz"
)

// historyKey is the single storage slot holding the whole history list,
// most recent first.
const historyKey = "electionResultsHistory"

// Store keeps past evaluation sessions. Records are held in their stored
// wire form and migrated to the current shape on every read; old records
// are never rewritten in place. Storage failures are logged and swallowed:
// losing history must never break the evaluation flow.
type Store struct {
	kv       KeyValueStore
	enricher *quiz.Enricher
	logger   *log.Logger
	records  []savedRecord
}

// NewStore creates a Store over the given key-value storage. The enricher
// is used to upgrade pre-enrichment records at read time.
func NewStore(kv KeyValueStore, enricher *quiz.Enricher, logger *log.Logger) *Store {
	return &Store{kv: kv, enricher: enricher, logger: logger}
}

// Load reads the persisted history. Absent or corrupt storage yields an
// empty list; the caller never sees an error.
func (s *Store) Load() {
	s.records = nil

	raw, ok, err := s.kv.Get(historyKey)
	if err != nil {
		_ = s.logger.Append(log.LogEvent{Event: log.EventHistoryLoadFailed, Error: err.Error()})
		return
	}
	if !ok {
		return
	}

	var records []savedRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		_ = s.logger.Append(log.LogEvent{Event: log.EventHistoryLoadFailed, Error: err.Error()})
		return
	}
	s.records = records
}

// Append prepends item and persists the full list. A persistence failure is
// logged and swallowed; the in-memory list keeps the item either way.
func (s *Store) Append(item SavedResult) {
	s.records = append([]savedRecord{toRecord(item)}, s.records...)

	data, err := json.Marshal(s.records)
	if err == nil {
		err = s.kv.Set(historyKey, string(data))
	}
	if err != nil {
		_ = s.logger.Append(log.LogEvent{Event: log.EventHistorySaveFailed, ResultID: item.ID, Error: err.Error()})
		return
	}
	_ = s.logger.Append(log.LogEvent{Event: log.EventHistorySaved, ResultID: item.ID, Results: len(item.Results)})
}

// SaveResult stamps and appends a completed evaluation. It satisfies the
// session's ResultSaver contract.
func (s *Store) SaveResult(results []quiz.PartyResult, answers []quiz.Answer) {
	s.Append(NewSavedResult(results, answers))
}

// Len returns the number of saved results.
func (s *Store) Len() int {
	return len(s.records)
}

// Items returns all saved results, most recent first, each migrated to the
// current shape.
func (s *Store) Items() []SavedResult {
	items := make([]SavedResult, len(s.records))
	for i, rec := range s.records {
		items[i] = upgrade(rec, s.enricher)
	}
	return items
}

// At returns the saved result at index i (0 = most recent), migrated to
// the current shape.
func (s *Store) At(i int) (SavedResult, bool) {
	if i < 0 || i >= len(s.records) {
		return SavedResult{}, false
	}
	return upgrade(s.records[i], s.enricher), true
}

// ByID returns the saved result with the given ID, migrated to the current
// shape.
func (s *Store) ByID(id string) (SavedResult, bool) {
	for _, rec := range s.records {
		if rec.ID == id {
			return upgrade(rec, s.enricher), true
		}
	}
	return SavedResult{}, false
}
