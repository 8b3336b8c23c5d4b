package quiz

// Ledger is the in-memory record of the user's answers for one session.
// Entries are kept in first-touch order, which is the order they are
// exported for evaluation. Entries are never removed individually; the
// whole ledger is dropped on session reset.
type Ledger struct {
	entries map[int]*Answer
	order   []int
}

// NewLedger creates an empty Ledger.
func NewLedger() *Ledger {
	return &Ledger{entries: make(map[int]*Answer)}
}

func (l *Ledger) touch(q Question) *Answer {
	if a, ok := l.entries[q.ID]; ok {
		return a
	}
	a := &Answer{QuestionID: q.ID, QuestionText: q.Text}
	l.entries[q.ID] = a
	l.order = append(l.order, q.ID)
	return a
}

// SetChoice records a yes/no choice for the question, creating the entry if
// the question has not been touched yet. Importance and reason are preserved.
func (l *Ledger) SetChoice(q Question, choice Choice) {
	l.touch(q).Choice = choice
}

// ToggleImportant flips the importance flag for the question, creating the
// entry (with no choice) if needed. Choice and reason are preserved.
func (l *Ledger) ToggleImportant(q Question) {
	a := l.touch(q)
	a.IsImportant = !a.IsImportant
}

// SetReason attaches a free-text reason to an existing entry. A question
// that has never been answered or marked important has no entry, and the
// call is a no-op: the reason field only exists once the entry does.
func (l *Ledger) SetReason(questionID int, reason string) {
	if a, ok := l.entries[questionID]; ok {
		a.Reason = reason
	}
}

// Get returns a copy of the entry for the question, if any.
func (l *Ledger) Get(questionID int) (Answer, bool) {
	a, ok := l.entries[questionID]
	if !ok {
		return Answer{}, false
	}
	return *a, true
}

// AnsweredCount returns the number of entries with a choice made. Entries
// that were only marked important do not count.
func (l *Ledger) AnsweredCount() int {
	n := 0
	for _, a := range l.entries {
		if a.Answered() {
			n++
		}
	}
	return n
}

// ExportAnswered returns copies of all entries with a choice made, in
// first-touch order.
func (l *Ledger) ExportAnswered() []Answer {
	var out []Answer
	for _, id := range l.order {
		if a := l.entries[id]; a.Answered() {
			out = append(out, *a)
		}
	}
	return out
}
