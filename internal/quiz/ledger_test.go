package quiz

import (
	"fmt"
	"testing"
)

func tq(id int) Question {
	return Question{ID: id, Text: fmt.Sprintf("question %d", id)}
}

func TestLedgerSetChoicePreservesFlagAndReason(t *testing.T) {
	l := NewLedger()

	l.ToggleImportant(tq(1))
	l.SetChoice(tq(1), ChoiceYes)
	l.SetReason(1, "matters to me")
	l.SetChoice(tq(1), ChoiceNo)

	a, ok := l.Get(1)
	if !ok {
		t.Fatal("expected entry for question 1")
	}
	if a.Choice != ChoiceNo {
		t.Errorf("Choice = %q, want %q", a.Choice, ChoiceNo)
	}
	if !a.IsImportant {
		t.Error("IsImportant lost after choice overwrite")
	}
	if a.Reason != "matters to me" {
		t.Errorf("Reason = %q, want preserved text", a.Reason)
	}
}

func TestLedgerToggleImportant(t *testing.T) {
	l := NewLedger()

	l.ToggleImportant(tq(0))
	if a, _ := l.Get(0); !a.IsImportant {
		t.Error("first toggle should set IsImportant")
	}
	l.ToggleImportant(tq(0))
	if a, _ := l.Get(0); a.IsImportant {
		t.Error("second toggle should clear IsImportant")
	}

	// Toggling creates an entry but does not answer the question.
	if n := l.AnsweredCount(); n != 0 {
		t.Errorf("AnsweredCount = %d, want 0", n)
	}
}

func TestLedgerSetReasonRequiresEntry(t *testing.T) {
	l := NewLedger()

	l.SetReason(7, "no entry yet")

	if _, ok := l.Get(7); ok {
		t.Error("SetReason should not create an entry")
	}
}

func TestLedgerAnsweredCount(t *testing.T) {
	l := NewLedger()

	l.SetChoice(tq(0), ChoiceYes)
	l.SetChoice(tq(1), ChoiceNo)
	l.ToggleImportant(tq(2)) // touched but unanswered

	if n := l.AnsweredCount(); n != 2 {
		t.Errorf("AnsweredCount = %d, want 2", n)
	}
}

func TestLedgerExportAnsweredOrder(t *testing.T) {
	l := NewLedger()

	// First-touch order: 2, 0, 1. Question 3 is touched but unanswered.
	l.SetChoice(tq(2), ChoiceYes)
	l.ToggleImportant(tq(0))
	l.SetChoice(tq(1), ChoiceNo)
	l.SetChoice(tq(0), ChoiceYes)
	l.ToggleImportant(tq(3))

	got := l.ExportAnswered()
	want := []int{2, 0, 1}
	if len(got) != len(want) {
		t.Fatalf("exported %d answers, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].QuestionID != id {
			t.Errorf("export[%d].QuestionID = %d, want %d", i, got[i].QuestionID, id)
		}
	}
}
