package llm

import (
	"strings"
	"testing"

	"github.com/mandator-dev/mandator/internal/party"
	"github.com/mandator-dev/mandator/internal/quiz"
)

func TestBuildGenerateQuestionsPrompt(t *testing.T) {
	election := party.ElectionInfo{Name: "Volby do Poslanecké sněmovny", Year: 2025}

	prompt, err := BuildGenerateQuestionsPrompt(election, 50)
	if err != nil {
		t.Fatalf("BuildGenerateQuestionsPrompt: %v", err)
	}

	if !strings.Contains(prompt, "50") {
		t.Error("prompt should carry the question count")
	}
	if !strings.Contains(prompt, "Volby do Poslanecké sněmovny 2025") {
		t.Error("prompt should carry the election context")
	}
}

func TestBuildGenerateQuestionsPromptFallbackContext(t *testing.T) {
	prompt, err := BuildGenerateQuestionsPrompt(party.ElectionInfo{}, 10)
	if err != nil {
		t.Fatalf("BuildGenerateQuestionsPrompt: %v", err)
	}
	if !strings.Contains(prompt, "Volby v ČR") {
		t.Error("empty election should fall back to a generic context")
	}
}

func TestBuildEvaluateAnswersPrompt(t *testing.T) {
	answers := []quiz.Answer{
		{QuestionID: 0, QuestionText: "Mělo by Česko přijmout euro?", Choice: quiz.ChoiceYes, IsImportant: true, Reason: "dlouhodobá stabilita"},
		{QuestionID: 1, QuestionText: "Zvýšit důchodový věk?", Choice: quiz.ChoiceNo},
	}
	parties := []party.Party{
		{Name: "Alpha", Leader: "A. Alpha", Ideology: "center", Motto: "onward", Summary: "alpha party"},
	}
	election := party.ElectionInfo{Name: "Volby 2025", Year: 2025}

	prompt, err := BuildEvaluateAnswersPrompt(answers, parties, election)
	if err != nil {
		t.Fatalf("BuildEvaluateAnswersPrompt: %v", err)
	}

	// Choices are serialized lowercase.
	if !strings.Contains(prompt, `"answer": "yes"`) || !strings.Contains(prompt, `"answer": "no"`) {
		t.Error("choices should be serialized as lowercase yes/no")
	}
	if !strings.Contains(prompt, `"important": true`) {
		t.Error("importance flag missing from serialized answers")
	}
	if !strings.Contains(prompt, "dlouhodobá stabilita") {
		t.Error("reason text missing from serialized answers")
	}
	// The second answer has no reason; the field is omitted, not empty.
	if strings.Contains(prompt, `"reason": ""`) {
		t.Error("empty reasons should be omitted")
	}

	// Parties carry only what the model needs.
	if !strings.Contains(prompt, `"name": "Alpha"`) || !strings.Contains(prompt, `"ideology": "center"`) {
		t.Error("party fields missing from prompt")
	}
	if strings.Contains(prompt, "A. Alpha") || strings.Contains(prompt, "onward") {
		t.Error("leader and motto should not be sent to the model")
	}
}
