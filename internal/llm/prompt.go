// prompt.go renders the embedded prompt templates with session data.
package llm

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/mandator-dev/mandator/internal/party"
	"github.com/mandator-dev/mandator/internal/quiz"
	"github.com/mandator-dev/mandator/prompts"
)

var (
	generateQuestionsTmpl = template.Must(template.New("generate_questions").Parse(prompts.GenerateQuestionsTemplate))
	evaluateAnswersTmpl   = template.Must(template.New("evaluate_answers").Parse(prompts.EvaluateAnswersTemplate))
)

// BuildGenerateQuestionsPrompt renders the question-generation prompt for
// the given election.
func BuildGenerateQuestionsPrompt(election party.ElectionInfo, questionCount int) (string, error) {
	electionContext := "Volby v ČR"
	if election.Name != "" {
		electionContext = strings.TrimSpace(fmt.Sprintf("%s %d", election.Name, election.Year))
	}

	var sb strings.Builder
	err := generateQuestionsTmpl.Execute(&sb, struct {
		QuestionCount   int
		ElectionContext string
	}{
		QuestionCount:   questionCount,
		ElectionContext: electionContext,
	})
	if err != nil {
		return "", fmt.Errorf("rendering question prompt: %w", err)
	}
	return sb.String(), nil
}

// promptAnswer is the answer shape embedded in the evaluation prompt.
type promptAnswer struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Important bool   `json:"important"`
	Reason    string `json:"reason,omitempty"`
}

// promptParty is the party shape embedded in the evaluation prompt: only
// the fields the model needs to position a party.
type promptParty struct {
	Name     string `json:"name"`
	Ideology string `json:"ideology"`
	Summary  string `json:"summary"`
}

// BuildEvaluateAnswersPrompt renders the evaluation prompt. Choices are
// serialized lowercase ("yes"/"no") and reasons are included only where the
// user typed one.
func BuildEvaluateAnswersPrompt(answers []quiz.Answer, parties []party.Party, election party.ElectionInfo) (string, error) {
	promptAnswers := make([]promptAnswer, len(answers))
	for i, a := range answers {
		promptAnswers[i] = promptAnswer{
			Question:  a.QuestionText,
			Answer:    strings.ToLower(string(a.Choice)),
			Important: a.IsImportant,
			Reason:    strings.TrimSpace(a.Reason),
		}
	}

	promptParties := make([]promptParty, len(parties))
	for i, p := range parties {
		promptParties[i] = promptParty{Name: p.Name, Ideology: p.Ideology, Summary: p.Summary}
	}

	answersJSON, err := json.MarshalIndent(promptAnswers, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshalling answers: %w", err)
	}
	partiesJSON, err := json.MarshalIndent(promptParties, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshalling parties: %w", err)
	}

	var sb strings.Builder
	err = evaluateAnswersTmpl.Execute(&sb, struct {
		ElectionName string
		ElectionYear int
		PartiesJSON  string
		AnswersJSON  string
	}{
		ElectionName: election.Name,
		ElectionYear: election.Year,
		PartiesJSON:  string(partiesJSON),
		AnswersJSON:  string(answersJSON),
	})
	if err != nil {
		return "", fmt.Errorf("rendering evaluation prompt: %w", err)
	}
	return sb.String(), nil
}
