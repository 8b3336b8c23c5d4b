// Package llm implements the question source and evaluator contracts on
// top of the Gemini API. Both calls request JSON output with an explicit
// response schema and validate the shape before handing results back.
package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"github.com/mandator-dev/mandator/internal/party"
	"github.com/mandator-dev/mandator/internal/quiz"
)

// Client calls Gemini for question generation and answer evaluation.
// It implements quiz.QuestionSource and quiz.Evaluator.
type Client struct {
	client        *genai.Client
	model         string
	questionCount int
}

// NewClient creates a Client for the given model. apiKey must be set; the
// caller resolves it from the environment.
func NewClient(ctx context.Context, apiKey, model string, questionCount int) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}
	if questionCount <= 0 {
		questionCount = 50
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &Client{
		client:        client,
		model:         model,
		questionCount: questionCount,
	}, nil
}

// questionsResponse is the JSON schema the model returns for generation.
type questionsResponse struct {
	Questions []string `json:"questions"`
}

// GenerateQuestions asks Gemini for the session's yes/no question set.
func (c *Client) GenerateQuestions(ctx context.Context, election party.ElectionInfo) ([]string, error) {
	prompt, err := BuildGenerateQuestionsPrompt(election, c.questionCount)
	if err != nil {
		return nil, err
	}

	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"questions": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
		},
		Required: []string{"questions"},
	}

	raw, err := c.generateJSON(ctx, prompt, schema)
	if err != nil {
		return nil, fmt.Errorf("generating questions: %w", err)
	}

	var resp questionsResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, fmt.Errorf("generating questions: invalid JSON from model: %w", err)
	}
	if len(resp.Questions) == 0 {
		return nil, fmt.Errorf("generating questions: model returned no questions")
	}

	return resp.Questions, nil
}

// EvaluateAnswers asks Gemini to score the answered questions against the
// party roster. Results arrive sorted by descending match percentage per
// the prompt contract and are passed through as received.
func (c *Client) EvaluateAnswers(ctx context.Context, answers []quiz.Answer, parties []party.Party, election party.ElectionInfo) ([]quiz.MatchResult, error) {
	prompt, err := BuildEvaluateAnswersPrompt(answers, parties, election)
	if err != nil {
		return nil, err
	}

	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"results": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":            {Type: genai.TypeString},
						"matchPercentage": {Type: genai.TypeNumber},
						"reasoning":       {Type: genai.TypeString},
					},
					Required: []string{"name", "matchPercentage", "reasoning"},
				},
			},
		},
		Required: []string{"results"},
	}

	raw, err := c.generateJSON(ctx, prompt, schema)
	if err != nil {
		return nil, fmt.Errorf("evaluating answers: %w", err)
	}

	var resp struct {
		Results *[]quiz.MatchResult `json:"results"`
	}
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, fmt.Errorf("evaluating answers: invalid JSON from model: %w", err)
	}
	if resp.Results == nil {
		return nil, fmt.Errorf("evaluating answers: model response missing results array")
	}

	return *resp.Results, nil
}

// generateJSON runs one generation call with a JSON response schema and
// returns the extracted JSON text.
func (c *Client) generateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		return "", err
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("model returned an empty response")
	}

	return extractJSON(text), nil
}
