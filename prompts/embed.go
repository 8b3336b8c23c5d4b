// Package prompts embeds the Gemini prompt texts used by the LLM client.
package prompts

import _ "embed"

//go:embed generate_questions.md.tmpl
var GenerateQuestionsTemplate string

//go:embed evaluate_answers.md.tmpl
var EvaluateAnswersTemplate string
