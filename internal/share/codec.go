// Package share encodes result lists into URL-safe tokens and back.
// Tokens carry only the evaluator-sourced fields; roster data is re-derived
// at decode time by enriching against the current roster.
package share

import (
	"encoding/base64"
	"encoding/json"

	"github.com/mandator-dev/mandator/internal/quiz"
)

// Encode projects each result down to its match triple and packs the list
// into a URL-safe token.
func Encode(results []quiz.PartyResult) (string, error) {
	matches := make([]quiz.MatchResult, len(results))
	for i, r := range results {
		matches[i] = r.Match()
	}

	data, err := json.Marshal(matches)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// Decode unpacks a share token. Any malformed, non-array, or empty token
// yields (nil, false): a corrupt or absent token means "no shared result",
// never an error.
func Decode(token string) ([]quiz.MatchResult, bool) {
	if token == "" {
		return nil, false
	}

	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, false
	}

	var matches []quiz.MatchResult
	if err := json.Unmarshal(data, &matches); err != nil {
		return nil, false
	}
	if len(matches) == 0 {
		return nil, false
	}
	return matches, true
}
