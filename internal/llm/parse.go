package llm

import "strings"

// extractJSON pulls JSON out of model output, handling cases where the
// model includes explanatory text before/after the JSON or wraps it in
// markdown code fences. Response schemas make this rare, not impossible.
func extractJSON(s string) string {
	s = strings.TrimSpace(s)

	// Try to extract JSON from markdown code fences first.
	if idx := strings.Index(s, "```json"); idx != -1 {
		s = s[idx+7:] // Skip "```json"
		if endIdx := strings.Index(s, "```"); endIdx != -1 {
			s = s[:endIdx]
		}
		return strings.TrimSpace(s)
	}
	if idx := strings.Index(s, "```"); idx != -1 {
		s = s[idx+3:] // Skip "```"
		// Skip optional language identifier on same line.
		if nlIdx := strings.Index(s, "\n"); nlIdx != -1 && nlIdx < 20 {
			s = s[nlIdx+1:]
		}
		if endIdx := strings.Index(s, "```"); endIdx != -1 {
			s = s[:endIdx]
		}
		return strings.TrimSpace(s)
	}

	// No code fence found. Try to find JSON object boundaries.
	// Look for '{"' to avoid matching braces in prose like "{see below}".
	start := strings.Index(s, `{"`)
	if start == -1 {
		// Fallback to any '{' if no '{"' found (e.g., empty object).
		start = strings.Index(s, "{")
	}
	end := strings.LastIndex(s, "}")
	if start != -1 && end != -1 && end > start {
		return s[start : end+1]
	}

	return strings.TrimSpace(s)
}
