package llm

import "testing"

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain json passes through",
			input: `{"questions": ["a", "b"]}`,
			want:  `{"questions": ["a", "b"]}`,
		},
		{
			name:  "json code fence",
			input: "Here you go:\n```json\n{\"questions\": []}\n```\nHope that helps!",
			want:  `{"questions": []}`,
		},
		{
			name:  "bare code fence",
			input: "```\n{\"results\": []}\n```",
			want:  `{"results": []}`,
		},
		{
			name:  "prose before and after",
			input: `Sure! {"results": [{"name": "X"}]} Let me know.`,
			want:  `{"results": [{"name": "X"}]}`,
		},
		{
			name:  "nested braces kept intact",
			input: `prefix {"a": {"b": 1}} suffix`,
			want:  `{"a": {"b": 1}}`,
		},
		{
			name:  "no json at all",
			input: "  nothing here  ",
			want:  "nothing here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSON(tt.input); got != tt.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
