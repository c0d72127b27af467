package normalize

import "testing"

func TestValue(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"STELAR", "stelar"},
		{"Content Creation", "content-creation"},
		{"  Student   Feedback  ", "student-feedback"},
		{"Hugging Face!", "hugging-face"},
		{"Justice and Society Studies and STELAR", "justice-and-society-studies-and-stelar"},
		{"ChatGPT (Custom GPT)", "chatgpt-custom-gpt"},
		{"already-normalized", "already-normalized"},
		{"snake_case stays", "snake_case-stays"},
		{"tab\tand\nnewline", "tab-and-newline"},
		{"Café Crème", "caf-crme"},
		{"a - b", "a---b"},
		{"", ""},
		{"   ", ""},
		{"!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Value(tt.input)
			if got != tt.want {
				t.Errorf("Value(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestValue_Idempotent(t *testing.T) {
	inputs := []string{
		"STELAR",
		"Content Creation",
		"  Hugging   Face  ",
		"Café Crème",
		"a - b",
		"ChatGPT (Custom GPT)",
		"İstanbul",
		" non-breaking space ",
		"",
	}

	for _, in := range inputs {
		once := Value(in)
		twice := Value(once)
		if once != twice {
			t.Errorf("Value not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}

func TestQueryParam(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"search term", "search term"},
		{"  trimmed  ", "trimmed"},
		{"", ""},
		{"   ", ""},
		{"UPPERCASE", "UPPERCASE"}, // Preserves case
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := QueryParam(tt.input)
			if got != tt.want {
				t.Errorf("QueryParam(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
