package nlp_test

import (
	"testing"

	"customer-care-assistant/internal/nlp"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantOK  bool
	}{
		{
			name:   "Bare Object",
			input:  `{"label": "POSITIVE", "score": 0.9}`,
			want:   `{"label": "POSITIVE", "score": 0.9}`,
			wantOK: true,
		},
		{
			name:   "Leading Prose",
			input:  `Here is the JSON response: {"label": "NEGATIVE", "score": 0.88}`,
			want:   `{"label": "NEGATIVE", "score": 0.88}`,
			wantOK: true,
		},
		{
			name:   "Trailing Prose",
			input:  `{"label": "MIXED", "score": 0.7} I hope that helps!`,
			want:   `{"label": "MIXED", "score": 0.7}`,
			wantOK: true,
		},
		{
			name:   "Code Fence",
			input:  "```json\n{\"label\": \"NEUTRAL\", \"score\": 0.5}\n```",
			want:   `{"label": "NEUTRAL", "score": 0.5}`,
			wantOK: true,
		},
		{
			name:   "Braces Inside String Value",
			input:  `{"classification": "weird {nested} text", "priority": "Low"}`,
			want:   `{"classification": "weird {nested} text", "priority": "Low"}`,
			wantOK: true,
		},
		{
			name:   "Escaped Quote Inside String",
			input:  `{"classification": "he said \"no}\"", "priority": "Low"} trailing`,
			want:   `{"classification": "he said \"no}\"", "priority": "Low"}`,
			wantOK: true,
		},
		{
			name:   "Nested Object",
			input:  `noise {"a": {"b": 1}} more noise {"c": 2}`,
			want:   `{"a": {"b": 1}}`,
			wantOK: true,
		},
		{
			name:   "No Object",
			input:  "I cannot answer that.",
			wantOK: false,
		},
		{
			name:   "Unbalanced",
			input:  `{"label": "POSITIVE", "score": 0.9`,
			wantOK: false,
		},
		{
			name:   "Empty Input",
			input:  "",
			wantOK: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := nlp.ExtractJSONObject(tc.input)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v (input %q)", ok, tc.wantOK, tc.input)
			}
			if ok && got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}
