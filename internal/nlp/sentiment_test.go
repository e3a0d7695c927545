package nlp_test

import (
	"testing"

	"customer-care-assistant/internal/model"
	"customer-care-assistant/internal/nlp"
)

func TestParseSentiment(t *testing.T) {
	t.Run("Clean JSON", func(t *testing.T) {
		got := nlp.ParseSentiment(`{"label": "POSITIVE", "score": 0.95}`)
		if got.Label != model.SentimentPositive || got.Score != 0.95 {
			t.Errorf("unexpected result: %+v", got)
		}
	})

	t.Run("JSON With Surrounding Prose", func(t *testing.T) {
		got := nlp.ParseSentiment(`Here is the JSON response: {"label": "negative", "score": 0.88} Let me know if you need more.`)
		if got.Label != model.SentimentNegative || got.Score != 0.88 {
			t.Errorf("unexpected result: %+v", got)
		}
	})

	t.Run("Lowercase Label Uppercased", func(t *testing.T) {
		got := nlp.ParseSentiment(`{"label": "mixed", "score": 0.7}`)
		if got.Label != model.SentimentMixed {
			t.Errorf("expected MIXED, got %s", got.Label)
		}
	})

	t.Run("Unknown Label Normalizes To Neutral", func(t *testing.T) {
		for _, label := range []string{"ANGRY", "UNKNOWN", ""} {
			got := nlp.ParseSentiment(`{"label": "` + label + `", "score": 0.5}`)
			if got.Label != model.SentimentNeutral {
				t.Errorf("label %q: expected NEUTRAL, got %s", label, got.Label)
			}
		}
	})

	t.Run("Score Clamped To Bounds", func(t *testing.T) {
		got := nlp.ParseSentiment(`{"label": "POSITIVE", "score": 1.7}`)
		if got.Score != 1.0 {
			t.Errorf("expected clamp to 1.0, got %v", got.Score)
		}

		got = nlp.ParseSentiment(`{"label": "POSITIVE", "score": -0.3}`)
		if got.Score != 0.0 {
			t.Errorf("expected clamp to 0.0, got %v", got.Score)
		}
	})

	t.Run("Score Rounded To Four Decimals", func(t *testing.T) {
		got := nlp.ParseSentiment(`{"label": "POSITIVE", "score": 0.123456789}`)
		if got.Score != 0.1235 {
			t.Errorf("expected 0.1235, got %v", got.Score)
		}
	})

	t.Run("Non Numeric Score Is Parse Error", func(t *testing.T) {
		got := nlp.ParseSentiment(`{"label": "POSITIVE", "score": "very high"}`)
		if got.Label != model.SentimentErrorParse || got.Score != 0.0 {
			t.Errorf("expected ERROR_PARSE/0.0, got %+v", got)
		}
	})

	t.Run("Unparseable Text Is Parse Error", func(t *testing.T) {
		for _, raw := range []string{"I feel positive about this", "", "label: POSITIVE"} {
			got := nlp.ParseSentiment(raw)
			if got.Label != model.SentimentErrorParse || got.Score != 0.0 {
				t.Errorf("raw %q: expected ERROR_PARSE/0.0, got %+v", raw, got)
			}
		}
	})

	t.Run("Gateway Sentinel Is Generic Error", func(t *testing.T) {
		got := nlp.ParseSentiment("ERROR: model gateway not available.")
		if got.Label != model.SentimentErrorGeneric || got.Score != 0.0 {
			t.Errorf("expected ERROR_GENERIC/0.0, got %+v", got)
		}
	})

	t.Run("Missing Score Defaults To Zero", func(t *testing.T) {
		got := nlp.ParseSentiment(`{"label": "NEGATIVE"}`)
		if got.Label != model.SentimentNegative || got.Score != 0.0 {
			t.Errorf("unexpected result: %+v", got)
		}
	})
}
