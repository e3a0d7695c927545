package nlp

import (
	"encoding/json"
	"math"
	"strings"

	"customer-care-assistant/internal/gateway"
	"customer-care-assistant/internal/model"
)

// ParseSentiment coerces raw model text into a SentimentResult. Total
// function: it always returns a value of the expected shape.
//
// Fallbacks: gateway sentinel text → ERROR_GENERIC; text without a parseable
// JSON object (or a non-numeric score) → ERROR_PARSE; a label outside the
// four valid values → NEUTRAL. The score is clamped into [0, 1] and rounded
// to 4 decimal places.
func ParseSentiment(raw string) model.SentimentResult {
	if gateway.IsError(raw) {
		return model.SentimentResult{Label: model.SentimentErrorGeneric, Score: 0.0}
	}

	jsonStr, ok := ExtractJSONObject(raw)
	if !ok {
		return model.SentimentResult{Label: model.SentimentErrorParse, Score: 0.0}
	}

	var parsed struct {
		Label string  `json:"label"`
		Score float64 `json:"score"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &parsed); err != nil {
		return model.SentimentResult{Label: model.SentimentErrorParse, Score: 0.0}
	}

	label := model.SentimentLabel(strings.ToUpper(parsed.Label))
	if !model.ValidSentimentLabels[label] {
		label = model.SentimentNeutral
	}

	score := math.Max(0.0, math.Min(1.0, parsed.Score))
	score = math.Round(score*10000) / 10000

	return model.SentimentResult{Label: label, Score: score}
}
