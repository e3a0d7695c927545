package nlp

import (
	"encoding/json"
	"strings"

	"customer-care-assistant/internal/gateway"
	"customer-care-assistant/internal/model"
)

// Grievance fallback values.
const (
	grievanceUnclassified = "Unclassified"
	grievanceParseError   = "Parsing Error"
	grievanceGenericError = "Error"
)

var (
	defaultRouting = []string{"General Support"}
	unknownRouting = []string{"Unknown"}
)

// ParseGrievance coerces raw model text into a GrievanceResult. Total
// function with documented fallbacks: gateway sentinel text → "Error",
// unparseable text → "Parsing Error", both routed to ["Unknown"] at Low
// priority. A scalar suggested_routing is wrapped into a one-element list;
// missing fields get defaults (Unclassified / ["General Support"] / Low).
func ParseGrievance(raw string) model.GrievanceResult {
	if gateway.IsError(raw) {
		return model.GrievanceResult{
			Classification:   grievanceGenericError,
			SuggestedRouting: unknownRouting,
			Priority:         model.PriorityLow,
		}
	}

	jsonStr, ok := ExtractJSONObject(raw)
	if !ok {
		return parseFailure()
	}

	var parsed struct {
		Classification   string          `json:"classification"`
		SuggestedRouting json.RawMessage `json:"suggested_routing"`
		Priority         string          `json:"priority"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &parsed); err != nil {
		return parseFailure()
	}

	classification := parsed.Classification
	if classification == "" {
		classification = grievanceUnclassified
	}

	return model.GrievanceResult{
		Classification:   classification,
		SuggestedRouting: coerceRouting(parsed.SuggestedRouting),
		Priority:         coercePriority(parsed.Priority),
	}
}

func parseFailure() model.GrievanceResult {
	return model.GrievanceResult{
		Classification:   grievanceParseError,
		SuggestedRouting: unknownRouting,
		Priority:         model.PriorityLow,
	}
}

// coerceRouting accepts either a JSON array of strings or a single scalar
// string; routing is always represented as a non-empty sequence.
func coerceRouting(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return defaultRouting
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		if len(list) == 0 {
			return defaultRouting
		}
		return list
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil && single != "" {
		return []string{single}
	}

	return defaultRouting
}

func coercePriority(raw string) model.GrievancePriority {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "medium":
		return model.PriorityMedium
	case "high":
		return model.PriorityHigh
	default:
		return model.PriorityLow
	}
}
