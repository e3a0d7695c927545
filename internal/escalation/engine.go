// Package escalation decides when a conversation needs human-agent handoff.
// The decision is a pure function over the coerced NLP results and the
// caller-owned message history; no state is kept between calls.
package escalation

import (
	"strings"

	"customer-care-assistant/internal/model"
)

// hazardKeywords trigger escalation when found anywhere in the history,
// case-insensitively.
var hazardKeywords = []string{
	"urgent", "critical", "unacceptable", "now", "immediately",
	"hazard", "fire", "danger",
}

// complexIntents are intents where strong negative sentiment warrants a
// human agent.
var complexIntents = map[model.Intent]bool{
	model.IntentTechnicalSupport:  true,
	model.IntentServiceIssue:      true,
	model.IntentBillingQuery:      true,
	model.IntentReturnsAndRefunds: true,
}

// Input carries everything the rule engine looks at. History is the ordered
// log of prior message texts owned by the caller; in the current product it
// is the single in-flight message.
type Input struct {
	SentimentLabel model.SentimentLabel
	SentimentScore float64
	Intent         model.Intent
	History        []string
}

// Decide evaluates the escalation rules in order and returns true on the
// first match.
//
// Rules 2 and 4 overlap: rule 4 covers technical_support and service_issue
// at any score, making rule 2's threshold redundant for those two intents.
// Both rules are kept verbatim pending product clarification.
func Decide(in Input) bool {
	// Rule 1: explicit request for a human.
	if in.Intent == model.IntentEscalationRequest {
		return true
	}

	// Rule 2: very negative with high confidence on a complex issue.
	if in.SentimentLabel == model.SentimentNegative && in.SentimentScore > 0.8 && complexIntents[in.Intent] {
		return true
	}

	// Rule 3: hazard/urgency keywords anywhere in the history.
	for _, entry := range in.History {
		lowered := strings.ToLower(entry)
		for _, keyword := range hazardKeywords {
			if strings.Contains(lowered, keyword) {
				return true
			}
		}
	}

	// Rule 4: negative sentiment on an intent needing deep human interaction.
	if (in.Intent == model.IntentServiceIssue || in.Intent == model.IntentTechnicalSupport) &&
		in.SentimentLabel == model.SentimentNegative {
		return true
	}

	return false
}
