package chat

import "customer-care-assistant/internal/model"

// ProcessInput is one incoming chat message. History is the caller-owned
// ordered log of prior message texts; the server retains nothing between
// requests.
type ProcessInput struct {
	Message            string
	UserID             string
	IsVoiceInput       bool
	SimulatedVoiceText string
	History            []string
}

// ProcessOutput is the completed chat turn returned to the caller.
type ProcessOutput struct {
	Response         string
	Sentiment        model.SentimentResult
	Escalate         bool
	Intent           model.Intent
	RefinementNotes  string
	ProcessedMessage string
}
