package usecase

import (
	"context"
	"fmt"
	"strings"

	"customer-care-assistant/internal/chat"
	"customer-care-assistant/internal/escalation"
	"customer-care-assistant/internal/nlp"
)

// EscalationDisclosure is appended to the generated reply whenever the
// escalation rules trigger.
const EscalationDisclosure = "\n\n**AI Escalation:** It seems your query requires human assistance. I'm escalating this to a human agent now and providing them with our conversation history."

const (
	defaultUserID = "guest_user"

	sentimentTemperature = 0.0
	intentTemperature    = 0.0
	replyTemperature     = 0.7
)

// Process runs one chat turn. Each sub-task is one sequential gateway round
// trip; upstream failures surface as error-labeled results, never as a
// request failure.
func (uc *implUseCase) Process(ctx context.Context, input chat.ProcessInput) (chat.ProcessOutput, error) {
	if strings.TrimSpace(input.Message) == "" && !input.IsVoiceInput {
		return chat.ProcessOutput{}, chat.ErrEmptyMessage
	}

	userID := input.UserID
	if userID == "" {
		userID = defaultUserID
	}

	processed := input.Message
	if input.IsVoiceInput {
		if input.SimulatedVoiceText != "" {
			processed = input.SimulatedVoiceText
		} else {
			processed = uc.transcriber.Transcribe("dummy_audio.wav")
		}
		uc.l.Infof(ctx, "Simulated voice input transcribed to: %q", processed)
	}

	uc.l.Infof(ctx, "Processing chat message from user %s (voice: %v)", userID, input.IsVoiceInput)

	// 1. Emotional tone detection
	sentiment := nlp.ParseSentiment(uc.gw.Complete(ctx, nlp.BuildSentimentPrompt(processed), sentimentTemperature))
	uc.l.Infof(ctx, "Sentiment detected: %s (score: %v)", sentiment.Label, sentiment.Score)

	// 2. Intent recognition
	intent := nlp.ParseIntent(uc.gw.Complete(ctx, nlp.BuildIntentPrompt(processed), intentTemperature))
	uc.l.Infof(ctx, "Intent detected: %s", intent)

	// 3. Generative reply, raw passthrough
	reply := uc.gw.Complete(ctx, nlp.BuildReplyPrompt(string(intent), string(sentiment.Label), processed), replyTemperature)

	notes := fmt.Sprintf(
		"AI considered user '%s's emotional tone ('%s') and derived intent ('%s'). "+
			"For advanced personalization, a full user profile (e.g., past issues, product ownership) "+
			"and deeper conversation history would be used to refine this generative response, "+
			"possibly through an agent accessing a knowledge base or CRM.",
		userID, sentiment.Label, intent,
	)

	// 4. Auto-escalation over the caller-owned history plus this message
	history := append(append([]string{}, input.History...), processed)
	escalate := escalation.Decide(escalation.Input{
		SentimentLabel: sentiment.Label,
		SentimentScore: sentiment.Score,
		Intent:         intent,
		History:        history,
	})
	if escalate {
		reply += EscalationDisclosure
		uc.l.Warnf(ctx, "Escalation triggered for user %s", userID)
	}

	return chat.ProcessOutput{
		Response:         reply,
		Sentiment:        sentiment,
		Escalate:         escalate,
		Intent:           intent,
		RefinementNotes:  notes,
		ProcessedMessage: processed,
	}, nil
}
