package http

import (
	"customer-care-assistant/internal/chat"
)

// --- Request DTOs ---

type chatReq struct {
	Message            string   `json:"message"             binding:"required_without=IsVoiceInput,max=4000"`
	UserID             string   `json:"user_id"             binding:"max=255"`
	IsVoiceInput       bool     `json:"is_voice_input"`
	SimulatedVoiceText string   `json:"simulated_voice_text" binding:"max=4000"`
	History            []string `json:"history"             binding:"max=50,dive,max=4000"`
}

func (r chatReq) toInput() chat.ProcessInput {
	return chat.ProcessInput{
		Message:            r.Message,
		UserID:             r.UserID,
		IsVoiceInput:       r.IsVoiceInput,
		SimulatedVoiceText: r.SimulatedVoiceText,
		History:            r.History,
	}
}

// --- Response DTOs ---

type sentimentResp struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type chatResp struct {
	Response                  string        `json:"response"`
	Sentiment                 sentimentResp `json:"sentiment"`
	EscalateToHuman           bool          `json:"escalate_to_human"`
	DetectedIntent            string        `json:"detected_intent"`
	GenerativeRefinementNotes string        `json:"generative_refinement_notes"`
	ProcessedMessage          string        `json:"processed_message"`
}

func (h *handler) newChatResp(out chat.ProcessOutput) chatResp {
	return chatResp{
		Response: out.Response,
		Sentiment: sentimentResp{
			Label: string(out.Sentiment.Label),
			Score: out.Sentiment.Score,
		},
		EscalateToHuman:           out.Escalate,
		DetectedIntent:            string(out.Intent),
		GenerativeRefinementNotes: out.RefinementNotes,
		ProcessedMessage:          out.ProcessedMessage,
	}
}
