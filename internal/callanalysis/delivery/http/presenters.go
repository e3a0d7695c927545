package http

import (
	"customer-care-assistant/internal/callanalysis"
)

// --- Request DTOs ---

type analyzeReq struct {
	TranscriptText string `json:"transcript_text" binding:"required,max=32000"`
	CallID         string `json:"call_id"         binding:"max=255"`
}

func (r analyzeReq) toInput() callanalysis.AnalyzeInput {
	return callanalysis.AnalyzeInput{
		TranscriptText: r.TranscriptText,
		CallID:         r.CallID,
	}
}

// --- Response DTOs ---

type sentimentResp struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type analyzeResp struct {
	Summary     string        `json:"summary"`
	Tags        []string      `json:"tags"`
	Sentiment   sentimentResp `json:"sentiment_overall"`
	KeyEntities []string      `json:"key_entities"`
}

func (h *handler) newAnalyzeResp(out callanalysis.AnalyzeOutput) analyzeResp {
	return analyzeResp{
		Summary: out.Report.Summary,
		Tags:    out.Report.Tags,
		Sentiment: sentimentResp{
			Label: string(out.Report.Sentiment.Label),
			Score: out.Report.Sentiment.Score,
		},
		KeyEntities: out.Report.KeyEntities,
	}
}
