package callanalysis

import "customer-care-assistant/internal/model"

// AnalyzeInput is one call transcript to analyze.
type AnalyzeInput struct {
	TranscriptText string
	CallID         string
}

// AnalyzeOutput is the completed call report.
type AnalyzeOutput struct {
	Report model.CallReport
}
