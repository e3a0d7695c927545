package usecase

import (
	"context"
	"strings"

	"customer-care-assistant/internal/callanalysis"
	"customer-care-assistant/internal/model"
	"customer-care-assistant/internal/nlp"
)

const (
	summaryTemperature   = 0.4
	tagsTemperature      = 0.0
	sentimentTemperature = 0.0
)

// Analyze runs the three transcript sub-tasks sequentially: summary,
// tag/entity extraction and overall sentiment. The tag list doubles as the
// key-entity list; the extraction prompt asks for both in one pass.
func (uc *implUseCase) Analyze(ctx context.Context, input callanalysis.AnalyzeInput) (callanalysis.AnalyzeOutput, error) {
	if strings.TrimSpace(input.TranscriptText) == "" {
		return callanalysis.AnalyzeOutput{}, callanalysis.ErrEmptyTranscript
	}

	uc.l.Infof(ctx, "Analyzing call transcript %s", input.CallID)

	summary := uc.gw.Complete(ctx, nlp.BuildSummaryPrompt(input.TranscriptText), summaryTemperature)

	tags := nlp.ParseTags(uc.gw.Complete(ctx, nlp.BuildTagsPrompt(input.TranscriptText), tagsTemperature))

	sentiment := nlp.ParseSentiment(uc.gw.Complete(ctx, nlp.BuildSentimentPrompt(input.TranscriptText), sentimentTemperature))
	uc.l.Infof(ctx, "Call %s overall sentiment: %s (score: %v)", input.CallID, sentiment.Label, sentiment.Score)

	return callanalysis.AnalyzeOutput{
		Report: model.CallReport{
			Summary:     summary,
			Tags:        tags,
			Sentiment:   sentiment,
			KeyEntities: tags,
		},
	}, nil
}
