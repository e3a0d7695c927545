package callanalysis

import "context"

// UseCase analyzes call transcripts: summary, tags/entities and overall
// sentiment.
type UseCase interface {
	Analyze(ctx context.Context, input AnalyzeInput) (AnalyzeOutput, error)
}
