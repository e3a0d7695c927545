package grievance

import "context"

// UseCase classifies grievances and suggests department routing.
type UseCase interface {
	Classify(ctx context.Context, input ClassifyInput) (ClassifyOutput, error)
}
