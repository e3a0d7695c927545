package usecase

import (
	"context"
	"strings"

	"customer-care-assistant/internal/grievance"
	"customer-care-assistant/internal/nlp"
)

const classifyTemperature = 0.0

// Classify sends the grievance through one classification round trip and
// coerces the result. Upstream failures degrade into the error
// classification rather than failing the request.
func (uc *implUseCase) Classify(ctx context.Context, input grievance.ClassifyInput) (grievance.ClassifyOutput, error) {
	if strings.TrimSpace(input.GrievanceText) == "" {
		return grievance.ClassifyOutput{}, grievance.ErrEmptyGrievance
	}

	uc.l.Infof(ctx, "Classifying grievance for customer %s", input.CustomerID)

	raw := uc.gw.Complete(ctx, nlp.BuildGrievancePrompt(input.GrievanceText), classifyTemperature)
	result := nlp.ParseGrievance(raw)

	uc.l.Infof(ctx, "Grievance classified as %q, routed to %v (priority %s)",
		result.Classification, result.SuggestedRouting, result.Priority)

	return grievance.ClassifyOutput{Result: result}, nil
}
