package grievance

import "customer-care-assistant/internal/model"

// ClassifyInput is one submitted grievance.
type ClassifyInput struct {
	GrievanceText string
	CustomerID    string
}

// ClassifyOutput is the coerced classification result.
type ClassifyOutput struct {
	Result model.GrievanceResult
}
