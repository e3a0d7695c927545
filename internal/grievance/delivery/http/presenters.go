package http

import (
	"customer-care-assistant/internal/grievance"
)

// --- Request DTOs ---

type submitReq struct {
	GrievanceText string `json:"grievance_text" binding:"required,max=8000"`
	CustomerID    string `json:"customer_id"    binding:"max=255"`
}

func (r submitReq) toInput() grievance.ClassifyInput {
	return grievance.ClassifyInput{
		GrievanceText: r.GrievanceText,
		CustomerID:    r.CustomerID,
	}
}

// --- Response DTOs ---

type submitResp struct {
	Classification   string   `json:"classification"`
	SuggestedRouting []string `json:"suggested_routing"`
	Priority         string   `json:"priority"`
}

func (h *handler) newSubmitResp(out grievance.ClassifyOutput) submitResp {
	return submitResp{
		Classification:   out.Result.Classification,
		SuggestedRouting: out.Result.SuggestedRouting,
		Priority:         string(out.Result.Priority),
	}
}
