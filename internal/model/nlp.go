package model

// SentimentLabel is the emotional tone assigned to a piece of customer text.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "POSITIVE"
	SentimentNeutral  SentimentLabel = "NEUTRAL"
	SentimentNegative SentimentLabel = "NEGATIVE"
	SentimentMixed    SentimentLabel = "MIXED"

	// SentimentErrorParse marks model output that could not be parsed.
	SentimentErrorParse SentimentLabel = "ERROR_PARSE"
	// SentimentErrorGeneric marks any other upstream failure.
	SentimentErrorGeneric SentimentLabel = "ERROR_GENERIC"
)

// ValidSentimentLabels are the labels the model is allowed to emit.
var ValidSentimentLabels = map[SentimentLabel]bool{
	SentimentPositive: true,
	SentimentNeutral:  true,
	SentimentNegative: true,
	SentimentMixed:    true,
}

// SentimentResult is the coerced sentiment of one text.
// Score is always within [0, 1], rounded to 4 decimal places.
type SentimentResult struct {
	Label SentimentLabel `json:"label"`
	Score float64        `json:"score"`
}

// Intent is one of the closed set of intents the assistant understands.
type Intent string

const (
	IntentAccountAccess     Intent = "account_access"
	IntentOrderStatus       Intent = "order_status"
	IntentReturnsAndRefunds Intent = "returns_and_refunds"
	IntentTechnicalSupport  Intent = "technical_support"
	IntentBillingQuery      Intent = "billing_query"
	IntentGeneralQuery      Intent = "general_query"
	IntentEscalationRequest Intent = "escalation_request"
	IntentProductInquiry    Intent = "product_inquiry"
	IntentServiceIssue      Intent = "service_issue"
	IntentGreeting          Intent = "greeting"
	IntentFarewell          Intent = "farewell"
)

// ValidIntents is the closed intent catalog. Anything outside it collapses
// to IntentGeneralQuery.
var ValidIntents = map[Intent]bool{
	IntentAccountAccess:     true,
	IntentOrderStatus:       true,
	IntentReturnsAndRefunds: true,
	IntentTechnicalSupport:  true,
	IntentBillingQuery:      true,
	IntentGeneralQuery:      true,
	IntentEscalationRequest: true,
	IntentProductInquiry:    true,
	IntentServiceIssue:      true,
	IntentGreeting:          true,
	IntentFarewell:          true,
}

// GrievancePriority is the priority assigned to a grievance.
type GrievancePriority string

const (
	PriorityLow    GrievancePriority = "Low"
	PriorityMedium GrievancePriority = "Medium"
	PriorityHigh   GrievancePriority = "High"
)

// GrievanceResult is the coerced grievance classification.
// SuggestedRouting is always non-empty; order is as produced by the model
// and duplicates are allowed.
type GrievanceResult struct {
	Classification   string            `json:"classification"`
	SuggestedRouting []string          `json:"suggested_routing"`
	Priority         GrievancePriority `json:"priority"`
}

// ChatTurn is one processed chat exchange. Turns are built per request and
// returned to the caller; nothing is retained server-side. The caller owns
// any ordered history of turns.
type ChatTurn struct {
	Message          string
	ProcessedMessage string
	Sentiment        SentimentResult
	Intent           Intent
	Response         string
	Escalate         bool
	RefinementNotes  string
}

// CallReport is the analysis produced for one call transcript.
type CallReport struct {
	Summary     string
	Tags        []string
	Sentiment   SentimentResult
	KeyEntities []string
}
