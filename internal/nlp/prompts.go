package nlp

import (
	"fmt"
	"strings"
)

// DepartmentCatalog is the fixed set of routing departments offered to the
// model for grievance classification.
var DepartmentCatalog = []string{
	"Billing Department (for payment, charges, invoices)",
	"Technical Support (for service issues, outages, technical problems)",
	"Customer Service (for general inquiries, account issues)",
	"Product Support (for product-specific issues)",
	"Legal Department (for legal concerns, compliance issues)",
	"Safety Department (for safety hazards, security concerns)",
	"Quality Assurance (for service quality issues)",
	"Network Operations (for network-related issues)",
	"Sales Department (for sales-related inquiries)",
	"Compliance Department (for regulatory compliance issues)",
}

const sentimentPromptTemplate = `Analyze the emotional tone of the following customer text.
Respond ONLY with a JSON object containing 'label' (POSITIVE, NEUTRAL, NEGATIVE, or MIXED) and a 'score' (0.0 to 1.0, representing confidence or intensity).
DO NOT include any explanation or additional text. Return ONLY the JSON object.

Example responses:
{"label": "POSITIVE", "score": 0.95}
{"label": "NEGATIVE", "score": 0.88}
{"label": "MIXED", "score": 0.7}

Text: "%s"`

// BuildSentimentPrompt builds the sentiment analysis prompt.
func BuildSentimentPrompt(text string) string {
	return fmt.Sprintf(sentimentPromptTemplate, text)
}

const intentPromptTemplate = `Analyze the following customer message and determine the primary intent.
Choose one from the following categories:
- account_access (e.g., password reset, login issues, account details)
- order_status (e.g., tracking order, delivery updates)
- returns_and_refunds (e.g., return policy, refund status, exchange)
- technical_support (e.g., internet down, bug report, device malfunction)
- billing_query (e.g., incorrect charge, invoice explanation, payment issues)
- general_query (for anything not specifically covered)
- escalation_request (e.g., 'speak to human', 'talk to agent', 'connect me')
- product_inquiry (e.g., asking about product features, compatibility)
- service_issue (e.g., gas leak, appliance not working, service quality)
- greeting (e.g., hello, hi, hey)
- farewell (e.g., goodbye, bye)

Respond ONLY with the single, most relevant intent keyword (e.g., 'technical_support').

Message: "%s"
Intent:`

// BuildIntentPrompt builds the intent detection prompt.
func BuildIntentPrompt(message string) string {
	return fmt.Sprintf(intentPromptTemplate, message)
}

const replyPromptTemplate = `You are an empathetic and helpful customer support AI.
The user's intent is '%s' and their emotional tone is '%s'.
Their original message was: "%s"

Based on this information, generate a concise and helpful response.
If the tone is negative, acknowledge their frustration and assure them of help.
If the intent is a specific issue (like 'service_issue' or 'technical_support'),
offer relevant steps or ask for more details to diagnose, or suggest next steps like scheduling a technician.
If the intent is 'escalation_request', inform them you are connecting them to a human and collect necessary details if possible.
Keep the response under 100 words.

Response:`

// BuildReplyPrompt builds the generative reply prompt from the detected
// intent and sentiment.
func BuildReplyPrompt(intent, sentimentLabel, originalMessage string) string {
	return fmt.Sprintf(replyPromptTemplate, intent, sentimentLabel, originalMessage)
}

const grievancePromptTemplate = `You are a grievance management expert. Classify the following customer grievance,
suggest one or more suitable routing departments (if the issue spans multiple departments),
and assign a priority (Low, Medium, High).
Respond ONLY with a JSON object like this:
{
    "classification": "...",
    "suggested_routing": ["Department1", "Department2", ...],
    "priority": "..."
}

Consider these departments:
%s

If the grievance involves multiple departments, list all relevant ones.
For example, if a customer reports a billing error that also involves a technical issue,
the routing should include both Billing Department and Technical Support.

Grievance Text: "%s"`

// BuildGrievancePrompt builds the grievance classification prompt.
func BuildGrievancePrompt(text string) string {
	departments := "- " + strings.Join(DepartmentCatalog, "\n- ")
	return fmt.Sprintf(grievancePromptTemplate, departments, text)
}

const summaryPromptTemplate = `Summarize the following call transcript concisely and professionally.
Keep the summary to 3-5 sentences.

Transcript: "%s"
Summary:`

// BuildSummaryPrompt builds the transcript summarization prompt.
func BuildSummaryPrompt(text string) string {
	return fmt.Sprintf(summaryPromptTemplate, text)
}

const tagsPromptTemplate = `Analyze the following text and extract key tags (e.g., 'billing', 'technical issue', 'delivery', 'service quality', 'account issue', 'product issue')
and important entities (e.g., 'order number', 'account ID', 'product name', 'date', 'amount', 'service type').
Respond ONLY with a comma-separated list of tags and entities.
Example: "billing, incorrect charge, account ID: 12345, internet problem, service type: broadband"

Text: "%s"
Tags and Entities:`

// BuildTagsPrompt builds the tag and entity extraction prompt.
func BuildTagsPrompt(text string) string {
	return fmt.Sprintf(tagsPromptTemplate, text)
}

const callReportPromptTemplate = `You are a customer support quality analyst. Read the following transcript and extract:
- Short summary
- Sentiment (Positive / Neutral / Negative)
- Issue Type (Billing, Technical, Emotional, Other)
- Urgency (Low / Medium / High)

Transcript:
%s`

// BuildCallReportPrompt builds the single-shot quality report prompt used by
// the analyzer CLI.
func BuildCallReportPrompt(transcript string) string {
	return fmt.Sprintf(callReportPromptTemplate, transcript)
}
