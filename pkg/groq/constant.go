package groq

import "time"

const (
	// DefaultModel is the default model to use
	DefaultModel = "llama3-8b-8192"

	// DefaultBaseURL is the default Groq API endpoint (OpenAI-compatible)
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second
)

// Message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
