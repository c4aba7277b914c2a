package services

const groqBaseURL = "https://api.groq.com/openai/v1"

// NewGroqService creates a Narrator backed by Groq.
func NewGroqService(apiKey, model string) Narrator {
	return newOpenAIClient("groq", groqBaseURL, apiKey, model)
}
