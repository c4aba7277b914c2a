package services

// Gemini exposes an OpenAI-compatible surface alongside its native API.
const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"

// NewGeminiService creates a Narrator backed by Google Gemini.
func NewGeminiService(apiKey, model string) Narrator {
	return newOpenAIClient("gemini", geminiBaseURL, apiKey, model)
}
