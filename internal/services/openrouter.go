package services

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// NewOpenRouterService creates a Narrator backed by OpenRouter.
func NewOpenRouterService(apiKey, model string) Narrator {
	return newOpenAIClient("openrouter", openRouterBaseURL, apiKey, model)
}
