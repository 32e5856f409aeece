package llm

import (
	"fmt"
	"strings"

	"personal-kb/internal/config"
)

// Factory creates LLM clients from the environment config.
type Factory struct {
	cfg config.LLM
}

func NewFactory(cfg config.LLM) *Factory {
	return &Factory{cfg: cfg}
}

// CreateClient builds a client for provider. An empty model falls back to
// OPENAI_MODEL; it is ignored by the Yandex provider.
func (f *Factory) CreateClient(provider config.LLMProvider, model string) (Client, error) {
	if model == "" {
		model = f.cfg.OpenAIModel
	}
	switch config.LLMProvider(strings.ToLower(string(provider))) {
	case config.ProviderOpenAI:
		if f.cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for provider %s", provider)
		}
		return NewOpenAI(f.cfg.OpenAIAPIKey, f.cfg.OpenAIBaseURL, model, f.cfg.OpenRouterReferrer, f.cfg.OpenRouterTitle), nil
	case config.ProviderYandex:
		return NewYandex(f.cfg.YandexOAuthToken, f.cfg.YandexFolderID)
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", provider)
	}
}
