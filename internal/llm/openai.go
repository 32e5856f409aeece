package llm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sashabaranov/go-openai"
)

type OpenAIClient struct {
	client *openai.Client
	model  string
}

type headerTransport struct {
	rt      http.RoundTripper
	headers http.Header
}

func (t headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	cl := req.Clone(req.Context())
	for k, vs := range t.headers {
		for _, v := range vs {
			cl.Header.Add(k, v)
		}
	}
	return t.rt.RoundTrip(cl)
}

// NewOpenAI talks to any OpenAI-compatible endpoint (OpenAI, OpenRouter,
// Gemini's compatibility API) depending on baseURL.
func NewOpenAI(apiKey, baseURL, model, referrer, title string) *OpenAIClient {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	// Optional headers for OpenRouter
	if referrer != "" || title != "" {
		h := http.Header{}
		if referrer != "" {
			h.Set("HTTP-Referer", referrer)
		}
		if title != "" {
			h.Set("X-Title", title)
		}
		config.HTTPClient = &http.Client{Transport: headerTransport{rt: http.DefaultTransport, headers: h}}
	}
	return &OpenAIClient{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func (c *OpenAIClient) Generate(ctx context.Context, messages []Message) (Response, error) {
	oaMsgs := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		oaMsgs = append(oaMsgs, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: oaMsgs,
	})
	if err != nil {
		return Response{}, fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Response{}, fmt.Errorf("chat completion returned no choices")
	}

	return Response{
		Content:          resp.Choices[0].Message.Content,
		Model:            c.model,
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		TotalTokens:      resp.Usage.TotalTokens,
	}, nil
}
