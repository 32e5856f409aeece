package llm

import "context"

type Message struct {
	Role    string
	Content string
}

// Response carries the report text and token usage used for cost accounting.
type Response struct {
	Content          string
	Model            string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Client generates one video report per call.
type Client interface {
	Generate(ctx context.Context, messages []Message) (Response, error)
}
