package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"personal-kb/internal/config"
)

func TestOpenAIClient_Generate(t *testing.T) {
	var gotReferer string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReferer = r.Header.Get("HTTP-Referer")
		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode: %v", err)
		}
		if req.Model != "test-model" || len(req.Messages) != 2 {
			t.Errorf("unexpected request: %+v", req)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"# Report"}}],
"usage":{"prompt_tokens":10,"completion_tokens":5,"total_tokens":15}}`))
	}))
	defer srv.Close()

	c := NewOpenAI("key", srv.URL, "test-model", "https://kb.local", "")
	resp, err := c.Generate(context.Background(), []Message{
		{Role: "system", Content: "s"},
		{Role: "user", Content: "u"},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if resp.Content != "# Report" || resp.TotalTokens != 15 || resp.Model != "test-model" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if gotReferer != "https://kb.local" {
		t.Fatalf("referer header not injected: %q", gotReferer)
	}
}

func TestFactory_CreateClient(t *testing.T) {
	f := NewFactory(config.LLM{OpenAIAPIKey: "k", OpenAIModel: "m"})
	c, err := f.CreateClient(config.ProviderOpenAI, "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if oc, ok := c.(*OpenAIClient); !ok || oc.model != "m" {
		t.Fatalf("unexpected client %#v", c)
	}
	if _, err := f.CreateClient("bogus", ""); err == nil {
		t.Fatalf("want error for unknown provider")
	}
	if _, err := NewFactory(config.LLM{}).CreateClient(config.ProviderOpenAI, "m"); err == nil {
		t.Fatalf("want error without api key")
	}
	if _, err := f.CreateClient(config.ProviderYandex, ""); err == nil {
		t.Fatalf("want error without yandex credentials")
	}
}
