package youtube

import (
	"bytes"
	"strings"
	"testing"
)

func TestWritePromptInstructions(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePromptInstructions(&buf, "recent-videos.json"); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"last 50 watched videos",
		"Filter out any political content",
		`"url": "https://www.youtube.com/watch?v=..."`,
		"Save to: recent-videos.json",
		"https://gemini.google.com",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}
