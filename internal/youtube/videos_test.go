package youtube

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestVideoID(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtube.com/watch?list=x&v=abc", "abc"},
		{"https://youtu.be/xyz123", "xyz123"},
		{"https://www.youtube.com/shorts/short1/", "short1"},
		{"https://example.com/page", ""},
		{"::bad", ""},
		{"https://www.youtube.com/watch?v=../../../escaped", ""},
		{"https://youtu.be/a/b", ""},
		{`https://www.youtube.com/watch?v=a\b`, ""},
	}
	for _, tt := range tests {
		if got := VideoID(tt.url); got != tt.want {
			t.Errorf("VideoID(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestWriteReadVideos(t *testing.T) {
	p := filepath.Join(t.TempDir(), "recent-videos.json")
	in := []Video{{Title: "T", URL: WatchURL("id1"), Channel: "C", Description: "D"}}
	if err := WriteVideos(p, in); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, _ := os.ReadFile(p)
	for _, key := range []string{`"title"`, `"url"`, `"channel"`, `"description"`} {
		if !strings.Contains(string(data), key) {
			t.Fatalf("missing key %s in %s", key, data)
		}
	}
	out, err := ReadVideos(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(out) != 1 || out[0] != in[0] || out[0].ID() != "id1" {
		t.Fatalf("unexpected videos: %+v", out)
	}
}

func TestWriteVideos_EmptyIsArray(t *testing.T) {
	p := filepath.Join(t.TempDir(), "v.json")
	if err := WriteVideos(p, nil); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, _ := os.ReadFile(p)
	if string(data) != "[]" {
		t.Fatalf("want [], got %s", data)
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := truncateRunes("héllo", 2); got != "hé" {
		t.Fatalf("want hé, got %q", got)
	}
	if got := truncateRunes("ok", 5); got != "ok" {
		t.Fatalf("want ok, got %q", got)
	}
}
