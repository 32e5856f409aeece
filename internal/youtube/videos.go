package youtube

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"
)

// Video is one entry of recent-videos.json.
type Video struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Channel     string `json:"channel"`
	Description string `json:"description"`
}

// ID returns the video id embedded in URL.
func (v Video) ID() string { return VideoID(v.URL) }

// WatchURL is the canonical watch URL for a video id.
func WatchURL(id string) string { return "https://www.youtube.com/watch?v=" + id }

var videoIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// VideoID extracts the id from watch, youtu.be and shorts URLs. Anything
// other than letters, digits, '-' and '_' yields "".
func VideoID(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	var id string
	switch {
	case host == "youtu.be":
		id = strings.Trim(u.Path, "/")
	case strings.HasPrefix(u.Path, "/shorts/"):
		id = strings.Trim(strings.TrimPrefix(u.Path, "/shorts/"), "/")
	default:
		id = u.Query().Get("v")
	}
	if !videoIDRe.MatchString(id) {
		return ""
	}
	return id
}

func WriteVideos(path string, videos []Video) error {
	if videos == nil {
		videos = []Video{}
	}
	data, err := json.MarshalIndent(videos, "", "  ")
	if err != nil {
		return fmt.Errorf("encode videos: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write videos: %w", err)
	}
	return nil
}

func ReadVideos(path string) ([]Video, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read videos: %w", err)
	}
	var videos []Video
	if err := json.Unmarshal(data, &videos); err != nil {
		return nil, fmt.Errorf("decode videos: %w", err)
	}
	return videos, nil
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
