package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/api/option"
)

func newTestLister(t *testing.T, h http.HandlerFunc) *Lister {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	l, err := NewLister(context.Background(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	if err != nil {
		t.Fatalf("new lister: %v", err)
	}
	return l
}

func TestLikedVideos_Paginates(t *testing.T) {
	long := strings.Repeat("x", 250)
	var pages []string
	l := newTestLister(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/channels"):
			if r.URL.Query().Get("mine") != "true" {
				t.Errorf("channels.list without mine=true")
			}
			fmt.Fprint(w, `{"items":[{"id":"UC1"}]}`)
		case strings.HasSuffix(r.URL.Path, "/videos"):
			if r.URL.Query().Get("myRating") != "like" {
				t.Errorf("videos.list without myRating=like")
			}
			tok := r.URL.Query().Get("pageToken")
			pages = append(pages, tok)
			if tok == "" {
				fmt.Fprintf(w, `{"nextPageToken":"p2","items":[
{"id":"v1","snippet":{"title":"One","channelTitle":"Chan","description":%q}},
{"id":"v2","snippet":{"title":"Two","channelTitle":"Chan","description":"d2"}}]}`, long)
				return
			}
			fmt.Fprint(w, `{"items":[{"id":"v3","snippet":{"title":"Three","channelTitle":"Other","description":"d3"}}]}`)
		default:
			http.NotFound(w, r)
		}
	})

	videos, err := l.LikedVideos(context.Background(), 10)
	if err != nil {
		t.Fatalf("liked: %v", err)
	}
	if len(videos) != 3 {
		t.Fatalf("want 3 videos, got %d", len(videos))
	}
	if videos[0].URL != "https://www.youtube.com/watch?v=v1" || videos[2].Channel != "Other" {
		t.Fatalf("unexpected videos: %+v", videos)
	}
	if len([]rune(videos[0].Description)) != 200 {
		t.Fatalf("description not truncated: %d", len(videos[0].Description))
	}
	if len(pages) != 2 || pages[1] != "p2" {
		t.Fatalf("unexpected paging: %v", pages)
	}
}

func TestLikedVideos_StopsAtMax(t *testing.T) {
	l := newTestLister(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if strings.HasSuffix(r.URL.Path, "/channels") {
			fmt.Fprint(w, `{"items":[{"id":"UC1"}]}`)
			return
		}
		if got := r.URL.Query().Get("maxResults"); got != "1" {
			t.Errorf("want maxResults=1, got %s", got)
		}
		fmt.Fprint(w, `{"nextPageToken":"more","items":[{"id":"v1","snippet":{"title":"One"}}]}`)
	})
	videos, err := l.LikedVideos(context.Background(), 1)
	if err != nil {
		t.Fatalf("liked: %v", err)
	}
	if len(videos) != 1 {
		t.Fatalf("want 1 video, got %d", len(videos))
	}
}

func TestLikedVideos_NoChannel(t *testing.T) {
	l := newTestLister(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"items":[]}`)
	})
	_, err := l.LikedVideos(context.Background(), 5)
	if !errors.Is(err, ErrNoChannel) || !errors.Is(err, ErrAPI) {
		t.Fatalf("want ErrNoChannel wrapped as ErrAPI, got %v", err)
	}
}

func TestLikedVideos_APIFailure(t *testing.T) {
	l := newTestLister(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"error":{"code":403,"message":"quotaExceeded"}}`)
	})
	_, err := l.LikedVideos(context.Background(), 5)
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Op != "channels.list" {
		t.Fatalf("want APIError for channels.list, got %v", err)
	}
	if !strings.Contains(err.Error(), "quotaExceeded") {
		t.Fatalf("upstream message lost: %v", err)
	}
}
