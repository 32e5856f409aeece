package youtube

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const (
	maxPageSize       = 50
	descriptionLength = 200
)

// Lister reads the authorised user's videos through the YouTube Data API.
type Lister struct {
	service *youtube.Service
}

// NewLister builds the API client. Pass option.WithHTTPClient with an
// OAuth client from Authorizer.Client.
func NewLister(ctx context.Context, opts ...option.ClientOption) (*Lister, error) {
	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}
	return &Lister{service: service}, nil
}

// LikedVideos returns up to maxResults liked videos. Watch history is not
// exposed by the API, so likes stand in for it.
func (l *Lister) LikedVideos(ctx context.Context, maxResults int) ([]Video, error) {
	channels, err := l.service.Channels.List([]string{"contentDetails"}).Mine(true).Context(ctx).Do()
	if err != nil {
		return nil, &APIError{Op: "channels.list", Err: err}
	}
	if len(channels.Items) == 0 {
		return nil, &APIError{Op: "channels.list", Err: ErrNoChannel}
	}

	log.Printf("📺 Fetching liked videos (max %d)", maxResults)

	var videos []Video
	pageToken := ""
	for len(videos) < maxResults {
		size := maxResults - len(videos)
		if size > maxPageSize {
			size = maxPageSize
		}
		call := l.service.Videos.List([]string{"snippet"}).
			MyRating("like").
			MaxResults(int64(size)).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		resp, err := call.Do()
		if err != nil {
			return nil, &APIError{Op: "videos.list", Err: err}
		}
		for _, item := range resp.Items {
			if item.Snippet == nil {
				continue
			}
			videos = append(videos, Video{
				Title:       item.Snippet.Title,
				URL:         WatchURL(item.Id),
				Channel:     item.Snippet.ChannelTitle,
				Description: truncateRunes(item.Snippet.Description, descriptionLength),
			})
			if len(videos) == maxResults {
				break
			}
		}
		if resp.NextPageToken == "" || len(resp.Items) == 0 {
			break
		}
		pageToken = resp.NextPageToken
	}
	return videos, nil
}
