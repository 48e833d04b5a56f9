package sources

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	"github.com/onehub-dev/onehub/internal/types"
)

const youtubeBaseURL = "https://www.googleapis.com/youtube/v3"

// YouTubeClient searches recent videos for a category. Query templates and
// result ordering are randomized so repeated visits surface different
// content.
type YouTubeClient struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

func NewYouTubeClient(apiKey string) *YouTubeClient {
	return &YouTubeClient{
		APIKey:     apiKey,
		BaseURL:    youtubeBaseURL,
		HTTPClient: newHTTPClient(defaultTimeout),
	}
}

var (
	videoQueryTemplates = []string{
		"%s latest news",
		"%s trends 2025",
		"%s updates",
		"%s tutorial",
		"latest %s",
		"%s review",
	}

	videoOrderOptions = []string{"date", "relevance", "viewCount"}
)

type youtubeSearchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			ChannelTitle string `json:"channelTitle"`
			PublishedAt  string `json:"publishedAt"`
			Thumbnails   struct {
				Medium struct {
					URL string `json:"url"`
				} `json:"medium"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

// Search fetches up to 15 videos from the last 30 days for a category.
func (c *YouTubeClient) Search(ctx context.Context, category string) ([]types.VideoItem, error) {
	if c.APIKey == "" {
		return nil, ErrNotConfigured
	}

	query := fmt.Sprintf(videoQueryTemplates[rand.Intn(len(videoQueryTemplates))], category)
	order := videoOrderOptions[rand.Intn(len(videoOrderOptions))]

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", query)
	params.Set("type", "video")
	params.Set("maxResults", "15")
	params.Set("order", order)
	params.Set("publishedAfter", time.Now().AddDate(0, 0, -30).UTC().Format(time.RFC3339))
	params.Set("key", c.APIKey)

	var data youtubeSearchResponse
	if err := getJSON(ctx, c.HTTPClient, c.BaseURL+"/search?"+params.Encode(), nil, &data); err != nil {
		return nil, err
	}

	var videos []types.VideoItem
	for _, item := range data.Items {
		videoID := item.ID.VideoID
		videos = append(videos, types.VideoItem{
			ID:          videoID,
			Title:       item.Snippet.Title,
			Description: truncate(item.Snippet.Description, 200),
			URL:         "https://youtube.com/watch?v=" + videoID,
			Thumbnail:   item.Snippet.Thumbnails.Medium.URL,
			Channel:     item.Snippet.ChannelTitle,
			Category:    category,
			PublishedAt: item.Snippet.PublishedAt,
			IsStatic:    false,
		})
	}

	return videos, nil
}

// MockVideos is the payload served when no API key is configured.
func MockVideos(category string) []types.VideoItem {
	return []types.VideoItem{
		{
			ID:          fmt.Sprintf("video_%d", time.Now().Unix()),
			Title:       fmt.Sprintf("Latest %s Trends", titleCase(category)),
			Description: fmt.Sprintf("This is mock data for %s. Add YOUTUBE_API_KEY to get real videos.", category),
			URL:         "https://youtube.com/watch?v=example1",
			Thumbnail:   "https://via.placeholder.com/480x360",
			Channel:     "Mock Channel",
			Category:    category,
			PublishedAt: time.Now().AddDate(0, 0, -1).Format(time.RFC3339),
			Duration:    "10:30",
			Views:       "125K",
			IsStatic:    true,
		},
	}
}

// ErrorFallbackVideo embeds the upstream error in a single static entry.
func ErrorFallbackVideo(category string, err error) types.VideoItem {
	return types.VideoItem{
		ID:          fmt.Sprintf("error_%d", time.Now().Unix()),
		Title:       fmt.Sprintf("Error fetching %s videos", category),
		Description: fmt.Sprintf("YouTube API Error: %v. Showing mock data.", err),
		URL:         "#",
		Thumbnail:   "https://via.placeholder.com/480x360",
		Channel:     "Error Fallback",
		Category:    category,
		PublishedAt: time.Now().Format(time.RFC3339),
		IsStatic:    true,
	}
}
