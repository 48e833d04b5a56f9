package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/onehub-dev/onehub/internal/types"
)

const (
	redditAuthURL  = "https://www.reddit.com/api/v1/access_token"
	redditAPIURL   = "https://oauth.reddit.com"
	redditUserAgent = "OneHub Dashboard/1.0"
)

// RedditClient fetches subreddit posts via the OAuth client-credentials flow.
// A fresh token is requested per call; tokens are cheap and the request volume
// is low.
type RedditClient struct {
	ClientID   string
	Secret     string
	AuthURL    string
	BaseURL    string
	HTTPClient *http.Client
}

func NewRedditClient(clientID, secret string) *RedditClient {
	return &RedditClient{
		ClientID:   clientID,
		Secret:     secret,
		AuthURL:    redditAuthURL,
		BaseURL:    redditAPIURL,
		HTTPClient: newHTTPClient(defaultTimeout),
	}
}

// TrendingSubreddits is the fixed set sampled by the trending endpoint.
var TrendingSubreddits = []string{"technology", "programming", "science", "worldnews", "todayilearned"}

var redditSortOptions = []string{"hot", "new", "rising", "top"}

type redditListing struct {
	Data struct {
		Children []struct {
			Data struct {
				ID          string  `json:"id"`
				Title       string  `json:"title"`
				Selftext    string  `json:"selftext"`
				Permalink   string  `json:"permalink"`
				Subreddit   string  `json:"subreddit"`
				Author      string  `json:"author"`
				Score       int     `json:"score"`
				NumComments int     `json:"num_comments"`
				CreatedUTC  float64 `json:"created_utc"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

func (c *RedditClient) accessToken(ctx context.Context) (string, error) {
	if c.ClientID == "" || c.Secret == "" {
		return "", ErrNotConfigured
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequest(http.MethodPost, c.AuthURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", redditUserAgent)
	req.SetBasicAuth(c.ClientID, c.Secret)
	req = req.WithContext(ctx)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reddit auth failed with status %d", resp.StatusCode)
	}

	var token struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", err
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("reddit auth returned empty token")
	}

	return token.AccessToken, nil
}

func (c *RedditClient) listing(ctx context.Context, token, subreddit, sort string, limit int, descLimit int) ([]types.RedditPost, error) {
	params := url.Values{}
	params.Set("limit", fmt.Sprintf("%d", limit))
	if sort == "top" {
		params.Set("t", "day")
	}

	endpoint := fmt.Sprintf("%s/r/%s/%s?%s", c.BaseURL, url.PathEscape(subreddit), sort, params.Encode())
	headers := map[string]string{
		"Authorization": "Bearer " + token,
		"User-Agent":    redditUserAgent,
	}

	var data redditListing
	if err := getJSON(ctx, c.HTTPClient, endpoint, headers, &data); err != nil {
		return nil, err
	}

	var posts []types.RedditPost
	for _, child := range data.Data.Children {
		post := child.Data

		name := post.Subreddit
		if name == "" {
			name = subreddit
		}

		posts = append(posts, types.RedditPost{
			ID:          post.ID,
			Title:       post.Title,
			Description: truncate(post.Selftext, descLimit),
			URL:         "https://reddit.com" + post.Permalink,
			Subreddit:   name,
			Author:      post.Author,
			Score:       post.Score,
			Comments:    post.NumComments,
			CreatedAt:   time.Unix(int64(post.CreatedUTC), 0).Format(time.RFC3339),
			IsStatic:    false,
		})
	}

	return posts, nil
}

// Posts fetches up to 15 posts from a subreddit with a randomly chosen sort.
func (c *RedditClient) Posts(ctx context.Context, subreddit string) ([]types.RedditPost, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	sort := redditSortOptions[rand.Intn(len(redditSortOptions))]
	return c.listing(ctx, token, subreddit, sort, 15, 200)
}

// Trending collects the top 2 hot posts from each of the fixed trending
// subreddits, substituting a mock entry for any subreddit that fails. It never
// returns an error.
func (c *RedditClient) Trending(ctx context.Context) []types.RedditPost {
	var all []types.RedditPost

	for _, subreddit := range TrendingSubreddits {
		fetched, err := c.trendingSubreddit(ctx, subreddit)
		if err != nil {
			all = append(all, mockTrendingPost(subreddit))
			continue
		}
		all = append(all, fetched...)
	}

	return all
}

func (c *RedditClient) trendingSubreddit(ctx context.Context, subreddit string) ([]types.RedditPost, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	return c.listing(ctx, token, subreddit, "hot", 2, 150)
}

// MockPosts is the payload served when no Reddit credentials are configured.
func MockPosts(subreddit string) []types.RedditPost {
	return []types.RedditPost{
		{
			ID:          fmt.Sprintf("reddit_%d", time.Now().Unix()),
			Title:       fmt.Sprintf("Popular post from r/%s", subreddit),
			Description: fmt.Sprintf("This is mock data for r/%s. Add REDDIT_CLIENT_ID and REDDIT_SECRET to get real posts.", subreddit),
			URL:         "https://reddit.com/r/" + subreddit,
			Subreddit:   subreddit,
			Author:      "mock_user",
			Score:       1234,
			Comments:    56,
			CreatedAt:   time.Now().Add(-2 * time.Hour).Format(time.RFC3339),
			IsStatic:    true,
		},
	}
}

// ErrorFallbackPost embeds the upstream error in a single static entry.
func ErrorFallbackPost(subreddit string, err error) types.RedditPost {
	return types.RedditPost{
		ID:          fmt.Sprintf("error_%d", time.Now().Unix()),
		Title:       fmt.Sprintf("Error fetching r/%s posts", subreddit),
		Description: fmt.Sprintf("Reddit API Error: %v. Showing mock data.", err),
		URL:         "#",
		Subreddit:   subreddit,
		Author:      "error_fallback",
		Score:       0,
		Comments:    0,
		CreatedAt:   time.Now().Format(time.RFC3339),
		IsStatic:    true,
	}
}

func mockTrendingPost(subreddit string) types.RedditPost {
	return types.RedditPost{
		ID:          fmt.Sprintf("mock_reddit_%s_%d", subreddit, time.Now().Unix()),
		Title:       fmt.Sprintf("Trending post from r/%s", subreddit),
		Description: fmt.Sprintf("Latest discussions in %s", subreddit),
		URL:         "https://reddit.com/r/" + subreddit,
		Subreddit:   subreddit,
		Author:      "mock_user",
		Score:       100,
		Comments:    25,
		CreatedAt:   time.Now().Format(time.RFC3339),
	}
}
