package sources

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func redditTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/token" {
			user, pass, ok := r.BasicAuth()
			require.True(t, ok)
			assert.Equal(t, "id", user)
			assert.Equal(t, "secret", pass)
			assert.Equal(t, redditUserAgent, r.Header.Get("User-Agent"))

			json.NewEncoder(w).Encode(map[string]string{"access_token": "tok"})
			return
		}

		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"children": []map[string]interface{}{
					{"data": map[string]interface{}{
						"id":           "abc123",
						"title":        "Interesting thread",
						"selftext":     strings.Repeat("y", 300),
						"permalink":    "/r/golang/comments/abc123",
						"subreddit":    "golang",
						"author":       "gopher",
						"score":        42,
						"num_comments": 7,
						"created_utc":  1767340800,
					}},
				},
			},
		})
	}))
}

func TestPostsParsesListing(t *testing.T) {
	server := redditTestServer(t)
	defer server.Close()

	client := NewRedditClient("id", "secret")
	client.AuthURL = server.URL + "/token"
	client.BaseURL = server.URL

	posts, err := client.Posts(context.Background(), "golang")
	require.NoError(t, err)
	require.Len(t, posts, 1)

	post := posts[0]
	assert.Equal(t, "abc123", post.ID)
	assert.Equal(t, "golang", post.Subreddit)
	assert.Equal(t, 42, post.Score)
	assert.Equal(t, "https://reddit.com/r/golang/comments/abc123", post.URL)
	// Long selftext is trimmed with an ellipsis marker.
	assert.Len(t, post.Description, 203)
	assert.True(t, strings.HasSuffix(post.Description, "..."))
}

func TestPostsWithoutCredentials(t *testing.T) {
	client := NewRedditClient("", "")
	_, err := client.Posts(context.Background(), "golang")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestTrendingNeverFails(t *testing.T) {
	client := NewRedditClient("", "")

	posts := client.Trending(context.Background())
	require.Len(t, posts, len(TrendingSubreddits))
	for i, post := range posts {
		assert.Equal(t, TrendingSubreddits[i], post.Subreddit)
	}
}
