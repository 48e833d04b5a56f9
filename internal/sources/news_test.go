package sources

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadlinesFansOverCategories(t *testing.T) {
	var categories []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		category := r.URL.Query().Get("category")
		categories = append(categories, category)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"articles": []map[string]interface{}{
				{
					"title":       "Headline for " + category,
					"description": "Body",
					"url":         "https://example.com/a",
					"image":       "https://example.com/a.jpg",
					"publishedAt": "2026-03-02T10:00:00Z",
					"source":      map[string]interface{}{"name": "Example Wire"},
				},
			},
		})
	}))
	defer server.Close()

	client := NewNewsClient("key")
	client.BaseURL = server.URL

	articles, err := client.Headlines(context.Background(), []string{"technology", "science"})
	require.NoError(t, err)

	assert.Equal(t, []string{"technology", "science"}, categories)
	require.Len(t, articles, 2)
	assert.Equal(t, "technology", articles[0].Category)
	assert.Equal(t, "science", articles[1].Category)
	assert.Equal(t, "Example Wire", articles[0].Source)
	assert.False(t, articles[0].IsStatic)
}

func TestHeadlinesWithoutKey(t *testing.T) {
	client := NewNewsClient("")
	_, err := client.Headlines(context.Background(), []string{"technology"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestTrendingSubstitutesMockPerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("category") == "business" {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
			return
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"articles": []map[string]interface{}{
				{
					"title":  "Live headline",
					"url":    "https://example.com/t",
					"source": map[string]interface{}{"name": "Example Wire"},
				},
			},
		})
	}))
	defer server.Close()

	client := NewNewsClient("key")
	client.SearchBaseURL = server.URL

	articles := client.Trending(context.Background(), []string{"technology", "business"})

	require.Len(t, articles, 2)
	assert.Equal(t, "Live headline", articles[0].Title)
	// The failed category degrades to a mock entry instead of dropping out.
	assert.Equal(t, "business", articles[1].Category)
	assert.Equal(t, "Mock Source", articles[1].Source)
}

func TestSearchRequiresKey(t *testing.T) {
	client := NewNewsClient("")
	_, err := client.Search(context.Background(), "golang")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
