package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/onehub-dev/onehub/internal/types"
)

const (
	gnewsBaseURL   = "https://gnews.io/api/v4"
	newsAPIBaseURL = "https://newsapi.org/v2"
)

// NewsClient fetches headlines from GNews and searches via NewsAPI, one
// upstream request per preferred category.
type NewsClient struct {
	APIKey        string
	BaseURL       string
	SearchBaseURL string
	HTTPClient    *http.Client
}

func NewNewsClient(apiKey string) *NewsClient {
	return &NewsClient{
		APIKey:        apiKey,
		BaseURL:       gnewsBaseURL,
		SearchBaseURL: newsAPIBaseURL,
		HTTPClient:    newHTTPClient(defaultTimeout),
	}
}

type gnewsResponse struct {
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		Image       string `json:"image"`
		PublishedAt string `json:"publishedAt"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

type newsAPIResponse struct {
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		URLToImage  string `json:"urlToImage"`
		PublishedAt string `json:"publishedAt"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

// Headlines fetches up to 10 articles per category and concatenates them in
// category order.
func (c *NewsClient) Headlines(ctx context.Context, categories []string) ([]types.NewsArticle, error) {
	if c.APIKey == "" {
		return nil, ErrNotConfigured
	}

	var articles []types.NewsArticle

	for _, category := range categories {
		endpoint := fmt.Sprintf("%s/top-headlines?category=%s&lang=en&apikey=%s&max=10",
			c.BaseURL, url.QueryEscape(category), url.QueryEscape(c.APIKey))

		var data gnewsResponse
		if err := getJSON(ctx, c.HTTPClient, endpoint, nil, &data); err != nil {
			return nil, err
		}

		for _, article := range data.Articles {
			articles = append(articles, types.NewsArticle{
				ID:          fmt.Sprintf("news_%d_%d", time.Now().Unix(), len(articles)),
				Title:       article.Title,
				Description: article.Description,
				URL:         article.URL,
				Source:      article.Source.Name,
				Category:    category,
				PublishedAt: article.PublishedAt,
				ImageURL:    article.Image,
				IsStatic:    false,
			})
		}
	}

	return articles, nil
}

// Trending collects up to 5 headlines for each of the given categories,
// substituting a mock entry for any category whose fetch fails. It never
// returns an error: trending is strictly best-effort.
func (c *NewsClient) Trending(ctx context.Context, categories []string) []types.NewsArticle {
	var all []types.NewsArticle

	for _, category := range categories {
		fetched, err := c.trendingCategory(ctx, category, len(all))
		if err != nil {
			all = append(all, mockTrendingArticle(category))
			continue
		}
		all = append(all, fetched...)
	}

	return all
}

func (c *NewsClient) trendingCategory(ctx context.Context, category string, offset int) ([]types.NewsArticle, error) {
	if c.APIKey == "" {
		return nil, ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s/top-headlines?category=%s&apiKey=%s&pageSize=5",
		c.SearchBaseURL, url.QueryEscape(category), url.QueryEscape(c.APIKey))

	var data newsAPIResponse
	if err := getJSON(ctx, c.HTTPClient, endpoint, nil, &data); err != nil {
		return nil, err
	}

	var articles []types.NewsArticle
	for _, article := range data.Articles {
		articles = append(articles, types.NewsArticle{
			ID:          fmt.Sprintf("trending_%d_%d", time.Now().Unix(), offset+len(articles)),
			Title:       article.Title,
			Description: article.Description,
			URL:         article.URL,
			Source:      article.Source.Name,
			Category:    category,
			PublishedAt: article.PublishedAt,
			ImageURL:    article.URLToImage,
		})
	}

	return articles, nil
}

// Search queries NewsAPI's everything index sorted by relevancy.
func (c *NewsClient) Search(ctx context.Context, query string) ([]types.NewsArticle, error) {
	if c.APIKey == "" {
		return nil, ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s/everything?q=%s&apiKey=%s&pageSize=10&sortBy=relevancy",
		c.SearchBaseURL, url.QueryEscape(query), url.QueryEscape(c.APIKey))

	var data newsAPIResponse
	if err := getJSON(ctx, c.HTTPClient, endpoint, nil, &data); err != nil {
		return nil, err
	}

	var articles []types.NewsArticle
	for _, article := range data.Articles {
		articles = append(articles, types.NewsArticle{
			ID:          fmt.Sprintf("search_%d_%d", time.Now().Unix(), len(articles)),
			Title:       article.Title,
			Description: article.Description,
			URL:         article.URL,
			Source:      article.Source.Name,
			Category:    "search",
			PublishedAt: article.PublishedAt,
			ImageURL:    article.URLToImage,
		})
	}

	return articles, nil
}

// MockHeadlines is the payload served when no API key is configured.
func MockHeadlines(category string) []types.NewsArticle {
	return []types.NewsArticle{
		{
			ID:          fmt.Sprintf("news_%d", time.Now().Unix()),
			Title:       fmt.Sprintf("Latest %s News", titleCase(category)),
			Description: fmt.Sprintf("This is mock data for %s. Add NEWS_API_KEY to get real news.", category),
			URL:         "https://newsapi.org/register",
			Source:      "Mock Data - Add API Key",
			Category:    category,
			PublishedAt: time.Now().Format(time.RFC3339),
			ImageURL:    "https://via.placeholder.com/300x200",
			IsStatic:    true,
		},
	}
}

// ErrorFallbackArticle embeds the upstream error in a single static article.
func ErrorFallbackArticle(category string, err error) types.NewsArticle {
	return types.NewsArticle{
		ID:          fmt.Sprintf("error_%d", time.Now().Unix()),
		Title:       fmt.Sprintf("Error fetching %s news", category),
		Description: fmt.Sprintf("API Error: %v. Showing mock data.", err),
		URL:         "#",
		Source:      "Error Fallback",
		Category:    category,
		PublishedAt: time.Now().Format(time.RFC3339),
		ImageURL:    "https://via.placeholder.com/300x200",
		IsStatic:    true,
	}
}

func mockTrendingArticle(category string) types.NewsArticle {
	return types.NewsArticle{
		ID:          fmt.Sprintf("mock_trending_%s_%d", category, time.Now().Unix()),
		Title:       fmt.Sprintf("Trending %s News", titleCase(category)),
		Description: fmt.Sprintf("Latest updates in %s", category),
		URL:         "#",
		Source:      "Mock Source",
		Category:    category,
		PublishedAt: time.Now().Format(time.RFC3339),
		ImageURL:    "https://via.placeholder.com/300x200",
	}
}

// MockSearchResults mirrors the search fallback payload.
func MockSearchResults(query string) []types.NewsArticle {
	return []types.NewsArticle{
		{
			ID:          fmt.Sprintf("search_%d", time.Now().Unix()),
			Title:       fmt.Sprintf("Search Results for: %s", query),
			Description: fmt.Sprintf("Latest news and updates related to %s", query),
			URL:         "#",
			Source:      "Search Results",
			Category:    "search",
			PublishedAt: time.Now().Format(time.RFC3339),
			ImageURL:    "https://via.placeholder.com/300x200",
		},
	}
}
