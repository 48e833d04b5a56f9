package sources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrNotConfigured is returned by clients whose API credentials are missing;
// handlers fall back to mock payloads.
var ErrNotConfigured = errors.New("content source is not configured")

const defaultTimeout = 10 * time.Second

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &http.Client{
		Timeout: timeout,
	}
}

func getJSON(ctx context.Context, client *http.Client, url string, headers map[string]string, dest interface{}) error {
	req, err := http.NewRequest(http.MethodGet, url, nil)

	if err != nil {
		return err
	}

	for key, value := range headers {
		req.Header.Add(key, value)
	}

	req = req.WithContext(ctx)

	resp, err := client.Do(req)

	if err != nil {
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %s", resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(dest)
}

// titleCase upper-cases the first letter of every space-separated word, the
// way the option ids are presented in mock payloads ("italian" -> "Italian").
func titleCase(s string) string {
	out := []rune(s)
	upNext := true

	for i, r := range out {
		switch {
		case r == ' ':
			upNext = true
		case upNext && r >= 'a' && r <= 'z':
			out[i] = r - ('a' - 'A')
			upNext = false
		default:
			upNext = false
		}
	}

	return string(out)
}

// truncate cuts a description at limit runes, appending an ellipsis marker as
// the original payloads do.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
