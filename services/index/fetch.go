package index

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/meghashyamc/sitesearch/logger"
)

const fetchTimeout = 10 * time.Second

// fetcher retrieves same-origin site resources. Every method is best-effort
// from the builder's point of view: a failed fetch costs coverage, never the
// build.
type fetcher struct {
	client  *http.Client
	baseURL string
	logger  logger.Logger
}

func newFetcher(baseURL string, logger logger.Logger) *fetcher {
	return &fetcher{
		client:  &http.Client{Timeout: fetchTimeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// getHTML fetches a page and parses it into a ContentSource.
func (f *fetcher) getHTML(ctx context.Context, path string) (*HTMLSource, error) {
	resp, err := f.get(ctx, path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	source, err := NewHTMLSource(resp.Body)
	if err != nil {
		f.logger.Warn("could not parse page", "path", path, "err", err.Error())
		return nil, err
	}

	return source, nil
}

// getJSON fetches a JSON resource and decodes it into v.
func (f *fetcher) getJSON(ctx context.Context, path string, v any) error {
	resp, err := f.get(ctx, path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		f.logger.Warn("could not decode JSON resource", "path", path, "err", err.Error())
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return nil
}

func (f *fetcher) get(ctx context.Context, path string) (*http.Response, error) {
	url := f.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Warn("could not fetch resource", "url", url, "err", err.Error())
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		resp.Body.Close()
		f.logger.Warn("unexpected status fetching resource", "url", url, "status", resp.StatusCode)
		return nil, fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, url)
	}

	return resp, nil
}
