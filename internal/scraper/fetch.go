package scraper

import (
	"context"
	"fmt"
	"net/http"

	"github.com/inkwell-hq/medium-reader/pkg/httpclient"
)

// fetchResult is the raw outcome of a page fetch, discarded after extraction.
type fetchResult struct {
	HTML   string
	Status int
}

// fetchDirect performs the single GET of the original article URL with the
// browser identification headers. No retry and no timeout of its own: callers
// bound it through ctx, and transport errors propagate for them to judge.
func (s *Service) fetchDirect(ctx context.Context, rawURL string) (fetchResult, error) {
	resp, err := s.client.Get(ctx, rawURL, httpclient.BrowserHeaders())
	if err != nil {
		return fetchResult{}, err
	}
	if code := resp.StatusCode(); code != http.StatusOK {
		return fetchResult{}, fmt.Errorf("status %d fetching %s", code, rawURL)
	}
	return fetchResult{HTML: string(resp.Body()), Status: resp.StatusCode()}, nil
}
