package scraper

import (
	"bytes"
	"context"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/inkwell-hq/medium-reader/pkg/httpclient"
)

// restrictionSelectors mark the publisher's metered or member-only
// presentation in the parsed markup.
var restrictionSelectors = []string{
	".meteredContent",
	".paywall",
	`[data-testid="paywall"]`,
	`[aria-label="Member-only story"]`,
}

// isRestricted re-fetches the page and applies the restriction heuristics:
// any indicator selector in the markup, or any configured marker substring in
// the raw body. Detection is advisory, so every failure along the way reports
// "not restricted".
func (s *Service) isRestricted(ctx context.Context, rawURL string) bool {
	resp, err := s.client.Get(ctx, rawURL, httpclient.BrowserHeaders())
	if err != nil || resp.StatusCode() != http.StatusOK {
		return false
	}

	body := resp.Body()
	if doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body)); err == nil {
		for _, sel := range restrictionSelectors {
			if doc.Find(sel).Length() > 0 {
				return true
			}
		}
	}

	lower := strings.ToLower(string(body))
	for _, marker := range s.markers {
		if marker = strings.ToLower(strings.TrimSpace(marker)); marker == "" {
			continue
		}
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
