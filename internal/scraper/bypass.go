package scraper

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/inkwell-hq/medium-reader/internal/logger"
	"github.com/inkwell-hq/medium-reader/pkg/httpclient"
	"github.com/inkwell-hq/medium-reader/pkg/mirrors"
)

// tryMirrors walks the mirror order strictly sequentially and returns the
// first adequate page's markup plus the mirror name. Individual mirror
// failures are logged and skipped; an exhausted order returns empty strings
// for the caller to turn into a terminal error.
func (s *Service) tryMirrors(ctx context.Context, rawURL string, order []string) (string, string) {
	slug := mirrors.ExtractSlug(rawURL)

	for _, name := range order {
		markup, err := s.fetchMirror(ctx, rawURL, slug, name)
		if err != nil {
			logger.WarnObj("mirror attempt failed", "mirror_error", map[string]any{
				"mirror": name,
				"url":    rawURL,
				"error":  err.Error(),
			})
			continue
		}
		logger.InfoObj("mirror content accepted", "mirror_result", map[string]any{
			"mirror": name,
			"url":    rawURL,
		})
		return markup, name
	}
	return "", ""
}

// fetchMirror fetches one mirror with its own timeout and judges the result:
// a 200 non-empty page whose first matching content container carries more
// text than the adequacy threshold.
func (s *Service) fetchMirror(ctx context.Context, rawURL, slug, name string) (string, error) {
	mirrorURL := s.registry.BuildURL(rawURL, slug, name)

	ctx, cancel := context.WithTimeout(ctx, s.mirrorTimeout)
	defer cancel()

	resp, err := s.client.Get(ctx, mirrorURL, httpclient.BrowserHeaders())
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", mirrorURL, err)
	}
	if code := resp.StatusCode(); code != http.StatusOK {
		return "", fmt.Errorf("%s returned status %d", mirrorURL, code)
	}

	body := resp.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		return "", fmt.Errorf("%s returned an empty body", mirrorURL)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", mirrorURL, err)
	}

	container := findContainer(doc)
	if container == nil {
		return "", fmt.Errorf("%s has no recognizable content container", mirrorURL)
	}
	if got := len(strings.TrimSpace(container.Text())); got <= s.adequateChars {
		return "", fmt.Errorf("%s content too short (%d chars, need > %d)", mirrorURL, got, s.adequateChars)
	}

	return string(body), nil
}
