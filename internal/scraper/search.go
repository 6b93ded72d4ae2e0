package scraper

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/inkwell-hq/medium-reader/internal/domain"
	"github.com/inkwell-hq/medium-reader/internal/logger"
	"github.com/inkwell-hq/medium-reader/pkg/httpclient"
)

const (
	mediumOrigin    = "https://medium.com"
	snippetMaxChars = 100
	listingSelector = `div[data-test-id="postPreview"]`
	authorSelector  = `a[data-testid="authorName"]`
)

// Search issues one GET against the search endpoint and parses listing
// containers in document order, stopping once limit results are collected.
// No pagination, no deduplication, no ranking. Zero matches yield an empty
// slice, not an error.
func (s *Service) Search(ctx context.Context, query, tag string, limit int) ([]domain.ArticleSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("search: %w", ErrEmptyQuery)
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	q := query
	if tag = strings.TrimSpace(tag); tag != "" {
		q = fmt.Sprintf("%s tag:%s", query, tag)
	}
	searchURL := s.searchEndpoint + "?q=" + url.QueryEscape(q)

	resp, err := s.client.Get(ctx, searchURL, httpclient.BrowserHeaders())
	if err != nil {
		return nil, fmt.Errorf("search: fetch results: %w", err)
	}
	if code := resp.StatusCode(); code != http.StatusOK {
		return nil, fmt.Errorf("search: endpoint returned status %d", code)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("search: parse results: %w", err)
	}

	results := make([]domain.ArticleSummary, 0, limit)
	doc.Find(listingSelector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		summary, ok := parseListing(sel)
		if !ok {
			return true
		}
		results = append(results, summary)
		return len(results) < limit
	})

	logger.DebugObj("search completed", "search_result", map[string]any{
		"query":   q,
		"results": len(results),
	})
	return results, nil
}

// parseListing pulls one summary out of a listing container. Listings missing
// a title or link are skipped.
func parseListing(sel *goquery.Selection) (domain.ArticleSummary, bool) {
	title := strings.TrimSpace(sel.Find("h3").First().Text())
	if title == "" {
		title = strings.TrimSpace(sel.Find("h2").First().Text())
	}

	href, _ := sel.Find("a").First().Attr("href")
	href = strings.TrimSpace(href)
	if title == "" || href == "" {
		return domain.ArticleSummary{}, false
	}
	if strings.HasPrefix(href, "/") {
		href = mediumOrigin + href
	}

	author := strings.TrimSpace(sel.Find(authorSelector).First().Text())
	if author == "" {
		author = unknownField
	}

	return domain.ArticleSummary{
		Title:   title,
		URL:     href,
		Author:  author,
		Snippet: snippet(title),
	}, true
}

// snippet derives the listing snippet by truncating the title. Truncation
// counts characters, not bytes, so multi-byte titles are never cut mid-rune.
func snippet(title string) string {
	r := []rune(title)
	if len(r) > snippetMaxChars {
		return string(r[:snippetMaxChars]) + "..."
	}
	return title
}
