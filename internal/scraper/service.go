package scraper

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/inkwell-hq/medium-reader/internal/domain"
	"github.com/inkwell-hq/medium-reader/internal/markdown"
	"github.com/inkwell-hq/medium-reader/pkg/httpclient"
	"github.com/inkwell-hq/medium-reader/pkg/mirrors"
)

const (
	defaultSearchEndpoint = "https://medium.com/search/posts"
	defaultMirrorTimeout  = 15 * time.Second
	defaultAdequateChars  = 500
	defaultSearchLimit    = 10

	// MirrorAuto selects the registry's full fallback order.
	MirrorAuto = "auto"
)

var defaultRestrictionMarkers = []string{"premium", "subscribe to read", "member only"}

// Service runs the acquisition and normalization pipeline. It holds no
// per-request state; concurrent operations share only the immutable registry
// and renderer, so a single Service serves any number of callers.
type Service struct {
	client         httpclient.Client
	registry       *mirrors.Registry
	renderer       *markdown.Renderer
	searchEndpoint string
	mirrorTimeout  time.Duration
	adequateChars  int
	markers        []string
}

// Options configures a Service. Zero values fall back to production defaults.
type Options struct {
	Client             httpclient.Client
	Registry           *mirrors.Registry
	SearchEndpoint     string
	MirrorTimeout      time.Duration
	AdequateChars      int
	RestrictionMarkers []string
}

// NewService wires a scraper service.
func NewService(opts Options) *Service {
	s := &Service{
		client:         opts.Client,
		registry:       opts.Registry,
		renderer:       markdown.NewRenderer(),
		searchEndpoint: opts.SearchEndpoint,
		mirrorTimeout:  opts.MirrorTimeout,
		adequateChars:  opts.AdequateChars,
		markers:        opts.RestrictionMarkers,
	}
	if s.client == nil {
		s.client = httpclient.New()
	}
	if s.registry == nil {
		s.registry = mirrors.Default()
	}
	if s.searchEndpoint == "" {
		s.searchEndpoint = defaultSearchEndpoint
	}
	if s.mirrorTimeout <= 0 {
		s.mirrorTimeout = defaultMirrorTimeout
	}
	if s.adequateChars <= 0 {
		s.adequateChars = defaultAdequateChars
	}
	if len(s.markers) == 0 {
		s.markers = defaultRestrictionMarkers
	}
	return s
}

// Convert fetches the article, bypasses its paywall through mirrors when
// requested and needed, and renders the final Markdown document.
func (s *Service) Convert(ctx context.Context, rawURL string, opts domain.ConversionOptions) (string, error) {
	ref, err := parseArticleRef(rawURL)
	if err != nil {
		return "", fmt.Errorf("convert: %w", err)
	}
	if name := namedMirror(opts.PreferredMirror); name != "" && !s.registry.Has(name) {
		return "", fmt.Errorf("convert: %w: %q", ErrUnknownMirror, opts.PreferredMirror)
	}

	markup, usedMirror, err := s.acquire(ctx, ref.URL, opts)
	if err != nil {
		return "", fmt.Errorf("convert: %w", err)
	}

	extracted := ExtractFields(markup)
	if extracted.BodyMarkup == "" {
		return "", fmt.Errorf("convert: %w", ErrContentNotFound)
	}

	body, err := s.renderer.Render(extracted.BodyMarkup, opts)
	if err != nil {
		return "", fmt.Errorf("convert: %w", err)
	}

	return markdown.Assemble(extracted, body, ref.URL, usedMirror), nil
}

// acquire decides which markup source feeds extraction: the direct fetch, or
// the first adequate mirror when the page is restricted and bypass was
// requested. usedMirror is empty for the direct path.
func (s *Service) acquire(ctx context.Context, rawURL string, opts domain.ConversionOptions) (markup, usedMirror string, err error) {
	direct, err := s.fetchDirect(ctx, rawURL)
	if err != nil {
		return "", "", fmt.Errorf("fetch article: %w", err)
	}
	if !opts.BypassRestriction {
		return direct.HTML, "", nil
	}
	if !s.isRestricted(ctx, rawURL) {
		return direct.HTML, "", nil
	}

	order := s.mirrorOrder(opts.PreferredMirror)
	mirrored, name := s.tryMirrors(ctx, rawURL, order)
	if mirrored == "" {
		return "", "", ErrAllMirrorsFailed
	}
	return mirrored, name, nil
}

// mirrorOrder resolves the caller's mirror preference: "auto" (or empty)
// walks the registry's full order, a named mirror is attempted alone.
func (s *Service) mirrorOrder(preferred string) []string {
	if name := namedMirror(preferred); name != "" {
		return []string{name}
	}
	return s.registry.DefaultOrder()
}

// namedMirror normalizes a mirror preference, returning "" when the caller
// asked for automatic selection.
func namedMirror(preferred string) string {
	preferred = strings.ToLower(strings.TrimSpace(preferred))
	if preferred == MirrorAuto {
		return ""
	}
	return preferred
}

// Info fetches the article once and returns its metadata without rendering
// the body.
func (s *Service) Info(ctx context.Context, rawURL string) (domain.ArticleInfo, error) {
	ref, err := parseArticleRef(rawURL)
	if err != nil {
		return domain.ArticleInfo{}, fmt.Errorf("info: %w", err)
	}

	res, err := s.fetchDirect(ctx, ref.URL)
	if err != nil {
		return domain.ArticleInfo{}, fmt.Errorf("info: fetch article: %w", err)
	}

	extracted := ExtractFields(res.HTML)
	info := domain.ArticleInfo{
		Title:       extracted.Title,
		Author:      extracted.Author,
		ReadingTime: extracted.ReadingTime,
		URL:         ref.URL,
		WordCount:   CountWords(res.HTML),
	}
	if extracted.PublishDate != "" {
		date := extracted.PublishDate
		info.PublishDate = &date
	}
	return info, nil
}

// parseArticleRef validates the input before any network access: it must be
// an absolute http(s) URL.
func parseArticleRef(rawURL string) (domain.ArticleRef, error) {
	trimmed := strings.TrimSpace(rawURL)
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return domain.ArticleRef{}, fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return domain.ArticleRef{}, fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}
	return domain.ArticleRef{URL: trimmed}, nil
}
