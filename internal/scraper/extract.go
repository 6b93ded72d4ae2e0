package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/inkwell-hq/medium-reader/internal/domain"
)

const (
	defaultTitle = "Untitled"
	unknownField = "Unknown"
)

// Direct Medium markup and each mirror use different structural conventions,
// so every field tries a fixed ordered list of selectors and takes the first
// non-empty match. The cascade has no awareness of where the markup came from.

// textRule extracts one value: element text, or an attribute when attr is set.
type textRule struct {
	selector string
	attr     string
}

func (r textRule) apply(doc *goquery.Document) string {
	node := doc.Find(r.selector).First()
	if node.Length() == 0 {
		return ""
	}
	if r.attr != "" {
		val, _ := node.Attr(r.attr)
		return strings.TrimSpace(val)
	}
	return strings.TrimSpace(node.Text())
}

var (
	titleRules = []textRule{
		{selector: "h1"},
		{selector: "h2"},
		{selector: ".title"},
	}
	authorRules = []textRule{
		{selector: `[data-testid="authorName"]`},
		{selector: ".author"},
		{selector: `meta[name="author"]`, attr: "content"},
	}
	readingTimeRules = []textRule{
		{selector: `[data-testid="storyReadTime"]`},
		{selector: `[data-testid="readingTime"]`},
		{selector: ".readingTime"},
	}
	publishDateRules = []textRule{
		{selector: "time[datetime]", attr: "datetime"},
		{selector: `meta[property="article:published_time"]`, attr: "content"},
	}
)

// contentSelectors is the ordered cascade locating the article body. The same
// list judges mirror adequacy.
var contentSelectors = []string{"article", ".post-content", ".content"}

func firstMatch(doc *goquery.Document, rules []textRule, fallback string) string {
	for _, r := range rules {
		if v := r.apply(doc); v != "" {
			return v
		}
	}
	return fallback
}

// findContainer returns the first matching content container, or nil.
func findContainer(doc *goquery.Document) *goquery.Selection {
	for _, sel := range contentSelectors {
		if node := doc.Find(sel).First(); node.Length() > 0 {
			return node
		}
	}
	return nil
}

// ExtractFields runs the selector cascades over article markup. BodyMarkup is
// empty when no content container matched.
func ExtractFields(markup string) domain.ExtractedArticle {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return domain.ExtractedArticle{
			Title:       defaultTitle,
			Author:      unknownField,
			ReadingTime: unknownField,
		}
	}

	art := domain.ExtractedArticle{
		Title:       firstMatch(doc, titleRules, defaultTitle),
		Author:      firstMatch(doc, authorRules, unknownField),
		ReadingTime: firstMatch(doc, readingTimeRules, unknownField),
		PublishDate: firstMatch(doc, publishDateRules, ""),
	}

	if container := findContainer(doc); container != nil {
		if html, err := goquery.OuterHtml(container); err == nil {
			art.BodyMarkup = html
		}
	}
	return art
}

// CountWords counts the non-empty whitespace-separated tokens of the article
// container's text, falling back to the whole document when no container
// matches.
func CountWords(markup string) int {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return 0
	}
	text := doc.Text()
	if container := findContainer(doc); container != nil {
		text = container.Text()
	}
	return len(strings.Fields(text))
}
