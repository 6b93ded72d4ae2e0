package domain

// Domain contains the core models shared across the reader pipeline.

// ArticleRef identifies a single article by its canonical URL.
type ArticleRef struct {
	URL string
}

// ConversionOptions is caller-supplied policy for one convert request. The
// core invents no defaults beyond what the caller passes.
type ConversionOptions struct {
	IncludeImages     bool
	IncludeCode       bool
	BypassRestriction bool
	PreferredMirror   string // a registered mirror name, or "auto"
}

// ExtractedArticle is the normalized structural view of whichever markup
// source supplied usable content.
type ExtractedArticle struct {
	Title       string
	Author      string
	ReadingTime string
	PublishDate string // raw datetime value, empty when the page carries none
	BodyMarkup  string
}

// ArticleSummary is one search listing.
type ArticleSummary struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Author  string `json:"author"`
	Snippet string `json:"snippet"`
}

// ArticleInfo is the metadata-only view served by the info operation.
type ArticleInfo struct {
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	ReadingTime string  `json:"reading_time"`
	PublishDate *string `json:"publish_date,omitempty"`
	URL         string  `json:"url"`
	WordCount   int     `json:"word_count"`
}
