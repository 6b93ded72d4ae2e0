package markdown

import (
	"fmt"
	"strings"

	"github.com/araddon/dateparse"

	"github.com/inkwell-hq/medium-reader/internal/domain"
)

// Assemble produces the final document: a level-1 title heading, bold
// metadata lines, a horizontal rule, then the rendered body. Metadata lines
// with empty values are omitted; the bypass notice appears only when a mirror
// supplied the content.
func Assemble(art domain.ExtractedArticle, renderedBody, sourceURL, usedMirror string) string {
	var b strings.Builder
	b.WriteString("# " + art.Title + "\n\n")

	writeMeta(&b, "Author", art.Author)
	writeMeta(&b, "Reading time", art.ReadingTime)
	writeMeta(&b, "Published", formatPublishDate(art.PublishDate))
	writeMeta(&b, "Source", sourceURL)
	if usedMirror != "" {
		writeMeta(&b, "Note", "paywall bypassed via "+usedMirror)
	}

	b.WriteString("---\n\n")
	b.WriteString(renderedBody)
	b.WriteString("\n")
	return b.String()
}

func writeMeta(b *strings.Builder, label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	fmt.Fprintf(b, "**%s:** %s\n\n", label, value)
}

// formatPublishDate renders the raw datetime value as a calendar date. Values
// that cannot be parsed are kept verbatim rather than dropped.
func formatPublishDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return raw
	}
	return t.Format("January 2, 2006")
}
