package markdown

import (
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/dom"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/inkwell-hq/medium-reader/internal/domain"
)

// Renderer converts article body markup into Markdown. The converter and its
// custom rules are built once and are safe for concurrent use.
type Renderer struct {
	conv *converter.Converter
}

// NewRenderer builds the converter with the strikethrough and figure/caption
// rules registered ahead of the commonmark handlers.
func NewRenderer() *Renderer {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)

	// PriorityEarly (100) runs before the commonmark plugin (500), so these
	// rules win over any default handling of the same tags.
	for _, tag := range []string{"del", "s", "strike"} {
		conv.Register.RendererFor(tag, converter.TagTypeInline, renderStrikethrough, converter.PriorityEarly)
	}
	conv.Register.RendererFor("figure", converter.TagTypeBlock, renderFigure, converter.PriorityEarly)

	return &Renderer{conv: conv}
}

// Render converts body markup to Markdown, honoring the include toggles.
// Excluded images and code are removed from the markup before conversion so
// nothing of them leaks into the output.
func (r *Renderer) Render(bodyMarkup string, opts domain.ConversionOptions) (string, error) {
	markup, err := stripExcluded(bodyMarkup, opts)
	if err != nil {
		return "", err
	}

	md, err := r.conv.ConvertString(markup)
	if err != nil {
		return "", fmt.Errorf("markdown conversion: %w", err)
	}
	return strings.TrimSpace(md), nil
}

func stripExcluded(markup string, opts domain.ConversionOptions) (string, error) {
	if opts.IncludeImages && opts.IncludeCode {
		return markup, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", fmt.Errorf("parse body markup: %w", err)
	}
	if !opts.IncludeImages {
		// Imageless figures keep their inner content; only figures wrapping
		// an image go away with it.
		doc.Find("figure").Has("img").Remove()
		doc.Find("img, picture").Remove()
	}
	if !opts.IncludeCode {
		doc.Find("pre, code").Remove()
	}

	out, err := doc.Find("body").Html()
	if err != nil {
		return "", fmt.Errorf("serialize body markup: %w", err)
	}
	return out, nil
}

// renderStrikethrough emits del/s/strike content as ~~text~~.
func renderStrikethrough(_ converter.Context, w converter.Writer, n *html.Node) converter.RenderStatus {
	text := strings.TrimSpace(dom.CollectText(n))
	if text == "" {
		return converter.RenderSuccess
	}
	w.WriteString("~~" + text + "~~")
	return converter.RenderSuccess
}

// renderFigure emits a figure as an image reference followed by its caption
// in italics on its own paragraph. Figures without an image pass their inner
// content through to the default handlers.
func renderFigure(_ converter.Context, w converter.Writer, n *html.Node) converter.RenderStatus {
	img := dom.FindFirstNode(n, func(node *html.Node) bool {
		return dom.NodeName(node) == "img"
	})
	if img == nil {
		return converter.RenderTryNext
	}

	src := dom.GetAttributeOr(img, "src", "")
	alt := dom.GetAttributeOr(img, "alt", "")
	w.WriteString("\n\n")
	w.WriteString(fmt.Sprintf("![%s](%s)", alt, src))

	caption := dom.FindFirstNode(n, func(node *html.Node) bool {
		return dom.NodeName(node) == "figcaption"
	})
	if caption != nil {
		if text := strings.TrimSpace(dom.CollectText(caption)); text != "" {
			w.WriteString("\n\n*" + text + "*")
		}
	}
	w.WriteString("\n\n")
	return converter.RenderSuccess
}
