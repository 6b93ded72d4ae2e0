package mirrors

import "regexp"

// Medium article URLs follow host/author/slug, e.g.
// https://medium.com/@jane/how-we-scaled-postgres-1a2b3c4d5e6f. The slug is
// the final path segment before any query or fragment.
var slugPattern = regexp.MustCompile(`^https?://[^/]+/[^/]+/([^/?#]+)`)

// ExtractSlug returns the slug segment of an article URL that follows the
// publisher path convention. URLs outside the convention are returned
// unchanged so mirror URL construction degrades to the full URL instead of
// failing.
func ExtractSlug(rawURL string) string {
	m := slugPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return rawURL
	}
	return m[1]
}
