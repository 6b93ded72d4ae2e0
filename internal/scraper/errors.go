package scraper

import "errors"

var (
	// ErrInvalidURL flags input that is not an absolute http(s) URL. It is
	// returned before any network access.
	ErrInvalidURL = errors.New("url must be an absolute http(s) address")

	// ErrEmptyQuery flags a blank search query.
	ErrEmptyQuery = errors.New("search query must not be empty")

	// ErrUnknownMirror flags a preferred mirror name that is not in the
	// registry. It is returned before any network access.
	ErrUnknownMirror = errors.New("unknown mirror")

	// ErrContentNotFound means the direct fetch succeeded but the page held
	// no recognizable article container.
	ErrContentNotFound = errors.New("could not find article content")

	// ErrAllMirrorsFailed means every mirror in the chosen order failed or
	// returned inadequate content.
	ErrAllMirrorsFailed = errors.New("all mirrors failed to return readable content")
)
