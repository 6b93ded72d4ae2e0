package scraper

import (
	"context"
	"errors"
	"testing"
)

const detectURL = "https://medium.com/@jane/locked-post-f00"

func detectorService(client *stubClient) *Service {
	return NewService(Options{Client: client})
}

func TestIsRestrictedBySelector(t *testing.T) {
	client := newStubClient().on(detectURL,
		`<html><body><div class="meteredContent"><p>teaser</p></div></body></html>`)

	if !detectorService(client).isRestricted(context.Background(), detectURL) {
		t.Fatal("expected selector indicator to flag restriction")
	}
}

func TestIsRestrictedByMarkerWord(t *testing.T) {
	client := newStubClient().on(detectURL,
		`<html><body><p>This story is for Member ONLY readers.</p></body></html>`)

	if !detectorService(client).isRestricted(context.Background(), detectURL) {
		t.Fatal("expected marker substring to flag restriction (case-insensitive)")
	}
}

func TestIsRestrictedCustomMarkers(t *testing.T) {
	client := newStubClient().on(detectURL,
		`<html><body><p>unlock the rest with our reader pass</p></body></html>`)

	svc := NewService(Options{Client: client, RestrictionMarkers: []string{"reader pass"}})
	if !svc.isRestricted(context.Background(), detectURL) {
		t.Fatal("expected configured marker to flag restriction")
	}

	// The defaults no longer apply once markers are configured.
	client2 := newStubClient().on(detectURL, `<html><body><p>premium story</p></body></html>`)
	svc2 := NewService(Options{Client: client2, RestrictionMarkers: []string{"reader pass"}})
	if svc2.isRestricted(context.Background(), detectURL) {
		t.Fatal("default marker should not fire when markers are overridden")
	}
}

func TestIsRestrictedOpenContent(t *testing.T) {
	client := newStubClient().on(detectURL,
		`<html><body><article><p>free to read</p></article></body></html>`)

	if detectorService(client).isRestricted(context.Background(), detectURL) {
		t.Fatal("open content flagged as restricted")
	}
}

func TestIsRestrictedFailsOpen(t *testing.T) {
	client := newStubClient().failOn(detectURL, errors.New("connection refused"))
	if detectorService(client).isRestricted(context.Background(), detectURL) {
		t.Fatal("fetch error must report not restricted")
	}

	client = newStubClient().onStatus(detectURL, "server error", 503)
	if detectorService(client).isRestricted(context.Background(), detectURL) {
		t.Fatal("non-200 must report not restricted")
	}
}
