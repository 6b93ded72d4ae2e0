package scraper

import (
	"context"
	"fmt"
	"strings"

	"github.com/inkwell-hq/medium-reader/pkg/httpclient"
)

// stubResponse implements httpclient.Response.
type stubResponse struct {
	body   []byte
	status int
}

func (r stubResponse) Body() []byte    { return r.body }
func (r stubResponse) StatusCode() int { return r.status }

// stubClient serves canned responses keyed by exact URL and records every
// request in order. URLs without an entry return a transport error.
type stubClient struct {
	responses map[string]stubResponse
	errs      map[string]error
	calls     []string
}

func newStubClient() *stubClient {
	return &stubClient{
		responses: make(map[string]stubResponse),
		errs:      make(map[string]error),
	}
}

func (c *stubClient) on(url, body string) *stubClient {
	c.responses[url] = stubResponse{body: []byte(body), status: 200}
	return c
}

func (c *stubClient) onStatus(url, body string, status int) *stubClient {
	c.responses[url] = stubResponse{body: []byte(body), status: status}
	return c
}

func (c *stubClient) failOn(url string, err error) *stubClient {
	c.errs[url] = err
	return c
}

func (c *stubClient) Get(_ context.Context, url string, _ map[string]string) (httpclient.Response, error) {
	c.calls = append(c.calls, url)
	if err, ok := c.errs[url]; ok {
		return nil, err
	}
	if resp, ok := c.responses[url]; ok {
		return resp, nil
	}
	return nil, fmt.Errorf("stub: no response registered for %s", url)
}

// longArticleHTML builds a page whose article container text comfortably
// exceeds the adequacy threshold.
func longArticleHTML(title, sentence string) string {
	body := strings.Repeat("<p>"+sentence+"</p>", 40)
	return "<html><body><article><h1>" + title + "</h1>" + body + "</article></body></html>"
}
