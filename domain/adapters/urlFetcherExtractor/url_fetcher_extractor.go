package urlFetcherExtractor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"

	"inviteCrawler/domain/model"
)

const (
	// DefaultUserAgent is a desktop browser identity; some sites refuse the Go default.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	DefaultMaxBodyBytes int64 = 5 << 20
)

type HTTPFetcherExtractor struct {
	client       *http.Client
	userAgent    string
	maxBodyBytes int64
}

type Option func(*HTTPFetcherExtractor)

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(fe *HTTPFetcherExtractor) {
		if ua != "" {
			fe.userAgent = ua
		}
	}
}

// WithMaxBodyBytes caps how much of a response body is read.
func WithMaxBodyBytes(n int64) Option {
	return func(fe *HTTPFetcherExtractor) {
		if n > 0 {
			fe.maxBodyBytes = n
		}
	}
}

// WithClient replaces the http client; its timeout is left as is.
func WithClient(c *http.Client) Option {
	return func(fe *HTTPFetcherExtractor) {
		if c != nil {
			fe.client = c
		}
	}
}

func NewHTTPFetcherExtractor(timeout time.Duration, opts ...Option) *HTTPFetcherExtractor {
	fe := &HTTPFetcherExtractor{
		client: &http.Client{
			Timeout: timeout,
		},
		userAgent:    DefaultUserAgent,
		maxBodyBytes: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(fe)
	}
	return fe
}

// Fetch issues one GET for u and extracts its links. Any failure, including
// a non-2xx status, is returned as a *model.FetchError.
func (fe *HTTPFetcherExtractor) Fetch(ctx context.Context, u *url.URL) (model.FetchResult, error) {
	if u == nil {
		return model.FetchResult{}, &model.FetchError{Err: model.ErrInvalidBaseURL}
	}
	fail := func(status int, err error) (model.FetchResult, error) {
		return model.FetchResult{StatusCode: status}, &model.FetchError{URL: u.String(), StatusCode: status, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return fail(0, err)
	}
	req.Header.Set("User-Agent", fe.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := fe.client.Do(req)
	if err != nil {
		return fail(0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return fail(resp.StatusCode, model.ErrUnexpectedStatus)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, fe.maxBodyBytes))
	if err != nil {
		return fail(resp.StatusCode, fmt.Errorf("reading body: %w", err))
	}

	decoded, err := charset.NewReader(bytes.NewReader(body), resp.Header.Get("Content-Type"))
	if err != nil {
		return fail(resp.StatusCode, fmt.Errorf("decoding body: %w", err))
	}

	// Redirects change the page the relative links are relative to.
	pageURL := u
	if resp.Request != nil && resp.Request.URL != nil {
		pageURL = resp.Request.URL
	}

	links, err := fe.Extract(pageURL, decoded)
	if err != nil {
		return fail(resp.StatusCode, err)
	}

	return model.FetchResult{
		StatusCode: resp.StatusCode,
		Content:    body,
		Links:      links,
	}, nil
}

// Extract collects every anchor href in contents, in document order,
// resolved against page (or the document's <base href>). Duplicates are kept.
func (fe *HTTPFetcherExtractor) Extract(page *url.URL, contents io.Reader) ([]model.Link, error) {
	links := []model.Link{}
	base := page

	z := html.NewTokenizer(contents)
	for {
		tt := z.Next()

		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return links, fmt.Errorf("parsing %s: %w", page, err)
			}
			return links, nil
		case html.StartTagToken, html.SelfClosingTagToken:
			token := z.Token()
			href, ok := attr(token, "href")
			if !ok {
				continue
			}
			switch token.Data {
			case "base":
				if ref, err := url.Parse(strings.TrimSpace(href)); err == nil {
					base = page.ResolveReference(ref)
				}
			case "a":
				ref, err := url.Parse(strings.TrimSpace(href))
				if err != nil {
					continue
				}
				links = append(links, model.Link{
					Raw: href,
					URL: model.Normalize(base.ResolveReference(ref)),
				})
			}
		}
	}
}

func attr(token html.Token, key string) (string, bool) {
	for _, a := range token.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
