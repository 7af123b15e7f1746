package model

import (
	"fmt"
	"net/url"
)

// Link is an outbound anchor found on a page.
type Link struct {
	Raw string   // href as written in the markup
	URL *url.URL // absolute, resolved against the page
}

// FetchResult of a single page request. Links are in document order and may repeat.
type FetchResult struct {
	StatusCode int
	Content    []byte
	Links      []Link
}

// FetchError is returned when a page could not be retrieved or parsed.
type FetchError struct {
	URL        string
	StatusCode int // zero when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
