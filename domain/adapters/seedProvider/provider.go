// Package seedProvider supplies the list of sites to crawl.
package seedProvider

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"inviteCrawler/domain/model"
)

type (
	// Fetcher is used to download the directory page.
	Fetcher interface {
		Fetch(ctx context.Context, u *url.URL) (model.FetchResult, error)
	}
)

// Static provides a fixed list of sites.
type Static struct {
	sites []string
}

func NewStatic(sites []string) *Static {
	return &Static{sites: sites}
}

func (s *Static) Provide(_ context.Context) ([]*url.URL, error) {
	out := make([]*url.URL, 0, len(s.sites))
	for i, raw := range s.sites {
		u, err := model.ParseAbsolute(raw)
		if err != nil {
			return nil, fmt.Errorf("seed %d %q: %w", i+1, raw, err)
		}
		out = append(out, u)
	}
	return dedup(out), nil
}

// File reads one site per line; blank lines and lines starting with # are ignored.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Provide(_ context.Context) ([]*url.URL, error) {
	fh, err := os.Open(f.path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	sites, err := ParseList(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.path, err)
	}
	return sites, nil
}

// ParseList parses a newline separated list of sites.
func ParseList(r io.Reader) ([]*url.URL, error) {
	var out []*url.URL
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		u, err := model.ParseAbsolute(text)
		if err != nil {
			return nil, fmt.Errorf("line %d %q: %w", line, text, err)
		}
		out = append(out, u)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return dedup(out), nil
}

// Directory scrapes a directory page once and keeps the links ending in suffix,
// for instance every department homepage listed on a university A-Z page.
type Directory struct {
	fetcher Fetcher
	page    string
	suffix  string
}

func NewDirectory(fetcher Fetcher, page, suffix string) *Directory {
	return &Directory{fetcher: fetcher, page: page, suffix: suffix}
}

func (d *Directory) Provide(ctx context.Context) ([]*url.URL, error) {
	page, err := model.ParseAbsolute(d.page)
	if err != nil {
		return nil, fmt.Errorf("directory page %q: %w", d.page, err)
	}
	res, err := d.fetcher.Fetch(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("reading directory: %w", err)
	}
	var out []*url.URL
	for _, link := range res.Links {
		if !strings.HasSuffix(link.Raw, d.suffix) {
			continue
		}
		if link.URL == nil || !link.URL.IsAbs() || link.URL.Host == "" {
			continue
		}
		out = append(out, link.URL)
	}
	return dedup(out), nil
}

func dedup(sites []*url.URL) []*url.URL {
	seen := make(map[string]struct{}, len(sites))
	out := sites[:0]
	for _, u := range sites {
		key := model.Key(u)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, u)
	}
	return out
}
