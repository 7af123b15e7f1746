package model

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
}

// Normalize returns a copy of u in the canonical form used for dedup:
// lowercase scheme and host, default port and fragment removed, empty path as "/".
func Normalize(u *url.URL) *url.URL {
	if u == nil {
		return nil
	}
	n := *u
	n.Scheme = strings.ToLower(n.Scheme)
	n.Host = strings.ToLower(n.Host)
	if host, port, err := net.SplitHostPort(n.Host); err == nil && defaultPorts[n.Scheme] == port {
		n.Host = host
	}
	n.Fragment = ""
	n.RawFragment = ""
	if n.Path == "" && n.Opaque == "" {
		n.Path = "/"
		n.RawPath = ""
	}
	return &n
}

// Key is the string two URLs are compared by.
func Key(u *url.URL) string {
	return Normalize(u).String()
}

// ParseAbsolute parses raw and requires an http(s) scheme and a host.
func ParseAbsolute(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, ErrInvalidBaseURL
	}
	return Normalize(u), nil
}
