package urlClassifier

import (
	"net/url"
	"strings"
)

// DefaultTargetPrefix is the join link prefix of the discussion platform.
const DefaultTargetPrefix = "https://edstem.org/us/join/"

// DefaultNonHTMLExtensions are path suffixes that are never fetched.
var DefaultNonHTMLExtensions = []string{".pdf", ".docx", ".jpg", ".png", ".gif", ".xlsx", ".pptx", ".zip"}

// Classifier decides which links are worth fetching and which are targets.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	extensions   []string
	targetPrefix string
}

// New returns a Classifier. Empty arguments fall back to the defaults.
// Extensions may be given with or without the leading dot.
func New(targetPrefix string, extensions []string) *Classifier {
	if targetPrefix == "" {
		targetPrefix = DefaultTargetPrefix
	}
	if len(extensions) == 0 {
		extensions = DefaultNonHTMLExtensions
	}
	exts := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	return &Classifier{
		extensions:   exts,
		targetPrefix: targetPrefix,
	}
}

// IsCrawlable is false for nil URLs and for paths ending in a non-document extension.
func (c *Classifier) IsCrawlable(u *url.URL) bool {
	if u == nil {
		return false
	}
	path := strings.ToLower(u.Path)
	for _, ext := range c.extensions {
		if strings.HasSuffix(path, ext) {
			return false
		}
	}
	return true
}

// IsCrawlableString parses raw first; unparsable input is not crawlable.
func (c *Classifier) IsCrawlableString(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return c.IsCrawlable(u)
}

// IsTarget matches the raw link against the target prefix, case-sensitively.
func (c *Classifier) IsTarget(raw string) bool {
	return strings.HasPrefix(raw, c.targetPrefix)
}

// IsSameSite compares the hosts of base and candidate.
func (c *Classifier) IsSameSite(base, candidate *url.URL) bool {
	if base == nil || candidate == nil || base.Host == "" {
		return false
	}
	return strings.EqualFold(base.Host, candidate.Host)
}

// TargetPrefix returns the configured prefix.
func (c *Classifier) TargetPrefix() string {
	return c.targetPrefix
}
