package urlClassifier_test

import (
	"net/url"
	"strings"
	"testing"

	"inviteCrawler/domain/adapters/urlClassifier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestClassifier_IsCrawlable(t *testing.T) {
	c := urlClassifier.New("", nil)

	t.Run("non document extensions are not crawlable in any case", func(t *testing.T) {
		for _, ext := range urlClassifier.DefaultNonHTMLExtensions {
			for _, variant := range []string{ext, strings.ToUpper(ext)} {
				u := mustParse(t, "https://x.edu/files/report"+variant)
				assert.False(t, c.IsCrawlable(u), "expected %s to be skipped", u)
			}
		}
	})
	t.Run("pages are crawlable", func(t *testing.T) {
		for _, raw := range []string{
			"https://x.edu/",
			"https://x.edu/about",
			"https://x.edu/about.html",
			"https://x.edu/pdf",
			"https://x.edu/download?file=a.pdf",
			"https://x.edu/a.pdf/index",
		} {
			assert.True(t, c.IsCrawlable(mustParse(t, raw)), "expected %s to be crawlable", raw)
		}
	})
	t.Run("nil and unparsable urls are not crawlable", func(t *testing.T) {
		assert.False(t, c.IsCrawlable(nil))
		assert.False(t, c.IsCrawlableString("http://[::1"))
	})
	t.Run("configured extensions replace the defaults", func(t *testing.T) {
		custom := urlClassifier.New("", []string{"csv", " .TXT "})
		assert.False(t, custom.IsCrawlable(mustParse(t, "https://x.edu/data.csv")))
		assert.False(t, custom.IsCrawlable(mustParse(t, "https://x.edu/notes.txt")))
		assert.True(t, custom.IsCrawlable(mustParse(t, "https://x.edu/paper.pdf")))
	})
}

func TestClassifier_IsTarget(t *testing.T) {
	c := urlClassifier.New("", nil)

	assert.True(t, c.IsTarget("https://edstem.org/us/join/abc123"))
	assert.False(t, c.IsTarget("https://EDSTEM.org/us/join/abc123"), "prefix match is case sensitive")
	assert.False(t, c.IsTarget("http://edstem.org/us/join/abc123"))
	assert.False(t, c.IsTarget("https://edstem.org/us/courses/1"))
	assert.False(t, c.IsTarget(" https://edstem.org/us/join/abc123"))

	custom := urlClassifier.New("https://piazza.com/join/", nil)
	assert.True(t, custom.IsTarget("https://piazza.com/join/xyz"))
	assert.Equal(t, "https://piazza.com/join/", custom.TargetPrefix())
}

func TestClassifier_IsSameSite(t *testing.T) {
	c := urlClassifier.New("", nil)
	base := mustParse(t, "https://x.edu/")

	assert.True(t, c.IsSameSite(base, mustParse(t, "https://x.edu/about")))
	assert.True(t, c.IsSameSite(base, mustParse(t, "http://X.edu/other")))
	assert.False(t, c.IsSameSite(base, mustParse(t, "https://www.x.edu/about")))
	assert.False(t, c.IsSameSite(base, mustParse(t, "https://edstem.org/us/join/abc")))
	assert.False(t, c.IsSameSite(base, mustParse(t, "mailto:someone@x.edu")))
	assert.False(t, c.IsSameSite(base, nil))
	assert.False(t, c.IsSameSite(nil, base))
}
