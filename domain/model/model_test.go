package model_test

import (
	"errors"
	"fmt"
	"net/url"
	"testing"

	"inviteCrawler/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	for raw, want := range map[string]string{
		"HTTPS://X.EDU":             "https://x.edu/",
		"https://x.edu:443/a":       "https://x.edu/a",
		"http://x.edu:80/a?b=1#top": "http://x.edu/a?b=1",
		"http://x.edu:8080/":        "http://x.edu:8080/",
		"https://x.edu/A/B":         "https://x.edu/A/B",
		"mailto:a@x.edu":            "mailto:a@x.edu",
	} {
		u, err := url.Parse(raw)
		require.NoError(t, err)
		assert.Equal(t, want, model.Normalize(u).String(), raw)
	}
	assert.Nil(t, model.Normalize(nil))
}

func TestNormalizeDoesNotModifyInput(t *testing.T) {
	u, _ := url.Parse("https://X.edu/#frag")
	model.Normalize(u)
	assert.Equal(t, "https://X.edu/#frag", u.String())
}

func TestParseAbsolute(t *testing.T) {
	u, err := model.ParseAbsolute("  https://Econ.example.edu  ")
	require.NoError(t, err)
	assert.Equal(t, "https://econ.example.edu/", u.String())

	for _, raw := range []string{"econ.example.edu", "/path", "ftp://x.edu/", "https://", "https://econ example.edu/", "%zz"} {
		_, err := model.ParseAbsolute(raw)
		assert.ErrorIs(t, err, model.ErrInvalidBaseURL, raw)
	}
}

func TestStatus(t *testing.T) {
	assert.False(t, model.Pending.IsTerminal())
	assert.False(t, model.Running.IsTerminal())
	assert.True(t, model.Found.IsTerminal())
	assert.True(t, model.Exhausted.IsTerminal())
	assert.True(t, model.Failed.IsTerminal())
	assert.Equal(t, "exhausted", model.Exhausted.String())
	assert.Equal(t, "unknown", model.Status(42).String())
}

func TestReport(t *testing.T) {
	a, _ := url.Parse("https://a.edu/")
	b, _ := url.Parse("https://b.edu/")

	r := model.Report{}
	assert.NoError(t, r.Err())

	cause := errors.New("connection reset")
	r.Add(model.SiteJob{BaseURL: a, Status: model.Found})
	r.Add(model.SiteJob{BaseURL: b, Status: model.Failed, Err: cause})
	r.Add(model.SiteJob{BaseURL: b, Status: model.Exhausted})

	assert.Equal(t, 1, r.Found)
	assert.Equal(t, 1, r.Exhausted)
	assert.Equal(t, 1, r.Failed)
	assert.Len(t, r.Jobs, 3)
	assert.Equal(t, []model.SiteFailure{{Site: "https://b.edu/", Cause: cause}}, r.Failures)
	assert.ErrorIs(t, r.Err(), cause)
}

func TestErrors(t *testing.T) {
	storeErr := &model.StoreError{Link: "https://edstem.org/us/join/a", Err: errors.New("disk full")}
	assert.True(t, model.IsStoreError(fmt.Errorf("wrapped: %w", storeErr)))
	assert.False(t, model.IsStoreError(errors.New("other")))

	fetchErr := &model.FetchError{URL: "https://a.edu/", StatusCode: 500, Err: model.ErrUnexpectedStatus}
	assert.ErrorIs(t, fetchErr, model.ErrUnexpectedStatus)
	assert.Equal(t, "fetch https://a.edu/: status 500: unexpected status", fetchErr.Error())
}
