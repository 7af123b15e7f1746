package reportPrinter_test

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"testing"

	"inviteCrawler/domain/adapters/reportPrinter"
	"inviteCrawler/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bufferLogger struct {
	bytes.Buffer
}

func (b *bufferLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(&b.Buffer, format+"\n", args...)
}

func sampleReport() model.Report {
	a, _ := url.Parse("https://a.edu/")
	b, _ := url.Parse("https://b.edu/")
	c, _ := url.Parse("https://c.edu/")
	r := model.Report{}
	r.Add(model.SiteJob{BaseURL: a, Status: model.Found, Target: "https://edstem.org/us/join/a", Visited: 2})
	r.Add(model.SiteJob{BaseURL: b, Status: model.Exhausted, Visited: 9})
	r.Add(model.SiteJob{BaseURL: c, Status: model.Failed, Err: errors.New("no such host")})
	return r
}

func TestReportPrinter_Print(t *testing.T) {
	logger := &bufferLogger{}

	reportPrinter.New(logger).Print(sampleReport())

	out := logger.String()
	assert.Contains(t, out, "Site: https://a.edu/ Status: found Link: https://edstem.org/us/join/a Pages: 2")
	assert.Contains(t, out, "Site: https://b.edu/ Status: exhausted Pages: 9")
	assert.Contains(t, out, "Found: 1 Exhausted: 1 Failed: 1")
	assert.Contains(t, out, "Failed: https://c.edu/ Cause: no such host")
}

func TestWriteFailedSites(t *testing.T) {
	var sb strings.Builder

	require.NoError(t, reportPrinter.WriteFailedSites(&sb, sampleReport()))

	assert.Equal(t, "https://c.edu/\n", sb.String())
}
