package model

import (
	"fmt"

	"cloudeng.io/errors"
)

// SiteFailure records why a site's crawl failed.
type SiteFailure struct {
	Site  string
	Cause error
}

// Report aggregates the terminal state of every job in a run.
// Jobs are kept in seed-list order.
type Report struct {
	Found     int
	Exhausted int
	Failed    int
	Jobs      []SiteJob
	Failures  []SiteFailure
}

// Add records a terminal job.
func (r *Report) Add(job SiteJob) {
	r.Jobs = append(r.Jobs, job)
	switch job.Status {
	case Found:
		r.Found++
	case Exhausted:
		r.Exhausted++
	case Failed:
		r.Failed++
		r.Failures = append(r.Failures, SiteFailure{Site: siteString(job), Cause: job.Err})
	}
}

// Err combines the causes of all failed sites, or returns nil.
func (r Report) Err() error {
	errs := errors.M{}
	for _, f := range r.Failures {
		errs.Append(fmt.Errorf("%s: %w", f.Site, f.Cause))
	}
	return errs.Err()
}

func siteString(job SiteJob) string {
	if job.BaseURL == nil {
		return ""
	}
	return job.BaseURL.String()
}
