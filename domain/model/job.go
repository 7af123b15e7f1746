package model

import "net/url"

// Status of a site crawl.
type Status int

const (
	Pending Status = iota
	Running
	Found
	Exhausted
	Failed
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Running:
		return "running"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Found || s == Exhausted || s == Failed
}

// SiteJob represents one site to crawl and, once done, its outcome.
type SiteJob struct {
	BaseURL  *url.URL
	Status   Status
	Target   TargetLink // set when Status is Found
	Recorded bool       // this job's insert added Target to the store
	Visited  int        // pages fetched, failed fetches included
	Err      error      // cause when Status is Failed
}

// TargetLink is an invitation link matching the configured prefix.
type TargetLink string

func (t TargetLink) String() string {
	return string(t)
}
