//go:generate moq -out internal/mocks/fetcher_moq.go -pkg mocks . Fetcher
//go:generate moq -out internal/mocks/store_moq.go -pkg mocks . Store

package crawler

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/time/rate"

	"inviteCrawler/domain/frontier"
	"inviteCrawler/domain/model"
)

// ErrPanic is the cause recorded when a crawl aborts on an unexpected fault.
var ErrPanic = errors.New("crawl aborted")

type (
	Logger interface {
		Printf(format string, args ...interface{})
	}

	// Fetcher retrieves a page and the links on it.
	Fetcher interface {
		Fetch(ctx context.Context, u *url.URL) (model.FetchResult, error)
	}

	Classifier interface {
		IsCrawlable(u *url.URL) bool
		IsTarget(raw string) bool
		IsSameSite(base, candidate *url.URL) bool
	}

	// Store records discovered target links, at most once each.
	Store interface {
		InsertIfAbsent(ctx context.Context, link string) (bool, error)
	}
)

type Options struct {
	MaxPages          int     // 0 means no limit
	RequestsPerSecond float64 // per site; 0 means no limit
}

// Crawler walks a single site breadth first until it finds a target link.
// One Crawler may run many sites concurrently; all per-site state lives in Crawl.
type Crawler struct {
	logger     Logger
	fetcher    Fetcher
	classifier Classifier
	store      Store
	opts       Options
}

func New(logger Logger, fetcher Fetcher, classifier Classifier, store Store, opts Options) *Crawler {
	return &Crawler{
		logger:     logger,
		fetcher:    fetcher,
		classifier: classifier,
		store:      store,
		opts:       opts,
	}
}

// Crawl visits base and then same-site pages in breadth first order. It stops
// at the first page carrying a target link, which is written to the store.
// The returned job is always in a terminal state.
func (c *Crawler) Crawl(ctx context.Context, base *url.URL) (job model.SiteJob) {
	job = model.SiteJob{BaseURL: base, Status: model.Running}

	defer func() {
		if r := recover(); r != nil {
			job.Status = model.Failed
			job.Err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()

	if base == nil || !base.IsAbs() || base.Host == "" {
		return failed(job, model.ErrInvalidBaseURL)
	}
	base = model.Normalize(base)
	job.BaseURL = base

	limiter := rate.NewLimiter(rate.Inf, 1)
	if c.opts.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(c.opts.RequestsPerSecond), 1)
	}

	pending := frontier.New(base)
	for {
		if err := ctx.Err(); err != nil {
			return failed(job, err)
		}
		if c.opts.MaxPages > 0 && job.Visited >= c.opts.MaxPages {
			c.logger.Printf("%s: page limit of %d reached", base, c.opts.MaxPages)
			break
		}

		page, ok := pending.Pop()
		if !ok {
			break
		}
		if !c.classifier.IsCrawlable(page) {
			c.logger.Printf("skipping non-html %s", page)
			continue
		}

		if err := limiter.Wait(ctx); err != nil {
			return failed(job, err)
		}

		job.Visited++
		links, err := c.visit(ctx, page)
		if err != nil {
			c.logger.Printf("error crawling %s: %s", page, err)
			continue
		}

		if target, found := c.firstTarget(links); found {
			inserted, err := c.store.InsertIfAbsent(ctx, target)
			if err != nil {
				return failed(job, &model.StoreError{Link: target, Err: err})
			}
			if !inserted {
				c.logger.Printf("%s: %s already recorded", base, target)
			}
			c.logger.Printf("found %s on %s", target, page)
			job.Status = model.Found
			job.Target = model.TargetLink(target)
			job.Recorded = inserted
			return job
		}

		for _, link := range links {
			if !c.classifier.IsSameSite(base, link.URL) || !c.classifier.IsCrawlable(link.URL) {
				continue
			}
			pending.Push(link.URL)
		}
	}

	job.Status = model.Exhausted
	return job
}

// visit fetches page. A fault while handling the page is reported as an
// error so the crawl carries on with the rest of the frontier.
func (c *Crawler) visit(ctx context.Context, page *url.URL) (links []model.Link, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("processing %s: %v", page, r)
		}
	}()
	res, err := c.fetcher.Fetch(ctx, page)
	if err != nil {
		return nil, err
	}
	return res.Links, nil
}

func (c *Crawler) firstTarget(links []model.Link) (string, bool) {
	for _, link := range links {
		if c.classifier.IsTarget(link.Raw) {
			return strings.TrimSpace(link.Raw), true
		}
	}
	return "", false
}

func failed(job model.SiteJob, err error) model.SiteJob {
	job.Status = model.Failed
	job.Err = err
	return job
}
