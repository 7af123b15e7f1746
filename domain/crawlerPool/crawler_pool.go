//go:generate moq -out internal/mocks/crawler_moq.go -pkg mocks . Crawler

package crawlerPool

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"cloudeng.io/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"inviteCrawler/domain/model"
)

// DefaultSize is the number of sites crawled at once when none is configured.
const DefaultSize = 4

type (
	Logger interface {
		Printf(format string, args ...interface{})
	}

	// Crawler runs one site to a terminal state.
	Crawler interface {
		Crawl(ctx context.Context, base *url.URL) model.SiteJob
	}
)

// CrawlerCompletedHook is called once for every job that reaches a terminal state.
type CrawlerCompletedHook func(context.Context, model.SiteJob)

func NoOpCompletedHook(ctx context.Context, job model.SiteJob) {}

// CrawlerPool runs site crawls concurrently, at most size at a time.
type CrawlerPool struct {
	logger Logger

	size    int64
	crawler Crawler

	completionHook CrawlerCompletedHook

	runTimeout time.Duration // zero means no overall deadline
}

// New creates a new CrawlerPool. A size below one uses DefaultSize.
// The completion hook runs on the crawling goroutine before its slot is freed.
func New(logger Logger, size int, crawler Crawler, runTimeout time.Duration, completionHook CrawlerCompletedHook) *CrawlerPool {
	if size < 1 {
		size = DefaultSize
	}
	if completionHook == nil {
		completionHook = NoOpCompletedHook
	}
	return &CrawlerPool{
		logger:         logger,
		size:           int64(size),
		crawler:        crawler,
		completionHook: completionHook,
		runTimeout:     runTimeout,
	}
}

// RunAll crawls every site and blocks until each has reached a terminal state.
// A failed site never affects the others. The only error returned is a
// *model.StoreError, which cancels the remaining crawls; the report then
// covers whatever had completed.
func (cp *CrawlerPool) RunAll(ctx context.Context, sites []*url.URL) (model.Report, error) {
	if cp.runTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cp.runTimeout)
		defer cancel()
	}

	jobs := make([]model.SiteJob, len(sites))
	for i, site := range sites {
		jobs[i] = model.SiteJob{BaseURL: site, Status: model.Pending}
	}

	g, gctx := errgroup.WithContext(ctx)
	slots := semaphore.NewWeighted(cp.size)

	for i, site := range sites {
		err := slots.Acquire(gctx, 1)
		if err == nil && gctx.Err() != nil {
			slots.Release(1)
			err = gctx.Err()
		}
		if err != nil {
			for j := i; j < len(jobs); j++ {
				jobs[j].Status = model.Failed
				jobs[j].Err = fmt.Errorf("not started: %w", err)
			}
			break
		}
		jobs[i].Status = model.Running

		g.Go(func() error {
			defer slots.Release(1)

			job := cp.crawl(gctx, site)
			jobs[i] = job
			cp.logger.Printf("%s: %s after %d page(s)", site, job.Status, job.Visited)

			cp.completionHook(ctx, job)

			if job.Status == model.Failed && model.IsStoreError(job.Err) {
				return job.Err
			}
			return nil
		})
	}

	err := g.Wait()

	report := model.Report{}
	for _, job := range jobs {
		report.Add(job)
	}
	return report, err
}

func (cp *CrawlerPool) crawl(ctx context.Context, site *url.URL) (job model.SiteJob) {
	defer func() {
		if r := recover(); r != nil {
			job = model.SiteJob{BaseURL: site, Status: model.Failed, Err: fmt.Errorf("crawler panicked: %v", r)}
		}
	}()
	job = cp.crawler.Crawl(ctx, site)
	if !job.Status.IsTerminal() {
		job.Err = fmt.Errorf("crawl returned in state %s", job.Status)
		job.Status = model.Failed
	}
	return job
}
