package main

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"

	"cloudeng.io/errors"

	"inviteCrawler/domain/adapters/kafkaPublisher"
	"inviteCrawler/domain/adapters/redisLinkStore"
	"inviteCrawler/domain/adapters/reportPrinter"
	"inviteCrawler/domain/adapters/seedProvider"
	"inviteCrawler/domain/adapters/urlClassifier"
	"inviteCrawler/domain/adapters/urlFetcherExtractor"
	"inviteCrawler/domain/crawler"
	"inviteCrawler/domain/crawlerPool"
	publishHook "inviteCrawler/domain/hooks/publishFoundLink"
	"inviteCrawler/domain/model"
	"inviteCrawler/domain/store"
)

type (
	Logger interface {
		Printf(format string, args ...interface{})
	}

	SeedProvider interface {
		Provide(ctx context.Context) ([]*url.URL, error)
	}

	LinkStore interface {
		InsertIfAbsent(ctx context.Context, link string) (bool, error)
		Links(ctx context.Context) ([]string, error)
		Close() error
	}
)

type App struct {
	cfg    AppConfig
	logger Logger

	seeds       []SeedProvider
	store       LinkStore
	publisher   *kafkaPublisher.Publisher
	crawlerPool *crawlerPool.CrawlerPool
}

func NewApp(cfg AppConfig, logger Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	linkStore, err := openStore(cfg.Store)
	if err != nil {
		return nil, err
	}

	fetcherExtractor := urlFetcherExtractor.NewHTTPFetcherExtractor(cfg.FetchTimeout,
		urlFetcherExtractor.WithUserAgent(cfg.UserAgent),
		urlFetcherExtractor.WithMaxBodyBytes(cfg.MaxBodyBytes),
	)
	classifier := urlClassifier.New(cfg.TargetPrefix, cfg.NonHTMLExtensions)

	app := &App{
		cfg:    cfg,
		logger: logger,
		store:  linkStore,
	}

	if len(cfg.Seeds.URLs) > 0 {
		app.seeds = append(app.seeds, seedProvider.NewStatic(cfg.Seeds.URLs))
	}
	if cfg.Seeds.File != "" {
		app.seeds = append(app.seeds, seedProvider.NewFile(cfg.Seeds.File))
	}
	if cfg.Seeds.DirectoryURL != "" {
		app.seeds = append(app.seeds, seedProvider.NewDirectory(fetcherExtractor, cfg.Seeds.DirectoryURL, cfg.Seeds.DirectorySuffix))
	}

	completionHook := crawlerPool.NoOpCompletedHook
	if cfg.Kafka.Topic != "" {
		app.publisher = kafkaPublisher.New(cfg.Kafka.Broker, cfg.Kafka.Topic)
		completionHook = publishHook.New(app.publisher, logger).Publish
	}

	siteCrawler := crawler.New(logger, fetcherExtractor, classifier, linkStore, crawler.Options{
		MaxPages:          cfg.MaxPages,
		RequestsPerSecond: cfg.RequestsPerSecond,
	})
	app.crawlerPool = crawlerPool.New(logger, cfg.Concurrency, siteCrawler, cfg.RunTimeout, completionHook)

	return app, nil
}

func openStore(cfg StoreConfig) (LinkStore, error) {
	switch cfg.Kind {
	case StoreMemory:
		return store.NewMemoryStore(), nil
	case StoreRedis:
		return redisLinkStore.New(cfg.RedisAddr, cfg.RedisPrefix), nil
	default:
		return store.OpenFileStore(cfg.Path)
	}
}

// Sites collects the seed sites from every configured provider, dropping repeats.
func (a *App) Sites(ctx context.Context) ([]*url.URL, error) {
	var sites []*url.URL
	seen := map[string]struct{}{}
	for _, p := range a.seeds {
		provided, err := p.Provide(ctx)
		if err != nil {
			return nil, err
		}
		for _, u := range provided {
			key := model.Key(u)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			sites = append(sites, u)
		}
	}
	return sites, nil
}

// Run crawls every seed site and prints the report. The returned error is
// non-nil when links could not be stored; failed sites alone are not an error.
func (a *App) Run(ctx context.Context, out io.Writer) (model.Report, error) {
	sites, err := a.Sites(ctx)
	if err != nil {
		return model.Report{}, fmt.Errorf("loading seeds: %w", err)
	}
	a.logger.Printf("crawling %d site(s) with %d worker(s)", len(sites), a.cfg.Concurrency)

	report, runErr := a.crawlerPool.RunAll(ctx, sites)

	reportPrinter.New(a.logger).Print(report)
	if out != nil {
		links, err := a.store.Links(ctx)
		if err != nil {
			a.logger.Printf("listing stored links: %s", err)
		}
		for _, l := range links {
			fmt.Fprintln(out, l)
		}
	}

	if a.cfg.FailedSitesFile != "" && report.Failed > 0 {
		if err := writeFailedSites(a.cfg.FailedSitesFile, report); err != nil {
			a.logger.Printf("writing failed sites: %s", err)
		}
	}
	return report, runErr
}

func writeFailedSites(path string, report model.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := reportPrinter.WriteFailedSites(f, report); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Close flushes and closes the link store and the publisher.
func (a *App) Close() error {
	errs := errors.M{}
	errs.Append(a.store.Close())
	if a.publisher != nil {
		errs.Append(a.publisher.Close())
	}
	return errs.Err()
}
