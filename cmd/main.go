package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"

	"inviteCrawler/domain/model"
)

type flags struct {
	configPath  string
	concurrency int
	storeKind   string
	out         string
	seeds       string
	logLevel    string
}

func parseFlags(args []string) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("inviteCrawler", flag.ContinueOnError)
	fs.StringVar(&f.configPath, "config", "", "path to a YAML config file")
	fs.IntVar(&f.concurrency, "concurrency", 0, "number of sites crawled at once")
	fs.StringVar(&f.storeKind, "store", "", "link store: file, memory or redis")
	fs.StringVar(&f.out, "out", "", "file discovered links are appended to")
	fs.StringVar(&f.seeds, "seeds", "", "comma separated site urls, or @path to a seed file")
	fs.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	err := fs.Parse(args)
	return f, err
}

func (f flags) apply(cfg *AppConfig) {
	if f.concurrency > 0 {
		cfg.Concurrency = f.concurrency
	}
	if f.storeKind != "" {
		cfg.Store.Kind = f.storeKind
	}
	if f.out != "" {
		cfg.Store.Path = f.out
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	switch {
	case strings.HasPrefix(f.seeds, "@"):
		cfg.Seeds.File = strings.TrimPrefix(f.seeds, "@")
	case f.seeds != "":
		cfg.Seeds.URLs = strings.Split(f.seeds, ",")
	}
}

func newLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logger.Warnf("unknown log level %q, using info", level)
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

func listenForCancellationAndAddToContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	f, err := parseFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}

	cfg, err := LoadConfig(f.configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	f.apply(&cfg)

	logger := newLogger(cfg.LogLevel)

	ctx, cancel := listenForCancellationAndAddToContext()
	defer cancel()

	app, err := NewApp(cfg, logger)
	if err != nil {
		logger.WithError(err).Error("invalid configuration")
		return 2
	}

	_, runErr := app.Run(ctx, nil)
	if err := app.Close(); err != nil {
		logger.WithError(err).Error("closing link store")
		return 1
	}
	if runErr != nil {
		if model.IsStoreError(runErr) {
			logger.WithError(runErr).Error("discovered links could not be stored")
		} else {
			logger.WithError(runErr).Error("crawl failed")
		}
		return 1
	}
	return 0
}
