package publishHook

import (
	"context"

	"inviteCrawler/domain/model"
)

type (
	Publisher interface {
		PublishLink(ctx context.Context, job model.SiteJob) error
	}

	Logger interface {
		Printf(format string, args ...interface{})
	}
)

// PublishHook forwards found links to the downstream pipeline. The link store
// remains the record of truth, so publish failures are only logged.
type PublishHook struct {
	publisher Publisher
	logger    Logger
}

func New(publisher Publisher, logger Logger) *PublishHook {
	return &PublishHook{
		publisher: publisher,
		logger:    logger,
	}
}

// Publish matches crawlerPool.CrawlerCompletedHook. A link is announced only
// by the job whose insert recorded it, so each stored link is published once.
func (h *PublishHook) Publish(ctx context.Context, job model.SiteJob) {
	if job.Status != model.Found || !job.Recorded {
		return
	}
	if err := h.publisher.PublishLink(ctx, job); err != nil {
		h.logger.Printf("Error publishing %s for %s: %s", job.Target, job.BaseURL, err)
	}
}
