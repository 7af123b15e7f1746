//go:generate mockgen -destination=internal/mocks/message_writer_mock.go -package=mocks . MessageWriter

package kafkaPublisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"inviteCrawler/domain/model"
)

// MessageWriter abstracts kafka.Writer.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// FoundLink is the payload consumed by the post scraping pipeline.
type FoundLink struct {
	Site    string    `json:"site"`
	Link    string    `json:"link"`
	Pages   int       `json:"pages_visited"`
	FoundAt time.Time `json:"found_at"`
}

// Publisher announces discovered links on a Kafka topic.
type Publisher struct {
	writer MessageWriter
	now    func() time.Time
}

func New(broker, topic string) *Publisher {
	return NewWithWriter(&kafka.Writer{
		Addr:                   kafka.TCP(broker),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: false,
	})
}

// NewWithWriter builds a publisher using a custom writer (tests).
func NewWithWriter(writer MessageWriter) *Publisher {
	return &Publisher{writer: writer, now: time.Now}
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// PublishLink writes the job's target link keyed by its site.
func (p *Publisher) PublishLink(ctx context.Context, job model.SiteJob) error {
	site := ""
	if job.BaseURL != nil {
		site = job.BaseURL.String()
	}
	now := p.now().UTC()
	payload, err := json.Marshal(FoundLink{
		Site:    site,
		Link:    job.Target.String(),
		Pages:   job.Visited,
		FoundAt: now,
	})
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(site),
		Value: payload,
		Time:  now,
	}

	return p.writer.WriteMessages(ctx, msg)
}
