package queue

import (
	"context"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Handler processes one job payload. A non-nil error marks the job failed;
// it is logged and never propagated past the job.
type Handler func(ctx context.Context, payload []byte) error

// Consumer reads one topic and dispatches each message to a Handler. Job
// failures are terminal for that job only: they neither crash the worker
// nor block the rest of the queue.
type Consumer struct {
	reader     *kafkago.Reader
	handle     Handler
	log        *zap.SugaredLogger
	jobTimeout time.Duration
}

func NewConsumer(brokers []string, topic, groupID string, jobTimeout time.Duration, log *zap.SugaredLogger, handle Handler) *Consumer {
	r := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	return &Consumer{reader: r, handle: handle, log: log, jobTimeout: jobTimeout}
}

// Run consumes until ctx is canceled.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		m, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Errorf("kafka read error: %v", err)
			time.Sleep(time.Second)
			continue
		}
		c.process(ctx, m)
	}
}

func (c *Consumer) process(parent context.Context, m kafkago.Message) {
	// Bounded per job so a stuck decode cannot hold the slot forever.
	ctx, cancel := context.WithTimeout(parent, c.jobTimeout)
	defer cancel()
	defer func() {
		// A panicking job must not take down the worker.
		if r := recover(); r != nil {
			c.log.Errorw("job panicked", "topic", m.Topic, "offset", m.Offset, "panic", r)
		}
	}()
	if err := c.handle(ctx, m.Value); err != nil {
		c.log.Errorw("job failed", "topic", m.Topic, "offset", m.Offset, "error", err)
	}
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}
