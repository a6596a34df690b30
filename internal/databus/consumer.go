package databus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

type Reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

type HandlerFunc func(ctx context.Context, payload []byte) error

const (
	initialRetryDelay = 500 * time.Millisecond
	maxRetryDelay     = 30 * time.Second
)

// Consumer feeds messages from a consumer-group reader to a handler. A message the handler
// fails on is retried with backoff, and its offset is committed only once it was handled,
// so a later commit never moves past an unhandled message.
type Consumer struct {
	reader     Reader
	handler    HandlerFunc
	retryDelay time.Duration
}

func NewConsumer(reader Reader, handler HandlerFunc) *Consumer {
	return &Consumer{
		reader:     reader,
		handler:    handler,
		retryDelay: initialRetryDelay,
	}
}

// Run consumes until ctx is done.
func (c *Consumer) Run(ctx context.Context) error {
	logger := zerolog.Ctx(ctx).With().Str("func", "Consumer.Run").Logger()

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("failed to fetch message: %w", err)
		}

		if !c.handle(ctx, logger, msg) {
			return nil
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("failed to commit offset %d: %w", msg.Offset, err)
		}
	}
}

// handle runs the handler until it succeeds. It reports false when ctx is done first.
func (c *Consumer) handle(ctx context.Context, logger zerolog.Logger, msg kafka.Message) bool {
	delay := c.retryDelay
	for {
		err := c.handler(ctx, msg.Value)
		if err == nil {
			return true
		}

		logger.Error().Err(err).
			Str("topic", msg.Topic).
			Int("partition", msg.Partition).
			Int64("offset", msg.Offset).
			Dur("retry_in", delay).
			Msg("failed to handle message")

		if ctx.Err() != nil {
			return false
		}

		select {
		case <-ctx.Done():
			return false
		case <-time.After(delay):
		}

		delay = min(delay*2, maxRetryDelay)
	}
}
