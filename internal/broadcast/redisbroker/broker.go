package redisbroker

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/abababa124444-cmd/arab-chat1/internal/broadcast"
)

// Broker shares fan-out groups between service instances through Redis pub/sub.
// Membership stays local; every published frame makes a round trip through Redis
// and is delivered to the local members of its group by the pattern subscription.
type Broker struct {
	client *redis.Client
	prefix string
	local  *broadcast.Hub
}

func New(client *redis.Client, prefix string) *Broker {
	return &Broker{
		client: client,
		prefix: prefix,
		local:  broadcast.NewHub(),
	}
}

func (b *Broker) Subscribe(group string, sub broadcast.Subscriber) {
	b.local.Subscribe(group, sub)
}

func (b *Broker) Unsubscribe(group string, sub broadcast.Subscriber) {
	b.local.Unsubscribe(group, sub)
}

// Members counts the subscribers of group on this instance only.
func (b *Broker) Members(group string) int {
	return b.local.Members(group)
}

func (b *Broker) Publish(ctx context.Context, group string, payload []byte) error {
	if err := b.client.Publish(ctx, b.prefix+group, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", group, err)
	}
	return nil
}

// Start subscribes to every group under the prefix and forwards frames until ctx is done.
// It returns once the subscription is confirmed by the server.
func (b *Broker) Start(ctx context.Context) error {
	logger := zerolog.Ctx(ctx).With().Str("func", "redisbroker.Start").Logger()

	pubsub := b.client.PSubscribe(ctx, b.prefix+"*")
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return fmt.Errorf("failed to subscribe to %s*: %w", b.prefix, err)
	}

	go func() {
		defer func() {
			_ = pubsub.Close()
		}()

		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					logger.Warn().Msg("redis subscription closed")
					return
				}
				group := strings.TrimPrefix(msg.Channel, b.prefix)
				b.local.Deliver(group, []byte(msg.Payload))
			}
		}
	}()

	logger.Info().Str("pattern", b.prefix+"*").Msg("redis broker subscribed")

	return nil
}

func (b *Broker) Ping(ctx context.Context) error {
	return b.client.Ping(ctx).Err()
}
