package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"justnest/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ChannelPrefix namespaces the Redis pub/sub channels of every room.
const ChannelPrefix = "justnest:"

// RedisPublisher relays notifications to other instances over Redis pub/sub.
type RedisPublisher struct {
	client *redis.Client
}

// NewRedisPublisher returns a publisher on client.
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

func (p *RedisPublisher) Broadcast(ctx context.Context, n models.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}
	if err := p.client.Publish(ctx, ChannelPrefix+n.Room, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish %s to %s: %w", n.Event, n.Room, err)
	}
	return nil
}

// RelaySubscriber feeds notifications published by other instances into the
// local hub.
type RelaySubscriber struct {
	client *redis.Client
	local  Broadcaster
	origin string
	logger *zap.Logger
}

// NewRelaySubscriber returns a subscriber delivering into local. Messages
// stamped with origin were already delivered locally and are skipped.
func NewRelaySubscriber(client *redis.Client, local Broadcaster, origin string, logger *zap.Logger) *RelaySubscriber {
	return &RelaySubscriber{client: client, local: local, origin: origin, logger: logger}
}

// Run listens on every room channel until ctx is done.
func (s *RelaySubscriber) Run(ctx context.Context) error {
	pubsub := s.client.PSubscribe(ctx, ChannelPrefix+"*")
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to %s*: %w", ChannelPrefix, err)
	}

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			s.handle(ctx, msg.Payload)
		}
	}
}

func (s *RelaySubscriber) handle(ctx context.Context, payload string) {
	var n models.Notification
	if err := json.Unmarshal([]byte(payload), &n); err != nil {
		s.logger.Warn("Ignoring malformed relayed notification", zap.Error(err))
		return
	}
	if n.Origin != "" && n.Origin == s.origin {
		return
	}
	if err := s.local.Broadcast(ctx, n); err != nil {
		s.logger.Warn("Failed to deliver relayed notification", zap.String("room", n.Room), zap.Error(err))
	}
}
