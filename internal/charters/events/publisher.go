package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/projeto-charter/charter-backend/internal/charters/domain"
)

const EventCharterCreated = "charter.created"

// CharterEvent is the message published on the events channel.
type CharterEvent struct {
	Type       string                 `json:"type"`
	OccurredAt time.Time              `json:"occurred_at"`
	Charter    *domain.ProjectCharter `json:"charter"`
}

// RedisPublisher publishes charter events to a Redis Pub/Sub channel
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

// NewRedisPublisher creates a publisher on the given channel
func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	return &RedisPublisher{
		client:  client,
		channel: channel,
	}
}

func (p *RedisPublisher) PublishCreated(ctx context.Context, c *domain.ProjectCharter) error {
	data, err := json.Marshal(CharterEvent{
		Type:       EventCharterCreated,
		OccurredAt: time.Now().UTC(),
		Charter:    c,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal charter event: %w", err)
	}

	if err := p.client.Publish(ctx, p.channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish charter event: %w", err)
	}
	return nil
}

// NoopPublisher drops every event. Used when Redis is not configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishCreated(context.Context, *domain.ProjectCharter) error { return nil }
