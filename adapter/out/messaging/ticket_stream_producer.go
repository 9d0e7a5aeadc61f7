// Package messaging provides Redis Streams adapters for ticket ingestion and
// decision notification.
package messaging

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/redis/go-redis/v9"
)

// Stream names.
const (
	StreamTicketsCreated    = "tickets.created"
	StreamNotifyHumanReview = "notify.human_review"
	StreamNotifyTeamLead    = "notify.team_lead"
)

// RedisProducer publishes ticket and notification jobs onto Redis Streams.
type RedisProducer struct {
	client *redis.Client
}

// NewRedisProducer creates a new RedisProducer.
func NewRedisProducer(client *redis.Client) *RedisProducer {
	return &RedisProducer{client: client}
}

// PublishTicketCreated enqueues a normalized ticket-created job for the
// assignment consumer to pick up.
func (p *RedisProducer) PublishTicketCreated(ctx context.Context, job any) error {
	return p.publish(ctx, StreamTicketsCreated, job)
}

// PublishHumanReviewNotification enqueues a human-review trigger for
// out-of-band delivery.
func (p *RedisProducer) PublishHumanReviewNotification(ctx context.Context, job any) error {
	return p.publish(ctx, StreamNotifyHumanReview, job)
}

// PublishTeamLeadNotification enqueues a moderate-confidence annotation for
// out-of-band delivery.
func (p *RedisProducer) PublishTeamLeadNotification(ctx context.Context, job any) error {
	return p.publish(ctx, StreamNotifyTeamLead, job)
}

func (p *RedisProducer) publish(ctx context.Context, stream string, job any) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	err = p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		ID:     "*",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to publish to %s: %w", stream, err)
	}

	return nil
}
