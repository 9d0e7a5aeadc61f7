// Package ingest holds the collaborators the webhook handler depends on
// before a raw event becomes a queued ticket: the audit store.
package ingest

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ticketassign/core/domain"
)

// auditDocument is the verbatim shape stored for every ingested webhook,
// independent of whether normalization into a Ticket later succeeds.
type auditDocument struct {
	EventType   string         `bson:"event_type"`
	TicketID    string         `bson:"ticket_id"`
	Title       string         `bson:"title"`
	Description string         `bson:"description"`
	Priority    string         `bson:"priority"`
	Status      string         `bson:"status"`
	CallerID    string         `bson:"caller_id"`
	Category    string         `bson:"category"`
	Metadata    map[string]any `bson:"metadata,omitempty"`
	ReceivedAt  time.Time      `bson:"received_at"`
}

// AuditStore persists every ingested webhook event verbatim, ahead of
// normalization and queueing, so a bad downstream mapping never loses the
// original payload.
type AuditStore struct {
	collection *mongo.Collection
}

// NewAuditStore creates a new AuditStore.
func NewAuditStore(client *mongo.Client, database string) *AuditStore {
	return &AuditStore{collection: client.Database(database).Collection("ingested_ticket_events")}
}

// EnsureIndexes creates the indexes the audit store relies on for lookups
// and retention.
func (s *AuditStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "ticket_id", Value: 1}},
			Options: options.Index().SetName("ticket_id_idx"),
		},
		{
			Keys:    bson.D{{Key: "received_at", Value: 1}},
			Options: options.Index().SetName("received_at_ttl_idx").SetExpireAfterSeconds(90 * 24 * 60 * 60),
		},
	})
	if err != nil {
		return fmt.Errorf("ensure audit indexes: %w", err)
	}
	return nil
}

// Save persists one ingested event exactly as received.
func (s *AuditStore) Save(ctx context.Context, event domain.IngestedTicketEvent, receivedAt time.Time) error {
	doc := auditDocument{
		EventType:   event.EventType,
		TicketID:    event.TicketID,
		Title:       event.Title,
		Description: event.Description,
		Priority:    event.Priority,
		Status:      event.Status,
		CallerID:    event.CallerID,
		Category:    event.Category,
		Metadata:    event.Metadata,
		ReceivedAt:  receivedAt,
	}
	if _, err := s.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit document: %w", err)
	}
	return nil
}
