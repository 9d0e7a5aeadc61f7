// Package similarity implements the similarity collaborator: an OpenAI
// embedding call followed by a Neo4j vector-index lookup over historically
// resolved tickets.
package similarity

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"

	"ticketassign/core/domain"
	"ticketassign/core/port/out"
)

// Finder implements out.SimilarTicketFinder.
type Finder struct {
	openai *openai.Client
	driver neo4j.DriverWithContext
	dbName string
	model  openai.EmbeddingModel
	cb     *gobreaker.CircuitBreaker
}

// NewFinder creates a new Finder.
func NewFinder(apiKey, embeddingModel string, driver neo4j.DriverWithContext, dbName string) *Finder {
	model := openai.AdaEmbeddingV2
	if embeddingModel != "" {
		_ = model.UnmarshalText([]byte(embeddingModel))
	}

	cbSettings := gobreaker.Settings{
		Name:        "similarity-embedding",
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.ConsecutiveFailures > 5 ||
				(counts.Requests >= 10 && failureRatio >= 0.6)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("[CircuitBreaker] %s: state changed from %s to %s", name, from.String(), to.String())
		},
	}

	return &Finder{
		openai: openai.NewClient(apiKey),
		driver: driver,
		dbName: dbName,
		model:  model,
		cb:     gobreaker.NewCircuitBreaker(cbSettings),
	}
}

// EnsureIndex creates the vector index over resolved tickets if absent.
func (f *Finder) EnsureIndex(ctx context.Context) error {
	session := f.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: f.dbName})
	defer session.Close(ctx)

	_, err := session.Run(ctx,
		"CREATE VECTOR INDEX ticket_embedding_index IF NOT EXISTS "+
			"FOR (t:Ticket) "+
			"ON (t.embedding) "+
			"OPTIONS {indexConfig: {`vector.dimensions`: 1536, `vector.similarity_function`: 'cosine'}}",
		nil)
	if err != nil {
		return fmt.Errorf("create vector index: %w", err)
	}
	return nil
}

// FindSimilar embeds the ticket's title and description, then queries the
// vector index for the closest resolved tickets.
func (f *Finder) FindSimilar(ctx context.Context, ticket domain.Ticket, limit int) ([]domain.SimilarTicket, error) {
	embedding, err := f.embed(ctx, ticket.Title+"\n\n"+ticket.Description)
	if err != nil {
		return nil, fmt.Errorf("embed ticket: %w", err)
	}

	session := f.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: f.dbName})
	defer session.Close(ctx)

	result, err := session.Run(ctx,
		`CALL db.index.vector.queryNodes('ticket_embedding_index', $limit, $embedding)
		 YIELD node, score
		 RETURN node.assignee_email AS assignee_email, score, node.resolved_at AS resolved_at`,
		map[string]any{"embedding": embedding, "limit": limit})
	if err != nil {
		return nil, fmt.Errorf("vector query: %w", err)
	}

	var similar []domain.SimilarTicket
	for result.Next(ctx) {
		record := result.Record()

		email, _ := record.Get("assignee_email")
		score, _ := record.Get("score")

		st := domain.SimilarTicket{
			AssigneeEmail:   toString(email),
			SimilarityScore: toFloat64(score),
		}

		if resolvedAt, ok := record.Get("resolved_at"); ok && resolvedAt != nil {
			if ts, ok := resolvedAt.(int64); ok {
				st.ResolvedAt = &ts
			}
		}

		similar = append(similar, st)
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("read vector query results: %w", err)
	}

	return similar, nil
}

func (f *Finder) embed(ctx context.Context, text string) ([]float32, error) {
	result, err := f.cb.Execute(func() (interface{}, error) {
		resp, err := f.openai.CreateEmbeddings(ctx, openai.EmbeddingRequest{
			Model: f.model,
			Input: []string{text},
		})
		if err != nil {
			return nil, err
		}
		if len(resp.Data) == 0 {
			return nil, fmt.Errorf("embedding response had no data")
		}
		return resp.Data[0].Embedding, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]float32), nil
}

func toString(v any) string {
	s, _ := v.(string)
	return s
}

func toFloat64(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	default:
		return 0
	}
}

var _ out.SimilarTicketFinder = (*Finder)(nil)
