package out

import (
	"context"

	"ticketassign/core/domain"
)

// SimilarTicketFinder generates an embedding for the new ticket and looks up
// historically similar tickets. Strictly outside the core per §1's
// Non-goals: the core never generates embeddings or performs similarity
// search, it only consumes the resulting list.
type SimilarTicketFinder interface {
	FindSimilar(ctx context.Context, ticket domain.Ticket, limit int) ([]domain.SimilarTicket, error)
}
