package in

import (
	"context"

	"ticketassign/core/domain"
)

// AssignmentService is the primary entry point consumed by adapters (HTTP
// handler, worker pool). Implemented by core/service/assignment.Engine.
type AssignmentService interface {
	AssignTicket(ctx context.Context, ticket domain.Ticket, similarTickets []domain.SimilarTicket) (*domain.Decision, error)
}
