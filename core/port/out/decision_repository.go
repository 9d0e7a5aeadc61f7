package out

import (
	"context"

	"ticketassign/core/domain"
)

// DecisionRepository persists the AssignmentRecord produced after each
// AssignTicket call. Consumed by the orchestration layer, never by the core.
type DecisionRepository interface {
	SaveAssignment(ctx context.Context, record domain.AssignmentRecord) error
	GetAssignment(ctx context.Context, id string) (*domain.AssignmentRecord, error)
}
