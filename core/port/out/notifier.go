package out

import (
	"context"

	"ticketassign/core/domain"
)

// Notifier delivers human-review triggers and team-lead-notification
// annotations to an out-of-band channel. Never called by the core itself.
type Notifier interface {
	NotifyHumanReview(ctx context.Context, ticket domain.Ticket, trigger domain.Trigger) error
	NotifyTeamLead(ctx context.Context, ticket domain.Ticket, decision domain.Decision) error
}
