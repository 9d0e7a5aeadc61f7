package out

import (
	"context"

	"ticketassign/core/domain"
)

// SnapshotStore is the store abstraction the Snapshot Loader depends on.
// Each method is independently retryable by the implementation; the core
// treats them as total and observes only success-with-data or failure.
type SnapshotStore interface {
	// ListMembers returns every member with the given role.
	ListMembers(ctx context.Context, roleFilter domain.Role) ([]domain.Member, error)

	// ListActiveTickets returns each member's active tickets, batched by id.
	ListActiveTickets(ctx context.Context, memberIDs []string) (map[string][]domain.ActiveTicket, error)

	// ListActiveLeaves returns the set of member ids on leave today.
	ListActiveLeaves(ctx context.Context, memberIDs []string, today string) (map[string]bool, error)

	// ListHolidays returns holiday entries for the given date restricted to regions.
	ListHolidays(ctx context.Context, date string, regions []domain.Region) ([]domain.HolidayEntry, error)

	// CountRecentAssignments returns each member's assignment count within windowDays.
	CountRecentAssignments(ctx context.Context, memberIDs []string, windowDays int) (map[string]int, error)
}
