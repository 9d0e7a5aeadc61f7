package persistence

import (
	"context"
	"fmt"
	"time"

	"ticketassign/core/domain"
	"ticketassign/core/port/out"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// SnapshotStore implements out.SnapshotStore against Postgres.
type SnapshotStore struct {
	db *sqlx.DB
}

// NewSnapshotStore creates a new SnapshotStore.
func NewSnapshotStore(db *sqlx.DB) out.SnapshotStore {
	return &SnapshotStore{db: db}
}

func (s *SnapshotStore) ListMembers(ctx context.Context, roleFilter domain.Role) ([]domain.Member, error) {
	query := `
		SELECT id, name, email, timezone, role, skill_tags
		FROM members
		WHERE role = $1
		ORDER BY id`

	var rows []memberRow
	if err := s.db.SelectContext(ctx, &rows, query, string(roleFilter)); err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	members := make([]domain.Member, len(rows))
	for i, row := range rows {
		members[i] = row.toDomain()
	}
	return members, nil
}

func (s *SnapshotStore) ListActiveTickets(ctx context.Context, memberIDs []string) (map[string][]domain.ActiveTicket, error) {
	result := make(map[string][]domain.ActiveTicket, len(memberIDs))
	if len(memberIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT assignee_id, priority, status, created_at
		FROM tickets
		WHERE assignee_id = ANY($1)
		  AND status IN ('Open', 'InProgress', 'Blocked', 'Pending')`

	var rows []activeTicketRow
	if err := s.db.SelectContext(ctx, &rows, query, pq.Array(memberIDs)); err != nil {
		return nil, fmt.Errorf("list active tickets: %w", err)
	}

	for _, row := range rows {
		result[row.AssigneeID] = append(result[row.AssigneeID], domain.ActiveTicket{
			Priority:  domain.Priority(row.Priority),
			Status:    domain.TicketStatus(row.Status),
			CreatedAt: row.CreatedAt.Unix(),
		})
	}
	return result, nil
}

func (s *SnapshotStore) ListActiveLeaves(ctx context.Context, memberIDs []string, today string) (map[string]bool, error) {
	result := make(map[string]bool, len(memberIDs))
	if len(memberIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT DISTINCT member_id
		FROM leave_records
		WHERE member_id = ANY($1)
		  AND start_date <= $2
		  AND end_date >= $2`

	var ids []string
	if err := s.db.SelectContext(ctx, &ids, query, pq.Array(memberIDs), today); err != nil {
		return nil, fmt.Errorf("list active leaves: %w", err)
	}

	for _, id := range ids {
		result[id] = true
	}
	return result, nil
}

func (s *SnapshotStore) ListHolidays(ctx context.Context, date string, regions []domain.Region) ([]domain.HolidayEntry, error) {
	if len(regions) == 0 {
		return nil, nil
	}

	regionStrs := make([]string, len(regions))
	for i, r := range regions {
		regionStrs[i] = string(r)
	}

	query := `
		SELECT date, region
		FROM holidays
		WHERE date = $1 AND region = ANY($2)`

	var rows []holidayRow
	if err := s.db.SelectContext(ctx, &rows, query, date, pq.Array(regionStrs)); err != nil {
		return nil, fmt.Errorf("list holidays: %w", err)
	}

	holidays := make([]domain.HolidayEntry, len(rows))
	for i, row := range rows {
		holidays[i] = domain.HolidayEntry{Date: row.Date, Region: domain.Region(row.Region)}
	}
	return holidays, nil
}

func (s *SnapshotStore) CountRecentAssignments(ctx context.Context, memberIDs []string, windowDays int) (map[string]int, error) {
	result := make(map[string]int, len(memberIDs))
	if len(memberIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT assignee_id, COUNT(*) AS cnt
		FROM ticket_assignments
		WHERE assignee_id = ANY($1)
		  AND assigned_at >= $2
		GROUP BY assignee_id`

	cutoff := time.Now().UTC().AddDate(0, 0, -windowDays)

	var rows []recentAssignmentRow
	if err := s.db.SelectContext(ctx, &rows, query, pq.Array(memberIDs), cutoff); err != nil {
		return nil, fmt.Errorf("count recent assignments: %w", err)
	}

	for _, row := range rows {
		result[row.AssigneeID] = row.Count
	}
	return result, nil
}

type memberRow struct {
	ID        string         `db:"id"`
	Name      string         `db:"name"`
	Email     string         `db:"email"`
	Timezone  string         `db:"timezone"`
	Role      string         `db:"role"`
	SkillTags pq.StringArray `db:"skill_tags"`
}

func (r memberRow) toDomain() domain.Member {
	return domain.Member{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Timezone:  r.Timezone,
		Role:      domain.Role(r.Role),
		SkillTags: r.SkillTags,
	}
}

type activeTicketRow struct {
	AssigneeID string    `db:"assignee_id"`
	Priority   string    `db:"priority"`
	Status     string    `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
}

type holidayRow struct {
	Date   string `db:"date"`
	Region string `db:"region"`
}

type recentAssignmentRow struct {
	AssigneeID string `db:"assignee_id"`
	Count      int    `db:"cnt"`
}
