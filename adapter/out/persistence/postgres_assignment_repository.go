package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"ticketassign/core/domain"
	"ticketassign/core/port/out"
	"ticketassign/pkg/snowflake"

	"github.com/jmoiron/sqlx"
)

// AssignmentRepository implements out.DecisionRepository against Postgres.
type AssignmentRepository struct {
	db  *sqlx.DB
	gen *snowflake.Generator
}

// NewAssignmentRepository creates a new AssignmentRepository.
func NewAssignmentRepository(db *sqlx.DB, gen *snowflake.Generator) out.DecisionRepository {
	return &AssignmentRepository{db: db, gen: gen}
}

func (r *AssignmentRepository) SaveAssignment(ctx context.Context, record domain.AssignmentRecord) error {
	if record.ID == "" {
		id, err := r.gen.Generate()
		if err != nil {
			return fmt.Errorf("generate assignment id: %w", err)
		}
		record.ID = fmt.Sprintf("%d", id)
	}
	if record.AssignedAt.IsZero() {
		record.AssignedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO ticket_assignments (
			id, ticket_id, historical_ticket_id, assignee_id,
			assigned_by, assigned_at, confidence, reasoning
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)`

	_, err := r.db.ExecContext(ctx, query,
		record.ID, nullableString(record.TicketID), nullableString(record.HistoricalTicketID),
		nullableString(record.AssigneeID), string(record.AssignedBy), record.AssignedAt,
		record.Confidence, record.Reasoning,
	)
	if err != nil {
		return fmt.Errorf("save assignment: %w", err)
	}
	return nil
}

func (r *AssignmentRepository) GetAssignment(ctx context.Context, id string) (*domain.AssignmentRecord, error) {
	query := `
		SELECT id, ticket_id, historical_ticket_id, assignee_id,
		       assigned_by, assigned_at, confidence, reasoning
		FROM ticket_assignments
		WHERE id = $1`

	var row assignmentRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get assignment: %w", err)
	}

	return row.toDomain(), nil
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

type assignmentRow struct {
	ID                 string         `db:"id"`
	TicketID           sql.NullString `db:"ticket_id"`
	HistoricalTicketID sql.NullString `db:"historical_ticket_id"`
	AssigneeID         sql.NullString `db:"assignee_id"`
	AssignedBy         string         `db:"assigned_by"`
	AssignedAt         time.Time      `db:"assigned_at"`
	Confidence         float64        `db:"confidence"`
	Reasoning          string         `db:"reasoning"`
}

func (r assignmentRow) toDomain() *domain.AssignmentRecord {
	return &domain.AssignmentRecord{
		ID:                 r.ID,
		TicketID:           r.TicketID.String,
		HistoricalTicketID: r.HistoricalTicketID.String,
		AssigneeID:         r.AssigneeID.String,
		AssignedBy:         domain.AssignedBy(r.AssignedBy),
		AssignedAt:         r.AssignedAt,
		Confidence:         r.Confidence,
		Reasoning:          r.Reasoning,
	}
}
