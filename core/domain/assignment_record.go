package domain

import "time"

// AssignedBy tags how an AssignmentRecord came to exist, grounded on the
// assignment_by column of the original assignment history table.
type AssignedBy string

const (
	AssignedByAI           AssignedBy = "AI"
	AssignedByManual       AssignedBy = "Manual"
	AssignedByReassignment AssignedBy = "Reassignment"
)

// AssignmentRecord is the durable history row written by the orchestration
// layer once per completed AssignTicket call. The core never writes one
// itself — persistence is strictly an external collaborator's concern.
type AssignmentRecord struct {
	ID                 string
	TicketID           string // mutually exclusive with HistoricalTicketID
	HistoricalTicketID string
	AssigneeID         string // empty for a human_review decision
	AssignedBy         AssignedBy
	AssignedAt         time.Time
	Confidence         float64
	Reasoning          string
}
