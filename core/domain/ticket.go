package domain

// Priority is the urgency tag carried by a Ticket and used throughout the
// scoring and rule pipeline to select weight tables and overrides.
type Priority string

const (
	PriorityCritical Priority = "Critical"
	PriorityHigh     Priority = "High"
	PriorityMedium   Priority = "Medium"
	PriorityLow      Priority = "Low"
)

// Valid reports whether p is one of the four known priorities. Unknown
// priorities must fail InvalidInput, never fall through to a default weight
// table.
func (p Priority) Valid() bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// Ticket is the inbound decision request: the new ticket awaiting assignment.
type Ticket struct {
	ID          string
	Title       string
	Description string
	Priority    Priority
	Category    string
}

// SimilarTicket is one historically similar ticket, pre-identified by the
// similarity collaborator (never by the core itself).
type SimilarTicket struct {
	AssigneeEmail    string
	SimilarityScore  float64
	ResolvedAt       *int64 // unix seconds, optional
}

// MaxSimilarity returns the highest SimilarityScore across the list, or 0 if
// the list is empty.
func MaxSimilarity(tickets []SimilarTicket) float64 {
	max := 0.0
	for _, t := range tickets {
		if t.SimilarityScore > max {
			max = t.SimilarityScore
		}
	}
	return max
}
