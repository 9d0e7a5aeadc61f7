package domain

// IngestedTicketEvent is the raw webhook envelope received from the
// ticket-tracking system before it is normalized into a Ticket. Carried
// verbatim into the audit store ahead of queueing, per the ingestion
// collaborator's contract.
type IngestedTicketEvent struct {
	EventType string
	TicketID  string
	Title       string
	Description string
	Priority    string
	Status      string
	CallerID    string
	Category    string
	Metadata    map[string]any
}
