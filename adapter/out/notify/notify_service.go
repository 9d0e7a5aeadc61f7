// Package notify delivers human-review triggers and team-lead annotations
// to an out-of-band channel.
package notify

import (
	"context"

	"ticketassign/adapter/out/messaging"
	"ticketassign/core/domain"
	"ticketassign/core/port/out"
)

// humanReviewJob is the payload published onto notify.human_review.
type humanReviewJob struct {
	TicketID string `json:"ticket_id"`
	Title    string `json:"title"`
	Priority string `json:"priority"`
	Reason   string `json:"reason"`
	Severity string `json:"severity"`
	Action   string `json:"action"`
	Timeout  string `json:"timeout,omitempty"`
	Message  string `json:"message"`
}

// teamLeadJob is the payload published onto notify.team_lead.
type teamLeadJob struct {
	TicketID        string  `json:"ticket_id"`
	Title           string  `json:"title"`
	PrimaryAssignee string  `json:"primary_assignee"`
	Confidence      float64 `json:"confidence"`
}

// Service implements out.Notifier over a Redis Streams producer: delivery
// itself (email, Slack, paging) is a downstream consumer's concern.
type Service struct {
	producer *messaging.RedisProducer
}

// NewService creates a new Service.
func NewService(producer *messaging.RedisProducer) out.Notifier {
	return &Service{producer: producer}
}

func (s *Service) NotifyHumanReview(ctx context.Context, ticket domain.Ticket, trigger domain.Trigger) error {
	return s.producer.PublishHumanReviewNotification(ctx, humanReviewJob{
		TicketID: ticket.ID,
		Title:    ticket.Title,
		Priority: string(ticket.Priority),
		Reason:   trigger.Reason,
		Severity: string(trigger.Severity),
		Action:   trigger.Action,
		Timeout:  trigger.Timeout,
		Message:  trigger.Message,
	})
}

func (s *Service) NotifyTeamLead(ctx context.Context, ticket domain.Ticket, decision domain.Decision) error {
	return s.producer.PublishTeamLeadNotification(ctx, teamLeadJob{
		TicketID:        ticket.ID,
		Title:           ticket.Title,
		PrimaryAssignee: decision.PrimaryAssignee,
		Confidence:      decision.Confidence,
	})
}
