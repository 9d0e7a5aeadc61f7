// Package worker consumes queued ticket-created events and drives them
// through the assignment engine.
package worker

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"ticketassign/core/domain"
	"ticketassign/core/port/in"
	"ticketassign/core/port/out"
	"ticketassign/pkg/metrics"
)

// TicketCreatedEvent is the payload published onto the tickets.created
// stream by the ingestion adapter.
type TicketCreatedEvent struct {
	Ticket         domain.Ticket          `json:"ticket"`
	SimilarTickets []domain.SimilarTicket `json:"similar_tickets,omitempty"`
}

// Handler implements the Pool's job-processing contract: resolve one queued
// ticket to a Decision, persist it, and notify.
type Handler struct {
	assignments in.AssignmentService
	finder      out.SimilarTicketFinder
	decisions   out.DecisionRepository
	notifier    out.Notifier
	log         zerolog.Logger
}

// NewHandler creates a new Handler.
func NewHandler(assignments in.AssignmentService, finder out.SimilarTicketFinder, decisions out.DecisionRepository, notifier out.Notifier, log zerolog.Logger) *Handler {
	return &Handler{
		assignments: assignments,
		finder:      finder,
		decisions:   decisions,
		notifier:    notifier,
		log:         log.With().Str("component", "assignment_handler").Logger(),
	}
}

// Process implements the worker pool's per-message contract.
func (h *Handler) Process(ctx context.Context, msg *Message) error {
	raw, err := json.Marshal(msg.Payload)
	if err != nil {
		return fmt.Errorf("re-marshal message payload: %w", err)
	}

	var event TicketCreatedEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return fmt.Errorf("unmarshal ticket event: %w", err)
	}

	similar := event.SimilarTickets
	if similar == nil && h.finder != nil {
		found, err := h.finder.FindSimilar(ctx, event.Ticket, 10)
		if err != nil {
			h.log.Warn().Err(err).Str("ticket_id", event.Ticket.ID).Msg("similarity lookup failed, proceeding with none")
		} else {
			similar = found
		}
	}

	start := time.Now()
	decision, err := h.assignments.AssignTicket(ctx, event.Ticket, similar)
	metrics.RecordLatency("assign_ticket.worker", time.Since(start))
	if err != nil {
		return fmt.Errorf("assign ticket %s: %w", event.Ticket.ID, err)
	}

	h.log.Info().
		Str("ticket_id", event.Ticket.ID).
		Str("assignment_type", string(decision.AssignmentType)).
		Float64("confidence", decision.Confidence).
		Msg("ticket assigned")

	if err := h.persist(ctx, event.Ticket, decision); err != nil {
		h.log.Error().Err(err).Str("ticket_id", event.Ticket.ID).Msg("failed to persist assignment record")
	}

	h.notify(ctx, event.Ticket, decision)

	return nil
}

func (h *Handler) persist(ctx context.Context, ticket domain.Ticket, decision *domain.Decision) error {
	if h.decisions == nil {
		return nil
	}

	record := domain.AssignmentRecord{
		TicketID:   ticket.ID,
		AssignedBy: domain.AssignedByAI,
		Confidence: math.Round(decision.Confidence*1000) / 1000,
	}
	if decision.AssignmentType == domain.AssignmentNormal {
		record.AssigneeID = decision.PrimaryAssignee
	}
	if len(decision.Reasoning) > 0 {
		record.Reasoning = strings.Join(decision.Reasoning, "; ")
	}

	return h.decisions.SaveAssignment(ctx, record)
}

func (h *Handler) notify(ctx context.Context, ticket domain.Ticket, decision *domain.Decision) {
	if h.notifier == nil {
		return
	}

	if decision.AssignmentType == domain.AssignmentHumanReview {
		for _, trigger := range decision.Triggers {
			if err := h.notifier.NotifyHumanReview(ctx, ticket, trigger); err != nil {
				h.log.Error().Err(err).Str("ticket_id", ticket.ID).Msg("failed to notify human review")
			}
		}
		return
	}

	for _, rule := range decision.AppliedRules {
		if rule == "team_lead_notification" {
			if err := h.notifier.NotifyTeamLead(ctx, ticket, *decision); err != nil {
				h.log.Error().Err(err).Str("ticket_id", ticket.ID).Msg("failed to notify team lead")
			}
			return
		}
	}
}

// StreamDispatcher implements messaging.JobHandler, bridging the Redis
// Streams consumer to the Pool: each stream message becomes one Message
// submitted for bounded-concurrency processing.
type StreamDispatcher struct {
	pool *Pool
}

// NewStreamDispatcher creates a new StreamDispatcher.
func NewStreamDispatcher(pool *Pool) *StreamDispatcher {
	return &StreamDispatcher{pool: pool}
}

// Handle implements messaging.JobHandler.
func (d *StreamDispatcher) Handle(ctx context.Context, stream string, data []byte) error {
	var event TicketCreatedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("unmarshal ticket event: %w", err)
	}

	payload := map[string]any{
		"ticket":          event.Ticket,
		"similar_tickets": event.SimilarTickets,
	}

	msg := NewPriorityMessage(JobTicketAssign, payload, priorityForTicket(string(event.Ticket.Priority)))
	submit := d.pool.Submit
	if msg.IsPriority() {
		submit = d.pool.SubmitPriority
	}
	if !submit(msg) {
		return fmt.Errorf("pool rejected ticket %s: queue full or not started", event.Ticket.ID)
	}
	return nil
}
