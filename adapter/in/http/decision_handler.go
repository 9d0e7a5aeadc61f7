package http

import (
	"time"

	"ticketassign/core/domain"
	"ticketassign/core/port/in"
	"ticketassign/core/port/out"
	"ticketassign/pkg/metrics"

	"github.com/gofiber/fiber/v2"
)

// manualAssignRequest is the body accepted by the manual-trigger endpoint:
// an operator resubmitting a ticket that failed ingestion, or re-running
// assignment after a roster change.
type manualAssignRequest struct {
	Ticket         domain.Ticket          `json:"ticket"`
	SimilarTickets []domain.SimilarTicket `json:"similar_tickets,omitempty"`
}

// DecisionHandler exposes the assignment engine directly for operator use:
// triggering a decision on demand and reading back a previously persisted
// one.
type DecisionHandler struct {
	assignments in.AssignmentService
	decisions   out.DecisionRepository
}

// NewDecisionHandler creates a new DecisionHandler.
func NewDecisionHandler(assignments in.AssignmentService, decisions out.DecisionRepository) *DecisionHandler {
	return &DecisionHandler{assignments: assignments, decisions: decisions}
}

// Register mounts the manual-trigger and decision-read routes under a
// JWT-guarded group.
func (h *DecisionHandler) Register(router fiber.Router) {
	group := router.Group("/assignments")
	group.Post("/trigger", h.trigger)
	group.Get("/:id", h.get)
}

func (h *DecisionHandler) trigger(c *fiber.Ctx) error {
	var req manualAssignRequest
	if err := c.BodyParser(&req); err != nil {
		return ErrorResponse(c, fiber.StatusBadRequest, "malformed request body")
	}
	if req.Ticket.ID == "" {
		return ErrorResponse(c, fiber.StatusBadRequest, "ticket.id is required")
	}

	start := time.Now()
	decision, err := h.assignments.AssignTicket(c.Context(), req.Ticket, req.SimilarTickets)
	metrics.RecordLatency("assign_ticket.manual", time.Since(start))
	if err != nil {
		return AppErrorResponse(c, err)
	}

	return SuccessResponse(c, decision)
}

func (h *DecisionHandler) get(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return ErrorResponse(c, fiber.StatusBadRequest, "id is required")
	}

	record, err := h.decisions.GetAssignment(c.Context(), id)
	if err != nil {
		return AppErrorResponse(c, err)
	}
	if record == nil {
		return ErrorResponse(c, fiber.StatusNotFound, "assignment record not found")
	}

	return SuccessResponse(c, record)
}
