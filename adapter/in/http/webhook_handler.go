package http

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"ticketassign/adapter/in/ingest"
	"ticketassign/adapter/out/messaging"
	"ticketassign/core/domain"
	"ticketassign/pkg/ratelimit"
)

// allowedIngestEventTypes mirrors the tracker's event taxonomy: creation and
// terminal events are accepted; only creation events are queued for
// assignment, terminal ones are archived and acknowledged.
var allowedIngestEventTypes = map[string]bool{
	"incident.created":  true,
	"incident.closed":   true,
	"incident.resolved": true,
	"task.created":      true,
	"task.closed":       true,
	"task.resolved":     true,
}

// servicenowPayload is the webhook envelope sent by the ticket tracker.
type servicenowPayload struct {
	EventType   string         `json:"event_type"`
	TicketID    string         `json:"ticket_id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Priority    string         `json:"priority"`
	Status      string         `json:"status"`
	CallerID    string         `json:"caller_id"`
	Category    string         `json:"category"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// WebhookHandler receives ticket-tracker webhooks, verifies their signature,
// archives them verbatim, and queues them for assignment.
type WebhookHandler struct {
	secret   string
	audit    *ingest.AuditStore
	producer *messaging.RedisProducer
	limiter  *ratelimit.SlidingWindowLimiter
	log      zerolog.Logger
}

// NewWebhookHandler creates a new WebhookHandler. limiter may be nil, in
// which case the endpoint is unthrottled.
func NewWebhookHandler(secret string, audit *ingest.AuditStore, producer *messaging.RedisProducer, limiter *ratelimit.SlidingWindowLimiter, log zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{
		secret:   secret,
		audit:    audit,
		producer: producer,
		limiter:  limiter,
		log:      log.With().Str("component", "webhook_handler").Logger(),
	}
}

// Register mounts the webhook route.
func (h *WebhookHandler) Register(router fiber.Router) {
	router.Post("/webhook/servicenow", h.receive)
}

func (h *WebhookHandler) receive(c *fiber.Ctx) error {
	if h.limiter != nil {
		allowed, wait := h.limiter.Allow(c.Context(), "webhook:servicenow")
		if !allowed {
			c.Set("Retry-After", wait.Round(time.Second).String())
			return ErrorResponseWithCode(c, fiber.StatusTooManyRequests, "RATE_LIMITED", "too many webhook requests")
		}
	}

	body := c.Body()

	signature := c.Get("X-ServiceNow-Signature")
	if !h.verifySignature(body, signature) {
		return ErrorResponseWithCode(c, fiber.StatusForbidden, "INVALID_SIGNATURE", "missing or invalid webhook signature")
	}

	var payload servicenowPayload
	if err := c.BodyParser(&payload); err != nil {
		return ErrorResponse(c, fiber.StatusBadRequest, "malformed webhook payload")
	}

	if !allowedIngestEventTypes[payload.EventType] {
		return ErrorResponseWithCode(c, fiber.StatusBadRequest, "UNSUPPORTED_EVENT_TYPE", "event type '"+payload.EventType+"' is not supported")
	}

	event := domain.IngestedTicketEvent{
		EventType:   payload.EventType,
		TicketID:    payload.TicketID,
		Title:       payload.Title,
		Description: payload.Description,
		Priority:    payload.Priority,
		Status:      payload.Status,
		CallerID:    payload.CallerID,
		Category:    payload.Category,
		Metadata:    payload.Metadata,
	}

	ctx := c.Context()
	receivedAt := time.Now().UTC()
	if h.audit != nil {
		if err := h.audit.Save(ctx, event, receivedAt); err != nil {
			return InternalErrorResponse(c, err, "archive webhook event")
		}
	}

	webhookID := "webhook_" + receivedAt.Format("20060102150405.000000") + "_" + payload.TicketID

	if isTerminalEvent(payload.EventType) {
		h.log.Info().Str("webhook_id", webhookID).Str("ticket_id", payload.TicketID).Str("event_type", payload.EventType).Msg("terminal event archived, not queued for assignment")
		return SuccessResponse(c.Status(fiber.StatusAccepted), fiber.Map{"status": "accepted", "webhook_id": webhookID, "ticket_id": payload.TicketID})
	}

	ticket := domain.Ticket{
		ID:          payload.TicketID,
		Title:       payload.Title,
		Description: payload.Description,
		Priority:    mapPriority(payload.Priority),
		Category:    payload.Category,
	}

	if err := h.publish(ctx, ticket); err != nil {
		h.log.Error().Err(err).Str("webhook_id", webhookID).Str("ticket_id", payload.TicketID).Msg("failed to queue ticket for assignment")
		return InternalErrorResponse(c, err, "queue ticket for assignment")
	}

	h.log.Info().Str("webhook_id", webhookID).Str("ticket_id", payload.TicketID).Str("event_type", payload.EventType).Msg("webhook queued for assignment")

	return SuccessResponse(c.Status(fiber.StatusAccepted), fiber.Map{"status": "accepted", "webhook_id": webhookID, "ticket_id": payload.TicketID})
}

func (h *WebhookHandler) publish(ctx context.Context, ticket domain.Ticket) error {
	if h.producer == nil {
		return errors.New("ticket stream producer not configured")
	}
	return h.producer.PublishTicketCreated(ctx, map[string]any{"ticket": ticket})
}

func (h *WebhookHandler) verifySignature(body []byte, signature string) bool {
	if signature == "" || h.secret == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(h.secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func isTerminalEvent(eventType string) bool {
	switch eventType {
	case "incident.closed", "incident.resolved", "task.closed", "task.resolved":
		return true
	default:
		return false
	}
}

// mapPriority normalizes ServiceNow's numeric priority scale (1 highest, 4
// lowest) and its own name strings onto the domain's four-level enum.
func mapPriority(raw string) domain.Priority {
	switch raw {
	case "1", "Critical", "critical":
		return domain.PriorityCritical
	case "2", "High", "high":
		return domain.PriorityHigh
	case "3", "Medium", "medium", "Moderate", "moderate":
		return domain.PriorityMedium
	case "4", "Low", "low", "Planning", "planning":
		return domain.PriorityLow
	default:
		return domain.PriorityMedium
	}
}
