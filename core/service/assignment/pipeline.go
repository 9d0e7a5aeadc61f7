package assignment

import (
	"context"
	"time"

	"ticketassign/core/domain"
	"ticketassign/core/port/out"
	"ticketassign/core/service/assignment/rules"
)

// Engine is the assignment decision function: a value-typed, stateless
// composition of the snapshot loader, scorer, ranker, rule engine and
// confidence gate. It holds only an immutable Config and a store handle —
// no mutable fields, no per-call state survives AssignTicket. Implements
// core/port/in.AssignmentService.
type Engine struct {
	Store  out.SnapshotStore
	Cfg    Config
	Scorer *Scorer
}

// NewEngine constructs an Engine over the given store with the reference
// configuration and the default category/skill-tag matcher.
func NewEngine(store out.SnapshotStore) *Engine {
	return &Engine{
		Store:  store,
		Cfg:    DefaultConfig(),
		Scorer: NewScorer(nil),
	}
}

// AssignTicket runs the full decision pipeline: load → score → rank →
// rules → confidence gate → Decision. It never panics and never returns a
// nil Decision alongside a nil error; every return path yields a
// well-formed Decision per domain.Decision.IsWellFormed, or a non-nil error
// for a genuine infrastructure or contract failure.
func (e *Engine) AssignTicket(ctx context.Context, ticket domain.Ticket, similarTickets []domain.SimilarTicket) (*domain.Decision, error) {
	if !ticket.Priority.Valid() {
		return nil, errInvalidInput("priority", "unknown ticket priority: "+string(ticket.Priority))
	}
	if ticket.ID == "" {
		return nil, errInvalidInput("id", "ticket id must not be empty")
	}

	now := time.Now().UTC()
	today := now.Format("2006-01-02")
	nowUTCHour := float64(now.Hour()) + float64(now.Minute())/60.0

	snap, err := LoadSnapshot(ctx, e.Store, today, nowUTCHour)
	if err != nil {
		return nil, err
	}
	if len(snap.Members) == 0 {
		return humanReviewDecision(domain.Trigger{
			Reason:   "no_eligible_members",
			Severity: domain.SeverityCritical,
			Action:   "immediate_manager_escalation",
			Message:  "No eligible team members were found to score against this ticket.",
		}), nil
	}

	candidates, err := e.Scorer.Score(snap, ticket, similarTickets, now.Unix(), e.Cfg)
	if err != nil {
		return nil, err
	}

	ranked := Rank(candidates)

	outcome := rules.Run(ticket, similarTickets, ranked, e.Cfg)
	if outcome.HumanReview {
		return &domain.Decision{
			AssignmentType: domain.AssignmentHumanReview,
			AppliedRules:   outcome.AppliedRules,
			Reasoning:      outcome.Reasoning,
			Triggers:       outcome.Triggers,
		}, nil
	}

	confidence := EvaluateConfidence(outcome.Top, outcome.Ranked, e.Cfg)
	decisionType, trigger, annotate := confidence.Route(e.Cfg)

	reasoning := outcome.Reasoning
	appliedRules := outcome.AppliedRules
	if annotate {
		appliedRules = append(appliedRules, "team_lead_notification")
		reasoning = append(reasoning, "confidence is moderate; notifying the team lead alongside the automatic assignment")
	}

	if decisionType == domain.AssignmentHumanReview {
		triggers := outcome.Triggers
		if trigger != nil {
			triggers = append(triggers, *trigger)
		}
		return &domain.Decision{
			AssignmentType: domain.AssignmentHumanReview,
			Confidence:     confidence.Confidence,
			AppliedRules:   appliedRules,
			Reasoning:      reasoning,
			Triggers:       triggers,
		}, nil
	}

	return &domain.Decision{
		AssignmentType:  domain.AssignmentNormal,
		PrimaryAssignee: outcome.Top.Email(),
		Confidence:      confidence.Confidence,
		AppliedRules:    appliedRules,
		Reasoning:       reasoning,
		Triggers:        outcome.Triggers,
	}, nil
}

func humanReviewDecision(trigger domain.Trigger) *domain.Decision {
	return &domain.Decision{
		AssignmentType: domain.AssignmentHumanReview,
		Triggers:       []domain.Trigger{trigger},
	}
}
