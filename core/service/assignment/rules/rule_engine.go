// Package rules implements the fixed, ordered business-rule pipeline of
// §4.4: each rule inspects the current top pick and the full ranked list,
// and may replace the top pick, annotate reasoning, or short-circuit to
// human review. Rule order is deliberately fixed and deterministic.
package rules

import "ticketassign/core/domain"

// Outcome accumulates the rule pipeline's effects: the (possibly rewritten)
// top pick, every rule name that fired, the reasoning trail, and — if the
// pipeline short-circuited — the human-review triggers.
type Outcome struct {
	Top          domain.Candidate
	Ranked       []domain.Candidate
	AppliedRules []string
	Reasoning    []string
	Triggers     []domain.Trigger
	HumanReview  bool
}

func newOutcome(ranked []domain.Candidate) Outcome {
	return Outcome{
		Top:    ranked[0],
		Ranked: ranked,
	}
}

func (o *Outcome) apply(ruleName, reason string) {
	o.AppliedRules = append(o.AppliedRules, ruleName)
	o.Reasoning = append(o.Reasoning, reason)
}

func (o *Outcome) annotate(reason string) {
	o.Reasoning = append(o.Reasoning, reason)
}

func (o *Outcome) escalate(trigger domain.Trigger) {
	o.HumanReview = true
	o.Triggers = append(o.Triggers, trigger)
}

// Run executes the fixed rule sequence: pre-rule similarity floor, then
// Rules 1-4. Rule 5 (the confidence gate) is a separate component run by
// the pipeline after Run returns, per §4.4/§4.5.
func Run(ticket domain.Ticket, similarTickets []domain.SimilarTicket, ranked []domain.Candidate, cfg domain.Config) Outcome {
	outcome := newOutcome(ranked)

	if applySimilarityFloor(&outcome, similarTickets, cfg) {
		return outcome
	}
	if applyOverloadPrevention(&outcome, cfg) {
		return outcome
	}
	applyTimezoneTradeoff(&outcome, ticket, cfg)
	applyFairDistribution(&outcome, cfg)
	applySkillsGap(&outcome, cfg)

	return outcome
}
