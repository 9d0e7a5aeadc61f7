package rules

import "ticketassign/core/domain"

// applySimilarityFloor is the pre-rule: when no historical ticket resembles
// this one closely enough, scoring is unreliable and the engine defers to a
// human rather than guess. Returns true if it short-circuited the pipeline.
func applySimilarityFloor(o *Outcome, similarTickets []domain.SimilarTicket, cfg domain.Config) bool {
	if domain.MaxSimilarity(similarTickets) >= cfg.SimilarityFloor {
		return false
	}

	o.apply("similarity_floor", "no historical ticket is similar enough to route with confidence")
	o.escalate(domain.Trigger{
		Reason:   "no_similar_pattern",
		Severity: domain.SeverityHigh,
		Action:   "team_consultation_email",
		Timeout:  "1h",
		Message:  "No sufficiently similar historical ticket was found; the team should triage this within an hour.",
	})

	return true
}
