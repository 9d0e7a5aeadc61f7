package assignment

import "ticketassign/core/domain"

// ConfidenceResult is the outcome of the confidence gate: the fraction of
// the five boolean factors satisfied, and the routing it implies.
type ConfidenceResult struct {
	Confidence float64
	Factors    [5]bool
}

// EvaluateConfidence computes §4.5's five booleans over the top pick (which
// the rule engine may have reassigned away from ranked[0]) against the
// best-scoring remaining candidate.
func EvaluateConfidence(top domain.Candidate, ranked []domain.Candidate, cfg Config) ConfidenceResult {
	var second domain.Candidate
	hasSecond := false
	for _, c := range ranked {
		if c.Email() == top.Email() {
			continue
		}
		second = c
		hasSecond = true
		break
	}

	factors := [5]bool{
		top.SimilarityScore > 0.75,
		top.SkillMatchScore > 0.15,
		top.AvailabilityScore > 0.7,
		hasSecond && (top.Composite-second.Composite) > 0.01,
		top.TimezoneScore >= 0.2,
	}

	count := 0
	for _, f := range factors {
		if f {
			count++
		}
	}

	return ConfidenceResult{
		Confidence: float64(count) / 5.0,
		Factors:    factors,
	}
}

// Route applies §4.5's three-way routing over a confidence result: below
// ConfidenceLow it escalates to human review, below ConfidenceMedium it
// assigns normally but flags the team lead, otherwise it assigns outright.
func (r ConfidenceResult) Route(cfg Config) (decisionType domain.AssignmentType, trigger *domain.Trigger, annotate bool) {
	switch {
	case r.Confidence < cfg.ConfidenceLow:
		return domain.AssignmentHumanReview, &domain.Trigger{
			Reason:   "low_confidence_assignment",
			Severity: domain.SeverityMedium,
			Action:   "team_lead_review",
			Timeout:  "15min",
			Message:  "Confidence in the top candidate is too low for automatic assignment; a team lead should review within 15 minutes.",
		}, false
	case r.Confidence < cfg.ConfidenceMedium:
		return domain.AssignmentNormal, nil, true
	default:
		return domain.AssignmentNormal, nil, false
	}
}
