package rules

import "ticketassign/core/domain"

// applyOverloadPrevention is Rule 1: an overloaded or too-thin top pick is
// replaced by the first ranked alternative with headroom and full
// availability. If none exists, the team is at capacity and a human must
// intervene. Returns true if it short-circuited the pipeline.
func applyOverloadPrevention(o *Outcome, cfg domain.Config) bool {
	top := o.Top
	if !top.IsOverloaded && top.WorkloadScore >= cfg.OverloadScoreFloor {
		return false
	}

	for _, candidate := range o.Ranked[1:] {
		if !candidate.IsOverloaded && candidate.AvailabilityScore == 1.0 && candidate.WorkloadScore >= cfg.OverloadAltFloor {
			o.Top = candidate
			o.apply("overload_prevention", "top pick is overloaded; reassigned to "+candidate.Email()+" who has headroom")
			return false
		}
	}

	o.apply("overload_prevention", "every available candidate is at or near capacity")
	o.escalate(domain.Trigger{
		Reason:   "team_at_capacity",
		Severity: domain.SeverityCritical,
		Action:   "immediate_manager_escalation",
		Message:  "No candidate has workload headroom; escalate to the manager immediately.",
	})

	return true
}
