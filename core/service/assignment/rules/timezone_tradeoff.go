package rules

import "ticketassign/core/domain"

// applyTimezoneTradeoff is Rule 2: when the top pick is out of the
// preferred timezone window but is a strong historical match, weigh that
// expertise against handing off to an in-window alternative. A large enough
// expertise gap keeps the expert; otherwise the in-window candidate wins.
func applyTimezoneTradeoff(o *Outcome, ticket domain.Ticket, cfg domain.Config) {
	top := o.Top
	if top.TimezoneScore >= 1.0 || top.SimilarityScore <= 0.8 {
		return
	}

	var bestInWindow domain.Candidate
	found := false
	for _, candidate := range o.Ranked {
		if candidate.Email() == top.Email() {
			continue
		}
		if candidate.TimezoneScore >= 1.0 {
			bestInWindow = candidate
			found = true
			break
		}
	}
	if !found {
		return
	}

	scoreDiff := top.Composite - bestInWindow.Composite
	if scoreDiff > cfg.TZExpertiseGap {
		o.apply("timezone_vs_expertise", "keeping out-of-window top pick; expertise gap outweighs timezone mismatch")
		return
	}

	o.Top = bestInWindow
	o.apply("timezone_vs_expertise", "reassigned to in-window "+bestInWindow.Email()+" over out-of-window expert")
}
