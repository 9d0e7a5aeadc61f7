package rules

import "ticketassign/core/domain"

// applyFairDistribution is Rule 3: a top pick already carrying cfg.FairDistributionCap
// or more active tickets yields to the first of the next four ranked
// candidates that both has headroom under the cap and is fully available.
func applyFairDistribution(o *Outcome, cfg domain.Config) {
	top := o.Top
	if top.ActiveTicketsCount < cfg.FairDistributionCap {
		return
	}

	end := 5
	if end > len(o.Ranked) {
		end = len(o.Ranked)
	}
	for _, candidate := range o.Ranked[1:end] {
		if candidate.ActiveTicketsCount < cfg.FairDistributionCap && candidate.AvailabilityScore == 1.0 {
			o.Top = candidate
			o.apply("fair_distribution", "top pick is at the active-ticket cap; redistributed to "+candidate.Email())
			return
		}
	}
}
