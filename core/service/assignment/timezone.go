package assignment

import "ticketassign/core/domain"

// inISTWindow reports whether nowUTCHour falls in the configured IST
// preference window [start, end). Boundary semantics: start is inside, end
// is not.
func inISTWindow(nowUTCHour float64, cfg Config) bool {
	return nowUTCHour >= cfg.ISTWindowStartUTC && nowUTCHour < cfg.ISTWindowEndUTC
}

// timezoneScore computes §4.2.5's timezone preference. The floor of 0.2 for
// an out-of-preferred-region member is deliberate: hard exclusion would be
// too rigid. Critical tickets and expert members (solved_similar_count ≥ 3)
// relax that floor upward.
func timezoneScore(member domain.Member, ticketPriority domain.Priority, solvedSimilarCount int, nowUTCHour float64, cfg Config) float64 {
	preferredRegion := domain.RegionUS
	if inISTWindow(nowUTCHour, cfg) {
		preferredRegion = domain.RegionIN
	}

	if member.Region() == preferredRegion {
		return 1.0
	}

	// First matching override on the 0.2 floor, in order.
	if ticketPriority == domain.PriorityCritical {
		return cfg.TZBoostCritical
	}
	if solvedSimilarCount >= cfg.ExpertSolvedCount {
		return cfg.TZBoostExpert
	}

	return 0.2
}
