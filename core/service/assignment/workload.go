package assignment

import "ticketassign/core/domain"

func priorityWeight(p domain.Priority) float64 {
	switch p {
	case domain.PriorityCritical:
		return 3.0
	case domain.PriorityHigh:
		return 2.0
	case domain.PriorityMedium:
		return 1.0
	case domain.PriorityLow:
		return 0.5
	default:
		return 1.0
	}
}

func ageMultiplier(ageDays float64) float64 {
	switch {
	case ageDays > 7:
		return 1.5
	case ageDays > 3:
		return 1.2
	default:
		return 1.0
	}
}

func statusWeight(s domain.TicketStatus) float64 {
	switch s {
	case domain.TicketStatusInProgress:
		return 1.0
	case domain.TicketStatusOpen:
		return 0.5
	case domain.TicketStatusBlocked:
		return 0.3
	case domain.TicketStatusPending:
		return 0.5
	default:
		return 0.5
	}
}

// workloadScore computes §4.2.4's contextual workload: each active ticket
// contributes priorityWeight × ageMultiplier × statusWeight, summed into
// weighted_load, then normalized against the configured capacity.
// nowUnixSeconds is the single wall-clock read threaded through from call
// entry — no other wall-clock read may affect scoring.
func workloadScore(tickets []domain.ActiveTicket, nowUnixSeconds int64, cfg Config) (score float64, weightedLoad float64, isOverloaded bool) {
	for _, t := range tickets {
		ageDays := float64(nowUnixSeconds-t.CreatedAt) / 86400.0
		weightedLoad += priorityWeight(t.Priority) * ageMultiplier(ageDays) * statusWeight(t.Status)
	}

	score = 1 - weightedLoad/cfg.WorkloadCapacity
	if score < 0 {
		score = 0
	}

	isOverloaded = weightedLoad > cfg.OverloadThreshold

	return score, weightedLoad, isOverloaded
}
