package assignment

import "ticketassign/core/domain"

// Scorer computes the five component scores and the priority-weighted
// composite for every candidate in a snapshot. It is pure and CPU-bound —
// no I/O, no suspension, per §5.
type Scorer struct {
	skillMatcher SkillMatcher
}

func NewScorer(skillMatcher SkillMatcher) *Scorer {
	if skillMatcher == nil {
		skillMatcher = CategoryTagMatcher{}
	}
	return &Scorer{skillMatcher: skillMatcher}
}

// Score builds one Candidate per member in the snapshot.
func (s *Scorer) Score(snap domain.Snapshot, ticket domain.Ticket, similarTickets []domain.SimilarTicket, nowUnixSeconds int64, cfg Config) ([]domain.Candidate, error) {
	weights, ok := cfg.Weights[ticket.Priority]
	if !ok {
		return nil, errInvariant("unknown priority: no weight row configured for " + string(ticket.Priority))
	}
	if diff := weights.Sum() - 1.0; diff > 1e-9 || diff < -1e-9 {
		return nil, errInvariant("weight row for priority " + string(ticket.Priority) + " does not sum to 1.0")
	}

	candidates := make([]domain.Candidate, 0, len(snap.Members))
	for _, member := range snap.Members {
		sim, solved := similarityScore(member.Email, similarTickets)
		skill := clamp01(s.skillMatcher.Match(ticket.Category, member.SkillTags))
		avail := availabilityScore(member, snap.MembersOnLeave[member.ID], snap.Holidays, snap.Today)
		workload, weightedLoad, overloaded := workloadScore(snap.ActiveTickets[member.ID], nowUnixSeconds, cfg)
		tz := timezoneScore(member, ticket.Priority, solved, snap.NowUTCHour, cfg)

		composite := sim*weights.Similarity +
			skill*weights.Skill +
			avail*weights.Availability +
			workload*weights.Workload +
			tz*weights.Timezone

		candidates = append(candidates, domain.Candidate{
			Member:                 member,
			SimilarityScore:        sim,
			SkillMatchScore:        skill,
			AvailabilityScore:      avail,
			WorkloadScore:          workload,
			TimezoneScore:          tz,
			Composite:              clamp01(composite),
			ActiveTicketsCount:     len(snap.ActiveTickets[member.ID]),
			RecentAssignmentsCount: snap.RecentAssignments[member.ID],
			WeightedLoad:           weightedLoad,
			IsOverloaded:           overloaded,
			SolvedSimilarCount:     solved,
		})
	}

	return candidates, nil
}
