package assignment

import (
	"sort"

	"ticketassign/core/domain"
)

// Rank sorts candidates by composite descending, breaking ties by email
// ascending so ranking is total and deterministic (§4.3, §5).
func Rank(candidates []domain.Candidate) []domain.Candidate {
	ranked := make([]domain.Candidate, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Composite != ranked[j].Composite {
			return ranked[i].Composite > ranked[j].Composite
		}
		return ranked[i].Email() < ranked[j].Email()
	})

	return ranked
}
