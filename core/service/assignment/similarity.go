package assignment

import (
	"math"

	"ticketassign/core/domain"
)

// expertiseLogBase is the log base that maps solved counts {1,3,5} to the
// expertise factors {0.387, 0.774, 1.0} mandated by §4.2.1.
const expertiseLogBase = 6.0

// similarityScore computes the candidate's similarity component: the
// logarithmic expertise factor (to avoid favoring "ticket magnets") times
// the average similarity of the entries the member actually solved.
func similarityScore(memberEmail string, similarTickets []domain.SimilarTicket) (score float64, solvedCount int) {
	var sum float64
	for _, t := range similarTickets {
		if t.AssigneeEmail == memberEmail {
			sum += t.SimilarityScore
			solvedCount++
		}
	}
	if solvedCount == 0 {
		return 0, 0
	}

	expertiseFactor := math.Log(float64(solvedCount)+1) / math.Log(expertiseLogBase)
	if expertiseFactor > 1.0 {
		expertiseFactor = 1.0
	}

	avgSimilarity := sum / float64(solvedCount)
	score = expertiseFactor * avgSimilarity

	return clamp01(score), solvedCount
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
