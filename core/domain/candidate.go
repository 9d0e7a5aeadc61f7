package domain

// Candidate is a derived, transient record: one per Member, scoped to a
// single AssignTicket call. It never outlives that call.
type Candidate struct {
	Member Member

	SimilarityScore  float64
	SkillMatchScore  float64
	AvailabilityScore float64
	WorkloadScore    float64
	TimezoneScore    float64
	Composite        float64

	ActiveTicketsCount     int
	RecentAssignmentsCount int
	WeightedLoad           float64
	IsOverloaded           bool
	SolvedSimilarCount     int
}

// Email is a convenience accessor used by the Ranker's tie-break and by
// rules that reference candidates by identity.
func (c Candidate) Email() string {
	return c.Member.Email
}
