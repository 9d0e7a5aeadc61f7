package assignment

import "ticketassign/core/domain"

// Weights and Config are aliases onto the domain types: the rule engine
// (core/service/assignment/rules) needs the same threshold table and must
// not import this package, so the table itself lives in domain. Call sites
// in this package keep referring to them unqualified.
type Weights = domain.Weights
type Config = domain.Config

// DefaultConfig returns the reference configuration table from §6. It is
// compiled-in, not environment-driven: per the resource policy, thresholds
// and weight tables are immutable after initialization.
func DefaultConfig() Config {
	return Config{
		SimilarityFloor:     0.70,
		ConfidenceLow:       0.30,
		ConfidenceMedium:    0.50,
		WorkloadCapacity:    30.0,
		OverloadThreshold:   20.0,
		ISTWindowStartUTC:   2.5,
		ISTWindowEndUTC:     12.5,
		TZBoostCritical:     0.5,
		TZBoostExpert:       0.6,
		ExpertSolvedCount:   3,
		OverloadScoreFloor:  0.3,
		OverloadAltFloor:    0.5,
		TZExpertiseGap:      0.15,
		FairDistributionCap: 8,
		SkillsGapFloor:      0.4,

		Weights: map[domain.Priority]Weights{
			domain.PriorityCritical: {Similarity: 0.30, Skill: 0.25, Availability: 0.15, Workload: 0.10, Timezone: 0.20},
			domain.PriorityHigh:     {Similarity: 0.25, Skill: 0.25, Availability: 0.20, Workload: 0.15, Timezone: 0.15},
			domain.PriorityMedium:   {Similarity: 0.20, Skill: 0.25, Availability: 0.20, Workload: 0.20, Timezone: 0.15},
			domain.PriorityLow:      {Similarity: 0.15, Skill: 0.15, Availability: 0.15, Workload: 0.40, Timezone: 0.15},
		},
	}
}
