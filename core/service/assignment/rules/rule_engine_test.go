package rules

import (
	"testing"

	"ticketassign/core/domain"
)

func baseConfig() domain.Config {
	return domain.Config{
		SimilarityFloor:     0.70,
		OverloadScoreFloor:  0.3,
		OverloadAltFloor:    0.5,
		TZExpertiseGap:      0.15,
		FairDistributionCap: 8,
		SkillsGapFloor:      0.4,
	}
}

func TestApplySimilarityFloor(t *testing.T) {
	cfg := baseConfig()
	ranked := []domain.Candidate{{
		Member: domain.Member{Email: "a@example.com"},
		AvailabilityScore: 1.0, WorkloadScore: 1.0, TimezoneScore: 1.0, SkillMatchScore: 1.0,
	}}

	t.Run("below floor escalates", func(t *testing.T) {
		outcome := Run(domain.Ticket{}, []domain.SimilarTicket{{SimilarityScore: 0.5}}, ranked, cfg)
		if !outcome.HumanReview {
			t.Fatal("expected human review escalation")
		}
		if len(outcome.Triggers) != 1 || outcome.Triggers[0].Reason != "no_similar_pattern" {
			t.Fatalf("unexpected triggers: %+v", outcome.Triggers)
		}
	})

	t.Run("at or above floor proceeds", func(t *testing.T) {
		outcome := Run(domain.Ticket{Priority: domain.PriorityMedium}, []domain.SimilarTicket{{SimilarityScore: 0.9}}, ranked, cfg)
		if outcome.HumanReview {
			t.Fatal("did not expect escalation")
		}
	})
}

func TestApplyOverloadPrevention(t *testing.T) {
	cfg := baseConfig()

	top := domain.Candidate{Member: domain.Member{Email: "top@example.com"}, IsOverloaded: true, AvailabilityScore: 1.0}
	alt := domain.Candidate{Member: domain.Member{Email: "alt@example.com"}, IsOverloaded: false, AvailabilityScore: 1.0, WorkloadScore: 0.7}
	similar := []domain.SimilarTicket{{SimilarityScore: 0.9}}

	t.Run("reassigns to a healthy alternative", func(t *testing.T) {
		ranked := []domain.Candidate{top, alt}
		outcome := Run(domain.Ticket{Priority: domain.PriorityMedium}, similar, ranked, cfg)
		if outcome.HumanReview {
			t.Fatal("did not expect escalation when a healthy alt exists")
		}
		if outcome.Top.Email() != "alt@example.com" {
			t.Fatalf("Top = %v, want alt@example.com", outcome.Top.Email())
		}
	})

	t.Run("escalates when nobody has headroom", func(t *testing.T) {
		other := domain.Candidate{Member: domain.Member{Email: "other@example.com"}, IsOverloaded: true}
		ranked := []domain.Candidate{top, other}
		outcome := Run(domain.Ticket{Priority: domain.PriorityMedium}, similar, ranked, cfg)
		if !outcome.HumanReview {
			t.Fatal("expected escalation")
		}
		if outcome.Triggers[0].Reason != "team_at_capacity" {
			t.Fatalf("unexpected trigger: %+v", outcome.Triggers[0])
		}
	})
}

func TestApplyTimezoneTradeoff(t *testing.T) {
	cfg := baseConfig()
	similar := []domain.SimilarTicket{{SimilarityScore: 0.9}}

	expert := domain.Candidate{
		Member: domain.Member{Email: "expert@example.com"}, AvailabilityScore: 1.0,
		WorkloadScore: 1.0, TimezoneScore: 0.2, SimilarityScore: 0.95, Composite: 0.97,
	}
	inWindow := domain.Candidate{
		Member: domain.Member{Email: "local@example.com"}, AvailabilityScore: 1.0,
		WorkloadScore: 1.0, TimezoneScore: 1.0, Composite: 0.8,
	}

	t.Run("large expertise gap keeps the expert", func(t *testing.T) {
		ranked := []domain.Candidate{expert, inWindow}
		outcome := Run(domain.Ticket{Priority: domain.PriorityMedium}, similar, ranked, cfg)
		if outcome.Top.Email() != "expert@example.com" {
			t.Fatalf("Top = %v, want expert@example.com", outcome.Top.Email())
		}
	})

	t.Run("small expertise gap hands off to the in-window candidate", func(t *testing.T) {
		closeExpert := expert
		closeExpert.Composite = 0.81
		ranked := []domain.Candidate{closeExpert, inWindow}
		outcome := Run(domain.Ticket{Priority: domain.PriorityMedium}, similar, ranked, cfg)
		if outcome.Top.Email() != "local@example.com" {
			t.Fatalf("Top = %v, want local@example.com", outcome.Top.Email())
		}
	})
}

func TestApplyFairDistribution(t *testing.T) {
	cfg := baseConfig()
	similar := []domain.SimilarTicket{{SimilarityScore: 0.9}}

	overloadedTop := domain.Candidate{
		Member: domain.Member{Email: "busy@example.com"}, AvailabilityScore: 1.0,
		WorkloadScore: 1.0, TimezoneScore: 1.0, ActiveTicketsCount: 9,
	}
	freeAlt := domain.Candidate{
		Member: domain.Member{Email: "free@example.com"}, AvailabilityScore: 1.0,
		WorkloadScore: 1.0, TimezoneScore: 1.0, ActiveTicketsCount: 2,
	}

	ranked := []domain.Candidate{overloadedTop, freeAlt}
	outcome := Run(domain.Ticket{Priority: domain.PriorityMedium}, similar, ranked, cfg)

	if outcome.Top.Email() != "free@example.com" {
		t.Fatalf("Top = %v, want free@example.com", outcome.Top.Email())
	}
}

func TestApplySkillsGapAnnotatesOnly(t *testing.T) {
	cfg := baseConfig()
	similar := []domain.SimilarTicket{{SimilarityScore: 0.9}}

	top := domain.Candidate{
		Member: domain.Member{Email: "top@example.com"}, AvailabilityScore: 1.0,
		WorkloadScore: 1.0, TimezoneScore: 1.0, SkillMatchScore: 0.2,
	}
	ranked := []domain.Candidate{top}

	outcome := Run(domain.Ticket{Priority: domain.PriorityMedium}, similar, ranked, cfg)

	if outcome.Top.Email() != "top@example.com" {
		t.Fatalf("skills gap rule must never reassign, got %v", outcome.Top.Email())
	}
	if len(outcome.Reasoning) == 0 {
		t.Fatal("expected a reasoning annotation for the skills gap")
	}
}
