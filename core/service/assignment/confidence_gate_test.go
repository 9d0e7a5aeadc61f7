package assignment

import (
	"testing"

	"ticketassign/core/domain"
)

func TestEvaluateConfidence(t *testing.T) {
	cfg := DefaultConfig()

	strong := domain.Candidate{
		Member:            domain.Member{Email: "top@example.com"},
		SimilarityScore:   0.9,
		SkillMatchScore:   0.8,
		AvailabilityScore: 1.0,
		TimezoneScore:     1.0,
		Composite:         0.9,
	}
	weakSecond := domain.Candidate{
		Member:    domain.Member{Email: "second@example.com"},
		Composite: 0.5,
	}
	closeSecond := domain.Candidate{
		Member:    domain.Member{Email: "second@example.com"},
		Composite: 0.895,
	}

	tests := []struct {
		name           string
		top            domain.Candidate
		ranked         []domain.Candidate
		wantConfidence float64
	}{
		{"all five factors satisfied", strong, []domain.Candidate{strong, weakSecond}, 1.0},
		{"decisive-margin factor fails when second is close", strong, []domain.Candidate{strong, closeSecond}, 0.8},
		{"single candidate, no second to compare", strong, []domain.Candidate{strong}, 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EvaluateConfidence(tt.top, tt.ranked, cfg)
			if result.Confidence != tt.wantConfidence {
				t.Errorf("Confidence = %v, want %v", result.Confidence, tt.wantConfidence)
			}
		})
	}
}

func TestConfidenceResultRoute(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name         string
		confidence   float64
		wantType     domain.AssignmentType
		wantTrigger  bool
		wantAnnotate bool
	}{
		{"below low threshold escalates", 0.2, domain.AssignmentHumanReview, true, false},
		{"between low and medium annotates", 0.4, domain.AssignmentNormal, false, true},
		{"at or above medium assigns cleanly", 0.6, domain.AssignmentNormal, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ConfidenceResult{Confidence: tt.confidence}
			decisionType, trigger, annotate := result.Route(cfg)

			if decisionType != tt.wantType {
				t.Errorf("decisionType = %v, want %v", decisionType, tt.wantType)
			}
			if (trigger != nil) != tt.wantTrigger {
				t.Errorf("trigger present = %v, want %v", trigger != nil, tt.wantTrigger)
			}
			if annotate != tt.wantAnnotate {
				t.Errorf("annotate = %v, want %v", annotate, tt.wantAnnotate)
			}
		})
	}
}
