package assignment

import (
	"math"
	"testing"

	"ticketassign/core/domain"
)

func TestSimilarityScore(t *testing.T) {
	tests := []struct {
		name            string
		email           string
		tickets         []domain.SimilarTicket
		wantScore       float64
		wantSolvedCount int
	}{
		{
			name:            "no similar tickets",
			email:           "alice@example.com",
			tickets:         nil,
			wantScore:       0,
			wantSolvedCount: 0,
		},
		{
			name:  "member never solved a similar ticket",
			email: "alice@example.com",
			tickets: []domain.SimilarTicket{
				{AssigneeEmail: "bob@example.com", SimilarityScore: 0.9},
			},
			wantScore:       0,
			wantSolvedCount: 0,
		},
		{
			name:  "single solved ticket, expertise factor scales down",
			email: "alice@example.com",
			tickets: []domain.SimilarTicket{
				{AssigneeEmail: "alice@example.com", SimilarityScore: 0.9},
			},
			wantScore:       (math.Log(2) / math.Log(6)) * 0.9,
			wantSolvedCount: 1,
		},
		{
			name:  "expertise factor clamps at 1.0 for large solved counts",
			email: "alice@example.com",
			tickets: []domain.SimilarTicket{
				{AssigneeEmail: "alice@example.com", SimilarityScore: 1.0},
				{AssigneeEmail: "alice@example.com", SimilarityScore: 1.0},
				{AssigneeEmail: "alice@example.com", SimilarityScore: 1.0},
				{AssigneeEmail: "alice@example.com", SimilarityScore: 1.0},
				{AssigneeEmail: "alice@example.com", SimilarityScore: 1.0},
				{AssigneeEmail: "alice@example.com", SimilarityScore: 1.0},
			},
			wantScore:       1.0,
			wantSolvedCount: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, solved := similarityScore(tt.email, tt.tickets)
			if math.Abs(score-tt.wantScore) > 1e-9 {
				t.Errorf("score = %v, want %v", score, tt.wantScore)
			}
			if solved != tt.wantSolvedCount {
				t.Errorf("solvedCount = %v, want %v", solved, tt.wantSolvedCount)
			}
		})
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{1.5, 1},
	}

	for _, tt := range tests {
		if got := clamp01(tt.in); got != tt.want {
			t.Errorf("clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
