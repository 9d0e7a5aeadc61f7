package assignment

import (
	"math"
	"testing"

	"ticketassign/core/domain"
)

func TestWorkloadScore(t *testing.T) {
	cfg := DefaultConfig()
	now := int64(1000000)

	tests := []struct {
		name           string
		tickets        []domain.ActiveTicket
		wantWeighted   float64
		wantOverloaded bool
	}{
		{
			name:           "no active tickets, full score",
			tickets:        nil,
			wantWeighted:   0,
			wantOverloaded: false,
		},
		{
			name: "one fresh in-progress critical ticket",
			tickets: []domain.ActiveTicket{
				{Priority: domain.PriorityCritical, Status: domain.TicketStatusInProgress, CreatedAt: now},
			},
			wantWeighted:   3.0 * 1.0 * 1.0,
			wantOverloaded: false,
		},
		{
			name: "aged ticket picks up the age multiplier",
			tickets: []domain.ActiveTicket{
				{Priority: domain.PriorityHigh, Status: domain.TicketStatusOpen, CreatedAt: now - int64(8*86400)},
			},
			wantWeighted:   2.0 * 1.5 * 0.5,
			wantOverloaded: false,
		},
		{
			name: "many critical tickets trip the overload threshold",
			tickets: []domain.ActiveTicket{
				{Priority: domain.PriorityCritical, Status: domain.TicketStatusInProgress, CreatedAt: now},
				{Priority: domain.PriorityCritical, Status: domain.TicketStatusInProgress, CreatedAt: now},
				{Priority: domain.PriorityCritical, Status: domain.TicketStatusInProgress, CreatedAt: now},
				{Priority: domain.PriorityCritical, Status: domain.TicketStatusInProgress, CreatedAt: now},
				{Priority: domain.PriorityCritical, Status: domain.TicketStatusInProgress, CreatedAt: now},
				{Priority: domain.PriorityCritical, Status: domain.TicketStatusInProgress, CreatedAt: now},
				{Priority: domain.PriorityCritical, Status: domain.TicketStatusInProgress, CreatedAt: now},
			},
			wantWeighted:   21.0,
			wantOverloaded: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, weighted, overloaded := workloadScore(tt.tickets, now, cfg)

			if math.Abs(weighted-tt.wantWeighted) > 1e-9 {
				t.Errorf("weightedLoad = %v, want %v", weighted, tt.wantWeighted)
			}
			if overloaded != tt.wantOverloaded {
				t.Errorf("isOverloaded = %v, want %v", overloaded, tt.wantOverloaded)
			}

			wantScore := 1 - tt.wantWeighted/cfg.WorkloadCapacity
			if wantScore < 0 {
				wantScore = 0
			}
			if math.Abs(score-wantScore) > 1e-9 {
				t.Errorf("score = %v, want %v", score, wantScore)
			}
		})
	}
}
