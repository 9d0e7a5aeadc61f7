package assignment

import (
	"testing"

	"ticketassign/core/domain"
)

func TestScorerScore(t *testing.T) {
	cfg := DefaultConfig()
	scorer := NewScorer(nil)

	ticket := domain.Ticket{ID: "T1", Priority: domain.PriorityHigh, Category: "networking"}
	snap := domain.Snapshot{
		Members: []domain.Member{
			{ID: "m1", Email: "alice@example.com", Timezone: "Asia/Kolkata", SkillTags: []string{"networking"}},
			{ID: "m2", Email: "bob@example.com", Timezone: "America/New_York", SkillTags: []string{"billing"}},
		},
		ActiveTickets:     map[string][]domain.ActiveTicket{},
		MembersOnLeave:    map[string]bool{},
		Holidays:          nil,
		RecentAssignments: map[string]int{},
		Today:             "2026-08-03",
		NowUTCHour:        5.0,
	}

	candidates, err := scorer.Score(snap, ticket, nil, 1700000000, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("len(candidates) = %d, want 2", len(candidates))
	}

	byEmail := map[string]domain.Candidate{}
	for _, c := range candidates {
		byEmail[c.Email()] = c
	}

	alice := byEmail["alice@example.com"]
	if alice.SkillMatchScore != 0.8 {
		t.Errorf("alice SkillMatchScore = %v, want 0.8", alice.SkillMatchScore)
	}
	if alice.TimezoneScore != 1.0 {
		t.Errorf("alice TimezoneScore = %v, want 1.0 (in IST window)", alice.TimezoneScore)
	}
	if alice.AvailabilityScore != 1.0 {
		t.Errorf("alice AvailabilityScore = %v, want 1.0", alice.AvailabilityScore)
	}

	bob := byEmail["bob@example.com"]
	if bob.SkillMatchScore != skillFloor {
		t.Errorf("bob SkillMatchScore = %v, want floor %v", bob.SkillMatchScore, skillFloor)
	}

	if alice.Composite <= bob.Composite {
		t.Errorf("alice.Composite = %v should exceed bob.Composite = %v given the stronger skill/tz match", alice.Composite, bob.Composite)
	}
}

func TestScorerScoreUnknownPriority(t *testing.T) {
	cfg := DefaultConfig()
	scorer := NewScorer(nil)

	ticket := domain.Ticket{ID: "T1", Priority: domain.Priority("Unknown"), Category: "networking"}
	_, err := scorer.Score(domain.Snapshot{}, ticket, nil, 0, cfg)
	if err == nil {
		t.Fatal("expected an error for an unknown priority, got nil")
	}
}
