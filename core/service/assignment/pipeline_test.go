package assignment

import (
	"context"
	"testing"

	"ticketassign/core/domain"
)

type fakeStore struct {
	members           []domain.Member
	activeTickets     map[string][]domain.ActiveTicket
	onLeave           map[string]bool
	holidays          []domain.HolidayEntry
	recentAssignments map[string]int
	err               error
}

func (f *fakeStore) ListMembers(ctx context.Context, roleFilter domain.Role) ([]domain.Member, error) {
	return f.members, f.err
}

func (f *fakeStore) ListActiveTickets(ctx context.Context, memberIDs []string) (map[string][]domain.ActiveTicket, error) {
	return f.activeTickets, f.err
}

func (f *fakeStore) ListActiveLeaves(ctx context.Context, memberIDs []string, today string) (map[string]bool, error) {
	return f.onLeave, f.err
}

func (f *fakeStore) ListHolidays(ctx context.Context, date string, regions []domain.Region) ([]domain.HolidayEntry, error) {
	return f.holidays, f.err
}

func (f *fakeStore) CountRecentAssignments(ctx context.Context, memberIDs []string, windowDays int) (map[string]int, error) {
	return f.recentAssignments, f.err
}

func newFakeStore(members []domain.Member) *fakeStore {
	return &fakeStore{
		members:           members,
		activeTickets:     map[string][]domain.ActiveTicket{},
		onLeave:           map[string]bool{},
		holidays:          nil,
		recentAssignments: map[string]int{},
	}
}

func TestEngineAssignTicketHappyPath(t *testing.T) {
	store := newFakeStore([]domain.Member{
		{ID: "m1", Email: "alice@example.com", Timezone: "Asia/Kolkata", SkillTags: []string{"networking"}},
		{ID: "m2", Email: "bob@example.com", Timezone: "America/New_York", SkillTags: []string{"billing"}},
	})
	engine := NewEngine(store)

	ticket := domain.Ticket{ID: "T1", Priority: domain.PriorityHigh, Category: "networking"}
	similar := []domain.SimilarTicket{
		{AssigneeEmail: "alice@example.com", SimilarityScore: 0.92},
		{AssigneeEmail: "alice@example.com", SimilarityScore: 0.88},
	}

	decision, err := engine.AssignTicket(context.Background(), ticket, similar)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !decision.IsWellFormed() {
		t.Fatalf("decision is not well-formed: %+v", decision)
	}
}

func TestEngineAssignTicketRejectsUnknownPriority(t *testing.T) {
	store := newFakeStore([]domain.Member{{ID: "m1", Email: "alice@example.com"}})
	engine := NewEngine(store)

	_, err := engine.AssignTicket(context.Background(), domain.Ticket{ID: "T1", Priority: "Urgent"}, nil)
	if err == nil {
		t.Fatal("expected an error for an unknown priority")
	}
}

func TestEngineAssignTicketRejectsEmptyID(t *testing.T) {
	store := newFakeStore([]domain.Member{{ID: "m1", Email: "alice@example.com"}})
	engine := NewEngine(store)

	_, err := engine.AssignTicket(context.Background(), domain.Ticket{Priority: domain.PriorityLow}, nil)
	if err == nil {
		t.Fatal("expected an error for a missing ticket id")
	}
}

func TestEngineAssignTicketNoEligibleMembers(t *testing.T) {
	store := newFakeStore(nil)
	engine := NewEngine(store)

	decision, err := engine.AssignTicket(context.Background(), domain.Ticket{ID: "T1", Priority: domain.PriorityLow}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decision.AssignmentType != domain.AssignmentHumanReview {
		t.Fatalf("AssignmentType = %v, want human_review", decision.AssignmentType)
	}
	if !decision.IsWellFormed() {
		t.Fatalf("decision is not well-formed: %+v", decision)
	}
}

func TestEngineAssignTicketLowSimilarityEscalates(t *testing.T) {
	store := newFakeStore([]domain.Member{{ID: "m1", Email: "alice@example.com"}})
	engine := NewEngine(store)

	decision, err := engine.AssignTicket(context.Background(), domain.Ticket{ID: "T1", Priority: domain.PriorityLow}, []domain.SimilarTicket{
		{AssigneeEmail: "alice@example.com", SimilarityScore: 0.2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decision.AssignmentType != domain.AssignmentHumanReview {
		t.Fatalf("AssignmentType = %v, want human_review", decision.AssignmentType)
	}
	if len(decision.Triggers) == 0 || decision.Triggers[0].Reason != "no_similar_pattern" {
		t.Fatalf("unexpected triggers: %+v", decision.Triggers)
	}
}

func TestEngineAssignTicketPropagatesStoreError(t *testing.T) {
	store := &fakeStore{err: context.DeadlineExceeded}
	engine := NewEngine(store)

	_, err := engine.AssignTicket(context.Background(), domain.Ticket{ID: "T1", Priority: domain.PriorityLow}, nil)
	if err == nil {
		t.Fatal("expected the store error to propagate")
	}
}
