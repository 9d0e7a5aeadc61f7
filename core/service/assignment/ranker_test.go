package assignment

import (
	"testing"

	"ticketassign/core/domain"
)

func TestRank(t *testing.T) {
	candidates := []domain.Candidate{
		{Member: domain.Member{Email: "zed@example.com"}, Composite: 0.7},
		{Member: domain.Member{Email: "amy@example.com"}, Composite: 0.9},
		{Member: domain.Member{Email: "bob@example.com"}, Composite: 0.9},
		{Member: domain.Member{Email: "cid@example.com"}, Composite: 0.5},
	}

	ranked := Rank(candidates)

	wantOrder := []string{"amy@example.com", "bob@example.com", "zed@example.com", "cid@example.com"}
	for i, want := range wantOrder {
		if ranked[i].Email() != want {
			t.Errorf("position %d = %v, want %v", i, ranked[i].Email(), want)
		}
	}

	if candidates[0].Email() != "zed@example.com" {
		t.Errorf("Rank mutated its input slice")
	}
}
