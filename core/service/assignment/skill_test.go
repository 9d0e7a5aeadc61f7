package assignment

import "testing"

func TestCategoryTagMatcher(t *testing.T) {
	m := CategoryTagMatcher{}

	tests := []struct {
		name     string
		category string
		tags     []string
		want     float64
	}{
		{"exact match, case-insensitive", "Networking", []string{"networking", "linux"}, 0.8},
		{"substring match, tag contains category", "network", []string{"networking-l2"}, 0.5},
		{"substring match, category contains tag", "database-outage", []string{"database"}, 0.5},
		{"no overlap falls back to floor", "billing", []string{"networking", "linux"}, skillFloor},
		{"no tags at all falls back to floor", "billing", nil, skillFloor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Match(tt.category, tt.tags); got != tt.want {
				t.Errorf("Match(%q, %v) = %v, want %v", tt.category, tt.tags, got, tt.want)
			}
		})
	}
}
