package assignment

import (
	"testing"

	"ticketassign/core/domain"
)

func TestTimezoneScore(t *testing.T) {
	cfg := DefaultConfig()
	inMember := domain.Member{Timezone: "Asia/Kolkata"}
	usMember := domain.Member{Timezone: "America/New_York"}
	otherMember := domain.Member{Timezone: "Europe/Berlin"}

	tests := []struct {
		name       string
		member     domain.Member
		priority   domain.Priority
		solved     int
		nowUTCHour float64
		want       float64
	}{
		{"IN member inside IST window", inMember, domain.PriorityMedium, 0, 5.0, 1.0},
		{"US member outside IST window", usMember, domain.PriorityMedium, 0, 20.0, 1.0},
		{"IN member outside IST window, non-critical, not expert", inMember, domain.PriorityMedium, 0, 20.0, 0.2},
		{"IN member outside window, critical ticket boosts", inMember, domain.PriorityCritical, 0, 20.0, cfg.TZBoostCritical},
		{"IN member outside window, expert boosts", inMember, domain.PriorityMedium, 3, 20.0, cfg.TZBoostExpert},
		{"critical takes precedence over expert", inMember, domain.PriorityCritical, 5, 20.0, cfg.TZBoostCritical},
		{"other region inside window still not preferred", otherMember, domain.PriorityMedium, 0, 5.0, 0.2},
		{"window boundary start is inclusive", inMember, domain.PriorityMedium, 0, 2.5, 1.0},
		{"window boundary end is exclusive", inMember, domain.PriorityMedium, 0, 12.5, 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := timezoneScore(tt.member, tt.priority, tt.solved, tt.nowUTCHour, cfg); got != tt.want {
				t.Errorf("timezoneScore() = %v, want %v", got, tt.want)
			}
		})
	}
}
