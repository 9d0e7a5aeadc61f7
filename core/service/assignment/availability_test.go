package assignment

import (
	"testing"

	"ticketassign/core/domain"
)

func TestAvailabilityScore(t *testing.T) {
	inMember := domain.Member{Timezone: "Asia/Kolkata"}
	usMember := domain.Member{Timezone: "America/New_York"}

	tests := []struct {
		name     string
		member   domain.Member
		onLeave  bool
		holidays []domain.HolidayEntry
		today    string
		want     float64
	}{
		{"on leave overrides everything", inMember, true, nil, "2026-08-03", 0.0},
		{"no holiday, not on leave", inMember, false, nil, "2026-08-03", 1.0},
		{
			"regional holiday matching member's region",
			inMember, false,
			[]domain.HolidayEntry{{Date: "2026-08-03", Region: domain.RegionIN}},
			"2026-08-03", 0.0,
		},
		{
			"regional holiday for a different region does not block",
			usMember, false,
			[]domain.HolidayEntry{{Date: "2026-08-03", Region: domain.RegionIN}},
			"2026-08-03", 1.0,
		},
		{
			"global holiday blocks every region",
			usMember, false,
			[]domain.HolidayEntry{{Date: "2026-08-03", Region: domain.RegionGLOBAL}},
			"2026-08-03", 0.0,
		},
		{
			"holiday on a different date does not block",
			inMember, false,
			[]domain.HolidayEntry{{Date: "2026-08-02", Region: domain.RegionIN}},
			"2026-08-03", 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := availabilityScore(tt.member, tt.onLeave, tt.holidays, tt.today); got != tt.want {
				t.Errorf("availabilityScore() = %v, want %v", got, tt.want)
			}
		})
	}
}
