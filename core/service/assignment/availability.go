package assignment

import "ticketassign/core/domain"

// availabilityScore is the binary gate from §4.2.3: 1.0 iff the member is on
// no active leave and blocked by no holiday (regional or GLOBAL) today,
// else 0.0. There is no graded value.
func availabilityScore(member domain.Member, onLeave bool, holidays []domain.HolidayEntry, today string) float64 {
	if onLeave {
		return 0.0
	}

	region := member.Region()
	for _, h := range holidays {
		if h.Date != today {
			continue
		}
		if h.Region == region || h.Region == domain.RegionGLOBAL {
			return 0.0
		}
	}

	return 1.0
}
