package domain

import "strings"

// Role is a Member's access/membership tag. Only role USER is eligible to be
// loaded by the Snapshot Loader as a candidate.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Region is the coarse geographic tag derived from a Member's IANA timezone,
// used for holiday matching and timezone scoring.
type Region string

const (
	RegionIN      Region = "IN"
	RegionUS      Region = "US"
	RegionGLOBAL  Region = "GLOBAL"
	RegionUnknown Region = "Unknown"
)

// Member is a team member eligible for ticket assignment.
type Member struct {
	ID        string
	Name      string
	Email     string
	Timezone  string
	Role      Role
	SkillTags []string
}

// Region derives the member's coarse region from their IANA timezone prefix.
// Asia/* maps to IN, America/* maps to US, everything else is Unknown and is
// never holiday-blocked by a regional (non-GLOBAL) entry.
func (m Member) Region() Region {
	switch {
	case strings.HasPrefix(m.Timezone, "Asia/"):
		return RegionIN
	case strings.HasPrefix(m.Timezone, "America/"):
		return RegionUS
	default:
		return RegionUnknown
	}
}

// HasSkill reports whether the member's skill tags contain tag, case-insensitive.
func (m Member) HasSkill(tag string) bool {
	tag = strings.ToLower(tag)
	for _, s := range m.SkillTags {
		if strings.ToLower(s) == tag {
			return true
		}
	}
	return false
}

// TicketStatus is the lifecycle state of an ActiveTicket.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "Open"
	TicketStatusInProgress TicketStatus = "InProgress"
	TicketStatusBlocked    TicketStatus = "Blocked"
	TicketStatusPending    TicketStatus = "Pending"
)

// ActiveTicket is one ticket currently owned by a member, as loaded by the
// Snapshot Loader for workload scoring.
type ActiveTicket struct {
	Priority  Priority
	Status    TicketStatus
	CreatedAt int64 // unix seconds
}

// LeaveRecord is an inclusive date-range leave entry for a member.
type LeaveRecord struct {
	MemberID  string
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
}

// ActiveOn reports whether the leave covers the given date (inclusive),
// comparing as ISO-8601 strings so no timezone conversion is needed.
func (l LeaveRecord) ActiveOn(today string) bool {
	return l.StartDate <= today && today <= l.EndDate
}

// HolidayEntry blocks availability for a region on a given date.
type HolidayEntry struct {
	Date   string // YYYY-MM-DD
	Region Region
}
