package domain

// AssignmentType is the decision's outbound channel.
type AssignmentType string

const (
	AssignmentNormal      AssignmentType = "normal"
	AssignmentHumanReview AssignmentType = "human_review"
)

// Severity grades a human-review trigger's urgency.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Trigger is a single reason the decision is being escalated to a human.
type Trigger struct {
	Reason   string
	Severity Severity
	Action   string
	Timeout  string // e.g. "15min", "1h"; empty if not applicable
	Message  string
}

// Decision is the AssignTicket entry point's sole output: a fully formed
// assignment_type ∈ {normal, human_review}. A normal decision carries a
// primary assignee; a human_review decision carries at least one Trigger.
// Never both missing, never both present.
type Decision struct {
	AssignmentType  AssignmentType
	PrimaryAssignee string // member email, empty for human_review
	Confidence      float64
	AppliedRules    []string
	Reasoning       []string
	Triggers        []Trigger
}

// IsWellFormed checks the invariant from §3: exactly one of PrimaryAssignee
// or a non-empty Triggers list is set.
func (d Decision) IsWellFormed() bool {
	hasAssignee := d.PrimaryAssignee != ""
	hasTrigger := len(d.Triggers) > 0
	return hasAssignee != hasTrigger
}
