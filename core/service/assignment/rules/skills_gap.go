package rules

import "ticketassign/core/domain"

// applySkillsGap is Rule 4: a weak skill match on the top pick never causes
// a reassignment, only an annotation flagging the gap for the assignee.
func applySkillsGap(o *Outcome, cfg domain.Config) {
	if o.Top.SkillMatchScore >= cfg.SkillsGapFloor {
		return
	}
	o.annotate("assignee's recorded skills are a weak match for this ticket's category")
}
