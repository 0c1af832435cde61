package sync

import (
	"fmt"
	"strings"

	"github.com/dbdm-dev/dbdm/filesystem"
)

// LinkSpec is one declared link: To should become a symlink pointing at From.
type LinkSpec struct {
	From filesystem.Path
	To   filesystem.Path
}

// PlanItem is a LinkSpec plus the action chosen for it. Reason is set when
// the action carries an explanation (a skip, or an execution failure).
type PlanItem struct {
	From   filesystem.Path
	To     filesystem.Path
	Action Action
	Reason string
}

// Plan is the ordered list of items for one run, in config order.
type Plan struct {
	Items []*PlanItem
}

// BuildPlan classifies every link against the current filesystem state.
func BuildPlan(links []LinkSpec, force bool) *Plan {
	plan := &Plan{}
	for _, link := range links {
		plan.Items = append(plan.Items, &PlanItem{
			From:   link.From,
			To:     link.To,
			Action: Classify(link, force),
		})
	}

	return plan
}

// Pending returns the items still awaiting a decision, in plan order.
func (p *Plan) Pending() []*PlanItem {
	var pending []*PlanItem
	for _, item := range p.Items {
		if item.Action == ActionPending {
			pending = append(pending, item)
		}
	}

	return pending
}

var reportOrder = []struct {
	action  Action
	heading string
}{
	{ActionIgnore, "Ignored"},
	{ActionSkip, "Skipped"},
	{ActionReplace, "Replaced"},
	{ActionBackupReplace, "Backed up and replaced"},
}

// Report renders the plan grouped by action. Empty groups are omitted.
func (p *Plan) Report(title string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", title)

	for _, group := range reportOrder {
		header := false
		for _, item := range p.Items {
			if item.Action != group.action {
				continue
			}

			if !header {
				fmt.Fprintf(&b, "\n%s:\n", group.heading)
				header = true
			}

			if item.Reason != "" {
				fmt.Fprintf(&b, "  %s (%s)\n", item.To, item.Reason)
			} else {
				fmt.Fprintf(&b, "  %s\n", item.To)
			}
		}
	}

	return b.String()
}
