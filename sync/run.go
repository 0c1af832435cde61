package sync

import (
	"errors"
	"fmt"
	"io"
)

// ErrAborted is returned when the user declines the confirmation before
// execution. No filesystem mutation has happened when it is returned.
var ErrAborted = errors.New("sync: aborted by user")

// Resolve asks the prompter about every pending item, in plan order, and
// returns how many items needed a decision.
func Resolve(plan *Plan, prompter Prompter) (int, error) {
	pending := plan.Pending()
	for _, item := range pending {
		choice, err := prompter.AskChoice(item.To, Preview(item.To))
		if err != nil {
			return 0, err
		}

		switch choice {
		case ChoiceReplace:
			item.Action = ActionReplace
		case ChoiceBackup:
			item.Action = ActionBackupReplace
		case ChoiceSkip:
			item.Action = ActionSkip
			item.Reason = "declined"
		default:
			return 0, fmt.Errorf("sync: prompter returned unknown choice %d", choice)
		}
	}

	return len(pending), nil
}

// Run classifies the links, resolves conflicts through the prompter, and
// applies the plan, writing the before/after reports and any per-item errors
// to out. When any item needed a decision and the run is not forced, a
// single confirmation gates execution; declining it returns ErrAborted with
// the filesystem untouched.
func Run(links []LinkSpec, force bool, prompter Prompter, out io.Writer) error {
	plan := BuildPlan(links, force)

	prompted, err := Resolve(plan, prompter)
	if err != nil {
		return err
	}

	if prompted > 0 && !force {
		confirmed, err := prompter.AskConfirm("Apply these changes?")
		if err != nil {
			return err
		}

		if !confirmed {
			return ErrAborted
		}
	}

	fmt.Fprint(out, plan.Report("Planned actions"))

	errs := Execute(plan)

	fmt.Fprintln(out)
	fmt.Fprint(out, plan.Report("Outcome"))

	if len(errs) > 0 {
		fmt.Fprintln(out)
		for _, e := range errs {
			fmt.Fprintln(out, e)
		}
	}

	return nil
}
