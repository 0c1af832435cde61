package sync

import (
	"fmt"

	"github.com/dbdm-dev/dbdm/filesystem"
	"github.com/dbdm-dev/dbdm/logging"
)

// RunError records a single item's failed mutation.
type RunError struct {
	To  filesystem.Path
	Err error
}

func (e RunError) Error() string {
	return fmt.Sprintf("%s: %s", e.To, e.Err)
}

func (e RunError) Unwrap() error {
	return e.Err
}

// Execute applies every item's mutation in plan order. A failed mutation
// downgrades the item to a skip, records the error, and the run moves on to
// the next item; nothing aborts the loop.
func Execute(plan *Plan) []RunError {
	log := logging.GetLogger("executor")

	var errs []RunError
	for _, item := range plan.Items {
		switch item.Action {
		case ActionIgnore, ActionSkip:
			// Nothing to do.
		case ActionReplace:
			if err := ReplaceLink(item.From, item.To); err != nil {
				item.Action = ActionSkip
				item.Reason = "replace failed"
				errs = append(errs, RunError{To: item.To, Err: err})
			}
		case ActionBackupReplace:
			if err := BackupAndReplace(item.From, item.To); err != nil {
				item.Action = ActionSkip
				item.Reason = "backup+replace failed"
				errs = append(errs, RunError{To: item.To, Err: err})
			}
		case ActionPending:
			// Resolution must not leave pending items behind. Keep the run
			// alive but make the bug visible.
			log.Error().
				Str("to", item.To.String()).
				Msg("unresolved item reached the executor")
			item.Action = ActionSkip
			item.Reason = "unresolved"
		}
	}

	return errs
}
