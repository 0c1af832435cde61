package sync

import (
	"io/fs"

	"github.com/dbdm-dev/dbdm/logging"
)

// Classify inspects the destination of one link and decides its action.
//
// A missing destination is safe to link straight away. A destination that is
// already a symlink to the declared source is left alone. Anything else is
// existing content: replaced outright when the run is forced or the content
// is empty, otherwise left pending for the user to decide.
//
// Unreadable destination metadata counts as missing. Failing open keeps a
// first run on a clean machine prompt-free.
func Classify(link LinkSpec, force bool) Action {
	info, err := link.To.Lstat()
	if err != nil {
		return ActionReplace
	}

	if info.Mode()&fs.ModeSymlink != 0 {
		if target, err := link.To.Readlink(); err == nil {
			resolved := link.To.ResolveLinkTarget(target).Canonicalize()
			if resolved == link.From.Canonicalize() {
				return ActionIgnore
			}
		}

		// A symlink pointing somewhere else is existing content like any
		// other.
	}

	if force {
		return ActionReplace
	}

	empty, err := link.To.IsEmpty()
	if err != nil {
		log := logging.GetLogger("classify")
		log.Debug().
			Err(err).
			Str("to", link.To.String()).
			Msg("emptiness check failed, treating destination as non-empty")
		return ActionPending
	}

	if empty {
		return ActionReplace
	}

	return ActionPending
}
