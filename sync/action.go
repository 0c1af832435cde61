// Package sync plans and applies the filesystem mutations that make every
// declared destination a symlink to its source.
package sync

// Action is the resolved disposition of a single link.
type Action int

const (
	// ActionPending marks a link that still needs a decision from the user.
	// It must never survive resolution; the executor treats it as an
	// internal invariant violation.
	ActionPending Action = iota

	// ActionIgnore means the destination is already correctly linked.
	ActionIgnore

	// ActionReplace removes whatever sits at the destination and links it,
	// without a backup.
	ActionReplace

	// ActionBackupReplace moves the destination aside before linking it.
	ActionBackupReplace

	// ActionSkip leaves the destination untouched.
	ActionSkip
)

func (a Action) String() string {
	switch a {
	case ActionPending:
		return "pending"
	case ActionIgnore:
		return "ignore"
	case ActionReplace:
		return "replace"
	case ActionBackupReplace:
		return "backup+replace"
	case ActionSkip:
		return "skip"
	}

	return "unknown"
}
