package sync

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReportGroupsByActionInFixedOrder(t *testing.T) {
	plan := &Plan{
		Items: []*PlanItem{
			{To: "/home/.vimrc", Action: ActionReplace},
			{To: "/home/.bashrc", Action: ActionIgnore},
			{To: "/home/.config/nvim", Action: ActionBackupReplace},
			{To: "/home/.gitconfig", Action: ActionSkip, Reason: "declined"},
			{To: "/home/.zshrc", Action: ActionReplace},
		},
	}

	expected := `Planned actions

Ignored:
  /home/.bashrc

Skipped:
  /home/.gitconfig (declined)

Replaced:
  /home/.vimrc
  /home/.zshrc

Backed up and replaced:
  /home/.config/nvim
`

	require.Equal(t, expected, plan.Report("Planned actions"))
}

func TestReportOmitsEmptyGroups(t *testing.T) {
	plan := &Plan{
		Items: []*PlanItem{
			{To: "/home/.vimrc", Action: ActionReplace},
		},
	}

	expected := `Outcome

Replaced:
  /home/.vimrc
`

	require.Equal(t, expected, plan.Report("Outcome"))
}

func TestActionString(t *testing.T) {
	require.Equal(t, "pending", ActionPending.String())
	require.Equal(t, "ignore", ActionIgnore.String())
	require.Equal(t, "replace", ActionReplace.String())
	require.Equal(t, "backup+replace", ActionBackupReplace.String())
	require.Equal(t, "skip", ActionSkip.String())
}
