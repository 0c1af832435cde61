package sync

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseChoice(t *testing.T) {
	cases := []struct {
		answer string
		choice Choice
		ok     bool
	}{
		{"r", ChoiceReplace, true},
		{"R", ChoiceReplace, true},
		{"replace", ChoiceReplace, true},
		{"REPLACE", ChoiceReplace, true},
		{"b", ChoiceBackup, true},
		{"backup", ChoiceBackup, true},
		{"s", ChoiceSkip, true},
		{"skip", ChoiceSkip, true},
		{"  skip  ", ChoiceSkip, true},
		{"", 0, false},
		{"x", 0, false},
		{"backups", 0, false},
	}

	for _, tc := range cases {
		choice, ok := ParseChoice(tc.answer)
		require.Equal(t, tc.ok, ok, "answer %q", tc.answer)
		if tc.ok {
			require.Equal(t, tc.choice, choice, "answer %q", tc.answer)
		}
	}
}
