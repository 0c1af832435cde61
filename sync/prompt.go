package sync

import (
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/dbdm-dev/dbdm/filesystem"
)

// Choice is one of the conflict decisions the user can make.
type Choice int

const (
	ChoiceReplace Choice = iota
	ChoiceBackup
	ChoiceSkip
)

// Prompter is the decision collaborator consumed during resolution. Tests
// substitute a scripted implementation for the terminal one.
type Prompter interface {
	// AskChoice shows the preview of the conflicting destination and asks
	// what to do with it. Implementations must re-prompt until the answer is
	// valid.
	AskChoice(to filesystem.Path, preview string) (Choice, error)

	// AskConfirm asks a yes/no question.
	AskConfirm(question string) (bool, error)
}

// SurveyPrompter asks on the terminal. Previews are written to Out.
type SurveyPrompter struct {
	Out io.Writer
}

func (p *SurveyPrompter) AskChoice(to filesystem.Path, preview string) (Choice, error) {
	fmt.Fprintf(p.Out, "%s already exists:\n%s", to, preview)

	for {
		answer := ""
		prompt := &survey.Input{
			Message: "[r]eplace, [b]ackup, or [s]kip?",
		}

		if err := survey.AskOne(prompt, &answer); err != nil {
			return 0, err
		}

		if choice, ok := ParseChoice(answer); ok {
			return choice, nil
		}

		fmt.Fprintf(p.Out, "invalid answer %q\n", answer)
	}
}

func (p *SurveyPrompter) AskConfirm(question string) (bool, error) {
	confirmed := false
	prompt := &survey.Confirm{
		Message: question,
	}

	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, err
	}

	return confirmed, nil
}

// ParseChoice accepts the single-letter or full-word forms of a conflict
// decision, case-insensitively.
func ParseChoice(answer string) (Choice, bool) {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "r", "replace":
		return ChoiceReplace, true
	case "b", "backup":
		return ChoiceBackup, true
	case "s", "skip":
		return ChoiceSkip, true
	}

	return 0, false
}
