package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/meera/lingodrill/internal/ui/theme"
)

// MultiChoice is the four-option answer selector used during execution.
type MultiChoice struct {
	Options      []string
	CorrectIndex int
	Selected     int

	// Locked freezes navigation once the question is answered or skipped.
	Locked bool

	// ChosenIndex is the submitted option, -1 before submission.
	ChosenIndex int

	// Revealed highlights the correct/wrong options (immediate feedback or
	// results review).
	Revealed bool

	// DoubtPending marks the upcoming answer as doubtful.
	DoubtPending bool
}

// NewMultiChoice creates a selector over a question's options.
func NewMultiChoice(options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

// Update handles keyboard navigation. Selection submission is owned by the
// screen so the session state machine stays authoritative.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Locked {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	}

	return m, nil
}

// View renders the options with A–D labels.
func (m MultiChoice) View() string {
	labels := []string{"A", "B", "C", "D"}

	var s string
	for i, opt := range m.Options {
		label := labels[i%len(labels)]
		prefix := "  "
		if i == m.Selected && !m.Locked {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case m.Revealed && i == m.CorrectIndex:
			s += theme.Correct.Render(line)
		case m.Revealed && i == m.ChosenIndex:
			s += theme.Incorrect.Render(line)
		case !m.Revealed && m.Locked && i == m.ChosenIndex:
			s += theme.Selected.Render(line)
		case i == m.Selected && !m.Locked:
			s += theme.Selected.Render(line)
		default:
			s += theme.Unselected.Render(line)
		}
		s += "\n"
	}

	if m.DoubtPending && !m.Locked {
		s += "\n" + theme.Doubtful.Render("  ? marked as doubt — this answer will not be scored")
	}

	return s
}
