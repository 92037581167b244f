package config

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/meera/lingodrill/internal/practice"
	"github.com/meera/lingodrill/internal/ui/theme"
)

func (c *ConfigScreen) View(width, height int) string {
	var rows []string

	rows = append(rows, theme.Title.Render("Configure your practice test"))
	rows = append(rows, "")

	rows = append(rows, c.renderField(fieldCount,
		fmt.Sprintf("Questions (%d-%d)", practice.MinQuestionCount, practice.MaxQuestionCount),
		c.countInput.View()))

	rows = append(rows, c.renderField(fieldScope, "Scope",
		c.scopeSel.View(c.focus == fieldScope)))

	if c.previousApplicable() {
		rows = append(rows, c.renderField(fieldPrevious, "Previous lessons",
			c.renderPreviousLessons()))
	} else if c.scopeSel.Value() == "include-previous" {
		rows = append(rows, theme.Hint.Render("    this is the first lesson of its course"))
	}

	rows = append(rows, c.renderField(fieldMixture, "Mixture",
		c.mixtureSel.View(c.focus == fieldMixture)))
	rows = append(rows, theme.Hint.Render("    "+mixtureHint(c.mixtureSel.Value())))

	rows = append(rows, c.renderField(fieldTimeLimit,
		fmt.Sprintf("Time limit (%ds per question)", practice.QuestionSeconds),
		c.timeLimitSel.View(c.focus == fieldTimeLimit)))

	rows = append(rows, c.renderField(fieldFeedback, "Feedback",
		c.feedbackSel.View(c.focus == fieldFeedback)))

	rows = append(rows, "")
	rows = append(rows, c.renderStartButton())

	if c.errMsg != "" {
		rows = append(rows, "")
		rows = append(rows, theme.Incorrect.Render(c.errMsg))
	}
	if c.starting {
		rows = append(rows, "")
		rows = append(rows, theme.Hint.Render("drawing questions..."))
	}

	content := strings.Join(rows, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// renderField renders a label/value pair, marking the focused field.
func (c *ConfigScreen) renderField(field int, label, value string) string {
	prefix := "    "
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if c.focus == field {
		prefix = "  ▸ "
		labelStyle = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	}
	return prefix + labelStyle.Render(fmt.Sprintf("%-34s", label)) + value
}

// renderPreviousLessons renders the checkbox row for the include-previous
// lesson selection.
func (c *ConfigScreen) renderPreviousLessons() string {
	parts := make([]string, 0, len(c.prevLessons))
	for i, l := range c.prevLessons {
		box := "[ ]"
		if c.prevSelected[l.ID] {
			box = "[x]"
		}
		entry := fmt.Sprintf("%s %s", box, l.Title)
		if c.focus == fieldPrevious && i == c.prevCursor {
			entry = theme.Selected.Render(entry)
		} else {
			entry = theme.Unselected.Render(entry)
		}
		parts = append(parts, entry)
	}
	return strings.Join(parts, "  ")
}

func (c *ConfigScreen) renderStartButton() string {
	label := "  START TEST  "
	if c.focus == fieldStart {
		return lipgloss.NewStyle().
			Foreground(theme.BgDark).
			Background(theme.Primary).
			Bold(true).
			Render(label)
	}
	return lipgloss.NewStyle().
		Foreground(theme.Primary).
		Render(label)
}

// mixtureHint explains what each mixture draws from.
func mixtureHint(mixture string) string {
	switch mixture {
	case "all":
		return "every question in scope"
	case "wrong":
		return "questions you have answered wrong before"
	case "non-answered":
		return "questions you have never attempted"
	case "doubtful":
		return "questions you marked as doubt"
	case "combined":
		return "wrong, doubtful, and never-attempted questions"
	}
	return ""
}
