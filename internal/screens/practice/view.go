package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/meera/lingodrill/internal/practice"
	"github.com/meera/lingodrill/internal/ui/components"
	"github.com/meera/lingodrill/internal/ui/theme"
)

func (p *PracticeScreen) View(width, height int) string {
	if p.persistErr != "" {
		return p.renderPersistError(width, height)
	}
	if p.persisting {
		return centered(width, height, theme.Hint.Render("saving your results..."))
	}
	if p.quitConfirm {
		return p.renderQuitConfirm(width, height)
	}
	return p.renderQuestion(width, height)
}

func (p *PracticeScreen) renderQuestion(width, height int) string {
	q := p.state.CurrentQuestion()
	if q == nil {
		return ""
	}

	var rows []string

	rows = append(rows, p.renderStatusLine(width))
	rows = append(rows, "")

	rows = append(rows, theme.Body.Bold(true).Render(q.Text))
	if q.Image != "" {
		rows = append(rows, theme.Hint.Render("[image: "+q.Image+"]"))
	}
	rows = append(rows, "")

	rows = append(rows, p.mc.View())

	if p.timeUp {
		rows = append(rows, "")
		rows = append(rows, theme.Incorrect.Render("⏱  Time's up — question skipped"))
	} else if p.state.FeedbackVisible {
		rows = append(rows, p.renderFeedback(q.Explanation))
	}

	content := strings.Join(rows, "\n")
	return centered(width, height, content)
}

// renderStatusLine shows progress and, with the time limit on, the countdown.
func (p *PracticeScreen) renderStatusLine(width int) string {
	progress := fmt.Sprintf("Question %d of %d", p.state.Current+1, p.state.Total())
	line := theme.Subtitle.Render(progress)

	if p.state.Config.TimeLimitEnabled {
		t := &p.state.Timer
		clock := fmt.Sprintf("⏱ %2ds", t.Remaining)
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		switch {
		case practice.TimerSuspended(p.state):
			clock += " (paused)"
		case t.Warning():
			style = lipgloss.NewStyle().Foreground(theme.Warning).Bold(true)
		}
		line += "   " + style.Render(clock)
	}

	bar := components.NewProgressBar("", float64(p.state.AnsweredCount())/float64(p.state.Total()), false, 40)
	return line + "\n" + bar.View()
}

// renderFeedback shows the verdict and explanation in immediate mode.
func (p *PracticeScreen) renderFeedback(explanation string) string {
	a := p.state.CurrentAnswer()
	if a == nil {
		return ""
	}

	var rows []string
	rows = append(rows, "")
	switch {
	case a.Doubt:
		rows = append(rows, theme.Doubtful.Render("? Marked as doubt — not scored"))
	case a.Verdict == practice.VerdictCorrect:
		rows = append(rows, theme.Correct.Render("✓ Correct!"))
	default:
		rows = append(rows, theme.Incorrect.Render("✗ Incorrect"))
	}

	if explanation != "" {
		rows = append(rows, theme.Hint.Render(explanation))
	}
	return strings.Join(rows, "\n")
}

func (p *PracticeScreen) renderQuitConfirm(width, height int) string {
	content := theme.Body.Bold(true).Render("Quit this test?") + "\n\n" +
		theme.Hint.Render("Progress will be discarded. Nothing is recorded.") + "\n\n" +
		theme.Selected.Render("[Y]es") + "   " + theme.Unselected.Render("[N]o")
	return centered(width, height, content)
}

func (p *PracticeScreen) renderPersistError(width, height int) string {
	content := theme.Incorrect.Render("Could not save your results") + "\n\n" +
		theme.Hint.Render(p.persistErr) + "\n\n" +
		theme.Body.Render("Your answers are still here. Press R to retry the save.")
	return centered(width, height, content)
}

func centered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
