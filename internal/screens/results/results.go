package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/meera/lingodrill/internal/bank"
	"github.com/meera/lingodrill/internal/practice"
	"github.com/meera/lingodrill/internal/router"
	"github.com/meera/lingodrill/internal/screen"
	"github.com/meera/lingodrill/internal/store"
	"github.com/meera/lingodrill/internal/ui/components"
	"github.com/meera/lingodrill/internal/ui/layout"
	"github.com/meera/lingodrill/internal/ui/theme"
)

// Deps is carried for shape compatibility with the other screens.
type Deps struct {
	Bank    bank.Bank
	Store   *store.Store
	Profile string
}

// ResultsScreen shows the outcome of a persisted session.
type ResultsScreen struct {
	deps  Deps
	state *practice.State
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the results view over a completed session.
func New(deps Deps, state *practice.State) *ResultsScreen {
	return &ResultsScreen{deps: deps, state: state}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "r":
		// Back past the practice screen to the configuration form, which
		// still holds the values this test ran with.
		return r, func() tea.Msg { return router.PopScreensMsg{Count: 2} }
	case "esc", "h", "q":
		return r, func() tea.Msg { return router.PopToRootMsg{} }
	}
	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	s := r.state

	score := s.Score()
	total := s.Total()

	var rows []string
	rows = append(rows, theme.Title.Render("Test complete"))
	rows = append(rows, "")
	rows = append(rows, theme.Body.Bold(true).Render(fmt.Sprintf("Score: %d / %d", score, total)))

	pct := 0.0
	if total > 0 {
		pct = float64(score) / float64(total)
	}
	bar := components.NewProgressBar("", pct, true, 44)
	rows = append(rows, bar.View())
	rows = append(rows, "")

	rows = append(rows, r.renderBreakdown())

	content := strings.Join(rows, "\n")
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// renderBreakdown lists every question with its outcome glyph.
func (r *ResultsScreen) renderBreakdown() string {
	var rows []string
	for i, q := range r.state.Questions {
		a := r.state.Answers[i]

		var glyph string
		switch {
		case a.Skipped:
			glyph = theme.Hint.Render("○ skipped")
		case a.Doubt:
			glyph = theme.Doubtful.Render("? doubt")
		case a.Verdict == practice.VerdictCorrect:
			glyph = theme.Correct.Render("✓ correct")
		default:
			glyph = theme.Incorrect.Render("✗ wrong")
		}

		text := q.Text
		if len(text) > 48 {
			text = text[:45] + "..."
		}
		rows = append(rows, fmt.Sprintf("%2d. %-50s %s", i+1, text, glyph))
	}
	return theme.Body.Render(strings.Join(rows, "\n"))
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Retry"},
		{Key: "Esc", Description: "Home"},
	}
}
