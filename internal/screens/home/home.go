package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/meera/lingodrill/internal/bank"
	"github.com/meera/lingodrill/internal/router"
	"github.com/meera/lingodrill/internal/screen"
	"github.com/meera/lingodrill/internal/screens/history"
	"github.com/meera/lingodrill/internal/screens/lessons"
	"github.com/meera/lingodrill/internal/store"
	"github.com/meera/lingodrill/internal/ui/components"
	"github.com/meera/lingodrill/internal/ui/theme"
)

// Deps bundles the dependencies the home screen passes down the stack.
type Deps struct {
	Bank    bank.Bank
	Store   *store.Store
	Profile string
}

// HomeScreen is the main menu.
type HomeScreen struct {
	deps        Deps
	menu        components.Menu
	courseCount int
	lessonCount int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen.
func New(deps Deps) *HomeScreen {
	courses := deps.Bank.Courses()
	lessonCount := 0
	for _, c := range courses {
		lessonCount += len(c.Lessons)
	}

	items := []components.MenuItem{
		{Label: "PRACTICE", Detail: "take a practice test", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: lessons.New(lessons.Deps(deps))}
			}
		}},
		{Label: "HISTORY", Detail: "review past tests", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(history.Deps(deps))}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		deps:        deps,
		menu:        components.NewMenu(items),
		courseCount: len(courses),
		lessonCount: lessonCount,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Render("L I N G O D R I L L")
	subtitle := theme.Subtitle.Render("adaptive practice tests for language learners")

	stats := theme.Hint.Render(
		plural(h.courseCount, "course") + " · " + plural(h.lessonCount, "lesson"),
	)

	content := strings.Join([]string{
		title,
		subtitle,
		"",
		stats,
		"",
		h.menu.View(),
	}, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
