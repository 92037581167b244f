package lessons

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/meera/lingodrill/internal/bank"
	"github.com/meera/lingodrill/internal/router"
	"github.com/meera/lingodrill/internal/screen"
	"github.com/meera/lingodrill/internal/screens/config"
	"github.com/meera/lingodrill/internal/store"
	"github.com/meera/lingodrill/internal/ui/components"
	"github.com/meera/lingodrill/internal/ui/theme"
)

// Deps bundles the dependencies forwarded to the configuration screen.
type Deps struct {
	Bank    bank.Bank
	Store   *store.Store
	Profile string
}

// LessonsScreen lets the learner pick the lesson to practice.
type LessonsScreen struct {
	deps Deps
	menu components.Menu
}

var _ screen.Screen = (*LessonsScreen)(nil)

// New creates the lesson picker over every course in the bank.
func New(deps Deps) *LessonsScreen {
	var items []components.MenuItem
	for _, course := range deps.Bank.Courses() {
		courseTitle := course.Title
		for _, lesson := range course.Lessons {
			lessonID := lesson.ID
			detail := fmt.Sprintf("%s · %d questions", courseTitle, len(lesson.Questions))
			items = append(items, components.MenuItem{
				Label:  lesson.Title,
				Detail: detail,
				Action: func() tea.Cmd {
					return func() tea.Msg {
						return router.PushScreenMsg{
							Screen: config.New(config.Deps(deps), lessonID),
						}
					}
				},
			})
		}
	}

	return &LessonsScreen{
		deps: deps,
		menu: components.NewMenu(items),
	}
}

func (l *LessonsScreen) Init() tea.Cmd {
	return nil
}

func (l *LessonsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return l, func() tea.Msg { return router.PopScreenMsg{} }
	}

	var cmd tea.Cmd
	l.menu, cmd = l.menu.Update(msg)
	return l, cmd
}

func (l *LessonsScreen) View(width, height int) string {
	if len(l.menu.Items) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(theme.Hint.Render("No lessons loaded. Check your content directory."))
	}

	heading := theme.Title.Render("Choose a lesson")

	content := heading + "\n\n" + l.menu.View()

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (l *LessonsScreen) Title() string {
	return "Lessons"
}
