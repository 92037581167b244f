package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/meera/lingodrill/internal/bank"
	"github.com/meera/lingodrill/internal/practice"
	"github.com/meera/lingodrill/internal/router"
	"github.com/meera/lingodrill/internal/screen"
	"github.com/meera/lingodrill/internal/store"
	"github.com/meera/lingodrill/internal/ui/theme"
)

// historyLimit caps how many past tests the screen loads.
const historyLimit = 20

// Deps bundles what the screen needs to load and label past results.
type Deps struct {
	Bank    bank.Bank
	Store   *store.Store
	Profile string
}

// resultsLoadedMsg carries the profile's past results.
type resultsLoadedMsg struct {
	Results []practice.Result
	Err     error
}

// HistoryScreen lists the profile's most recent completed tests.
type HistoryScreen struct {
	deps    Deps
	results []practice.Result
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*HistoryScreen)(nil)

// New creates the history screen.
func New(deps Deps) *HistoryScreen {
	return &HistoryScreen{deps: deps}
}

func (h *HistoryScreen) Init() tea.Cmd {
	repo := h.deps.Store.Results()
	profile := h.deps.Profile
	return func() tea.Msg {
		results, err := repo.List(context.Background(), profile, historyLimit)
		return resultsLoadedMsg{Results: results, Err: err}
	}
}

func (h *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultsLoadedMsg:
		h.loaded = true
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
			return h, nil
		}
		h.results = msg.Results
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return h, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return h, nil
}

func (h *HistoryScreen) View(width, height int) string {
	var content string

	switch {
	case h.errMsg != "":
		content = theme.Incorrect.Render("Could not load history") + "\n\n" + theme.Hint.Render(h.errMsg)
	case !h.loaded:
		content = theme.Hint.Render("loading...")
	case len(h.results) == 0:
		content = theme.Hint.Render("No tests yet. Take one from the home screen!")
	default:
		content = h.renderList()
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HistoryScreen) renderList() string {
	rows := []string{
		theme.Title.Render("Recent tests"),
		"",
	}

	for _, r := range h.results {
		title := r.LessonID
		if lesson, err := h.deps.Bank.Lesson(r.LessonID); err == nil {
			title = lesson.Title
		}

		score := fmt.Sprintf("%d/%d", r.Score, r.TotalQuestions)
		when := r.CompletedAt.Local().Format("Jan 02 15:04")

		line := fmt.Sprintf("%-14s  %-28s  %s  %s",
			when, title, scoreStyle(r.Score, r.TotalQuestions).Render(score),
			theme.Hint.Render(string(r.Config.Mixture)))
		rows = append(rows, line)
	}

	return theme.Body.Render(strings.Join(rows, "\n"))
}

// scoreStyle colors a score by how well it went.
func scoreStyle(score, total int) lipgloss.Style {
	if total == 0 {
		return theme.Unselected
	}
	switch {
	case score*10 >= total*8:
		return theme.Correct
	case score*10 >= total*5:
		return theme.Doubtful
	default:
		return theme.Incorrect
	}
}

func (h *HistoryScreen) Title() string {
	return "History"
}
