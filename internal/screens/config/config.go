package config

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/meera/lingodrill/internal/bank"
	"github.com/meera/lingodrill/internal/practice"
	"github.com/meera/lingodrill/internal/router"
	"github.com/meera/lingodrill/internal/screen"
	practicescreen "github.com/meera/lingodrill/internal/screens/practice"
	"github.com/meera/lingodrill/internal/selection"
	"github.com/meera/lingodrill/internal/store"
	"github.com/meera/lingodrill/internal/ui/components"
	"github.com/meera/lingodrill/internal/ui/layout"
)

// Deps bundles the dependencies forwarded to the practice screen.
type Deps struct {
	Bank    bank.Bank
	Store   *store.Store
	Profile string
}

// Form fields in focus order.
const (
	fieldCount = iota
	fieldScope
	fieldPrevious
	fieldMixture
	fieldTimeLimit
	fieldFeedback
	fieldStart
	fieldEnd // sentinel
)

// ConfigScreen is the test configuration form. It retains its values when the
// learner comes back via retry, so re-running a test is two keystrokes.
type ConfigScreen struct {
	deps     Deps
	lessonID string

	countInput    components.TextInput
	scopeSel      components.Selector
	mixtureSel    components.Selector
	timeLimitSel  components.Selector
	feedbackSel   components.Selector
	prevLessons   []bank.Lesson
	prevSelected  map[string]bool
	prevCursor    int
	focus         int

	errMsg   string
	starting bool
}

var _ screen.Screen = (*ConfigScreen)(nil)
var _ screen.KeyHintProvider = (*ConfigScreen)(nil)

// New creates the configuration form for one lesson.
func New(deps Deps, lessonID string) *ConfigScreen {
	def := practice.DefaultConfig()

	var prev []bank.Lesson
	if course, err := deps.Bank.Course(lessonID); err == nil {
		prev = course.PreviousLessons(lessonID)
	}

	c := &ConfigScreen{
		deps:         deps,
		lessonID:     lessonID,
		countInput:   components.NewTextInput("10", true, 2),
		scopeSel:     components.NewSelector([]string{string(selection.ScopeThisLesson), string(selection.ScopeIncludePrevious)}),
		timeLimitSel: components.NewSelector([]string{"off", "on"}),
		feedbackSel:  components.NewSelector([]string{string(practice.FeedbackImmediate), string(practice.FeedbackEnd)}),
		prevLessons:  prev,
		prevSelected: make(map[string]bool),
	}

	mixtures := make([]string, len(selection.Mixtures))
	for i, m := range selection.Mixtures {
		mixtures[i] = string(m)
	}
	c.mixtureSel = components.NewSelector(mixtures)

	c.applyConfig(def)
	return c
}

// applyConfig sets the form fields from a configuration.
func (c *ConfigScreen) applyConfig(cfg practice.Config) {
	c.countInput.SetValue(strconv.Itoa(cfg.QuestionCount))
	c.scopeSel = components.NewSelectorAt(c.scopeSel.Options, string(cfg.Scope))
	c.mixtureSel = components.NewSelectorAt(c.mixtureSel.Options, string(cfg.Mixture))
	if cfg.TimeLimitEnabled {
		c.timeLimitSel = components.NewSelectorAt(c.timeLimitSel.Options, "on")
	} else {
		c.timeLimitSel = components.NewSelectorAt(c.timeLimitSel.Options, "off")
	}
	c.feedbackSel = components.NewSelectorAt(c.feedbackSel.Options, string(cfg.Feedback))

	for k := range c.prevSelected {
		delete(c.prevSelected, k)
	}
	for _, id := range cfg.PreviousLessonIDs {
		for _, l := range c.prevLessons {
			if l.ID == id {
				c.prevSelected[id] = true
			}
		}
	}
}

// buildConfig assembles a Config from the current form values.
func (c *ConfigScreen) buildConfig() (practice.Config, error) {
	count, err := c.countInput.NumericValue()
	if err != nil {
		return practice.Config{}, &practice.ConfigError{
			Field:  "question count",
			Reason: "enter a number",
		}
	}

	cfg := practice.Config{
		QuestionCount:    count,
		Scope:            selection.Scope(c.scopeSel.Value()),
		Mixture:          selection.Mixture(c.mixtureSel.Value()),
		TimeLimitEnabled: c.timeLimitSel.Value() == "on",
		Feedback:         practice.FeedbackMode(c.feedbackSel.Value()),
	}
	if cfg.Scope == selection.ScopeIncludePrevious {
		for _, l := range c.prevLessons {
			if c.prevSelected[l.ID] {
				cfg.PreviousLessonIDs = append(cfg.PreviousLessonIDs, l.ID)
			}
		}
	}
	return cfg, nil
}

func (c *ConfigScreen) Init() tea.Cmd {
	return tea.Batch(c.loadSavedConfig(), c.countInput.Init())
}

// loadSavedConfig fetches the profile's last-used configuration.
func (c *ConfigScreen) loadSavedConfig() tea.Cmd {
	repo := c.deps.Store.Configs()
	profile := c.deps.Profile
	return func() tea.Msg {
		cfg, err := repo.LastConfig(context.Background(), profile)
		return configLoadedMsg{Config: cfg, Err: err}
	}
}

// startSession validates, samples, and persists the config as the new
// defaults. Config and selection failures come back in sessionStartedMsg and
// keep the learner on this screen.
func (c *ConfigScreen) startSession(cfg practice.Config) tea.Cmd {
	deps := c.deps
	lessonID := c.lessonID
	return func() tea.Msg {
		ctx := context.Background()

		records, err := deps.Store.Ledger().Ledger(ctx, deps.Profile)
		if err != nil {
			return sessionStartedMsg{Err: fmt.Errorf("load performance records: %w", err)}
		}

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		state, err := practice.Start(uuid.New().String(), lessonID, cfg, deps.Bank, records, rng)
		if err != nil {
			return sessionStartedMsg{Err: err}
		}

		// Save as the profile's defaults. A failure here is not worth
		// blocking the test over.
		_ = deps.Store.Configs().SaveConfig(ctx, deps.Profile, cfg)

		return sessionStartedMsg{State: state}
	}
}

func (c *ConfigScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case configLoadedMsg:
		if msg.Err == nil && msg.Config != nil {
			c.applyConfig(*msg.Config)
		}
		return c, nil

	case sessionStartedMsg:
		c.starting = false
		if msg.Err != nil {
			c.errMsg = startErrorMessage(msg.Err)
			return c, nil
		}
		c.errMsg = ""
		return c, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: practicescreen.New(practicescreen.Deps(c.deps), msg.State),
			}
		}

	case tea.KeyMsg:
		return c.handleKey(msg)
	}

	if c.focus == fieldCount {
		var cmd tea.Cmd
		c.countInput, cmd = c.countInput.Update(msg)
		return c, cmd
	}
	return c, nil
}

func (c *ConfigScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if c.starting {
		return c, nil
	}

	switch msg.String() {
	case "esc":
		return c, func() tea.Msg { return router.PopScreenMsg{} }

	case "up", "shift+tab":
		c.moveFocus(-1)
		return c, nil

	case "down", "tab":
		c.moveFocus(1)
		return c, nil

	case "left":
		c.cycle(-1)
		return c, nil

	case "right":
		c.cycle(1)
		return c, nil

	case " ", "space":
		if c.focus == fieldPrevious {
			c.togglePrevious()
			return c, nil
		}

	case "enter":
		if c.focus == fieldPrevious {
			c.togglePrevious()
			return c, nil
		}
		return c.submit()
	}

	if c.focus == fieldCount {
		var cmd tea.Cmd
		c.countInput, cmd = c.countInput.Update(msg)
		return c, cmd
	}
	return c, nil
}

func (c *ConfigScreen) submit() (screen.Screen, tea.Cmd) {
	cfg, err := c.buildConfig()
	if err != nil {
		c.errMsg = startErrorMessage(err)
		return c, nil
	}
	if err := cfg.Validate(); err != nil {
		c.errMsg = startErrorMessage(err)
		return c, nil
	}
	c.errMsg = ""
	c.starting = true
	return c, c.startSession(cfg)
}

// moveFocus shifts focus by delta, skipping the previous-lessons field when it
// is not applicable.
func (c *ConfigScreen) moveFocus(delta int) {
	for {
		c.focus += delta
		if c.focus < fieldCount {
			c.focus = fieldStart
		}
		if c.focus >= fieldEnd {
			c.focus = fieldCount
		}
		if c.focus == fieldPrevious && !c.previousApplicable() {
			continue
		}
		return
	}
}

// previousApplicable reports whether the previous-lessons field is active.
func (c *ConfigScreen) previousApplicable() bool {
	return c.scopeSel.Value() == string(selection.ScopeIncludePrevious) && len(c.prevLessons) > 0
}

// cycle adjusts the focused field left or right.
func (c *ConfigScreen) cycle(delta int) {
	step := func(s *components.Selector) {
		if delta > 0 {
			s.Next()
		} else {
			s.Prev()
		}
	}
	switch c.focus {
	case fieldScope:
		step(&c.scopeSel)
	case fieldPrevious:
		c.prevCursor += delta
		if c.prevCursor < 0 {
			c.prevCursor = len(c.prevLessons) - 1
		}
		if c.prevCursor >= len(c.prevLessons) {
			c.prevCursor = 0
		}
	case fieldMixture:
		step(&c.mixtureSel)
	case fieldTimeLimit:
		step(&c.timeLimitSel)
	case fieldFeedback:
		step(&c.feedbackSel)
	}
}

func (c *ConfigScreen) togglePrevious() {
	if c.prevCursor < 0 || c.prevCursor >= len(c.prevLessons) {
		return
	}
	id := c.prevLessons[c.prevCursor].ID
	c.prevSelected[id] = !c.prevSelected[id]
}

func (c *ConfigScreen) Title() string {
	return "Configure Test"
}

func (c *ConfigScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Field"},
		{Key: "←→", Description: "Change"},
	}
	if c.focus == fieldPrevious {
		hints = append(hints, layout.KeyHint{Key: "Space", Description: "Toggle"})
	}
	hints = append(hints,
		layout.KeyHint{Key: "Enter", Description: "Start"},
		layout.KeyHint{Key: "Esc", Description: "Back"},
	)
	return hints
}

// startErrorMessage renders a start failure for the form. Empty-pool errors
// get a loosen-the-filter suggestion; config errors show as-is.
func startErrorMessage(err error) string {
	if errors.Is(err, selection.ErrNoQuestions) {
		return "No questions match the current filter. Try mixture \"all\" or widen the scope."
	}
	var cfgErr *practice.ConfigError
	if errors.As(err, &cfgErr) {
		return cfgErr.Error()
	}
	return err.Error()
}
