package practice

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/meera/lingodrill/internal/bank"
	"github.com/meera/lingodrill/internal/practice"
	"github.com/meera/lingodrill/internal/router"
	"github.com/meera/lingodrill/internal/screen"
	"github.com/meera/lingodrill/internal/screens/results"
	"github.com/meera/lingodrill/internal/store"
	"github.com/meera/lingodrill/internal/ui/components"
	"github.com/meera/lingodrill/internal/ui/layout"
)

// Deps bundles the dependencies the screen needs to persist the outcome.
type Deps struct {
	Bank    bank.Bank
	Store   *store.Store
	Profile string
}

// PracticeScreen runs one test from first question to persisted outcome.
type PracticeScreen struct {
	deps  Deps
	state *practice.State
	mc    components.MultiChoice

	// outcome is compiled once on completion and reused across persistence
	// retries, so a retry writes exactly what the first attempt tried to.
	outcome *practice.Outcome

	quitConfirm bool
	timeUp      bool
	persisting  bool
	persistErr  string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates the execution screen over an already-started session.
func New(deps Deps, state *practice.State) *PracticeScreen {
	p := &PracticeScreen{
		deps:  deps,
		state: state,
	}
	p.loadQuestion()
	return p
}

// loadQuestion rebuilds the option selector for the current question.
func (p *PracticeScreen) loadQuestion() {
	q := p.state.CurrentQuestion()
	if q == nil {
		return
	}
	p.mc = components.NewMultiChoice(q.Options, q.CorrectIndex)
}

func (p *PracticeScreen) Init() tea.Cmd {
	if p.state.Config.TimeLimitEnabled {
		return tickCmd()
	}
	return nil
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return p.handleTick()

	case graceMsg:
		return p.handleGrace()

	case persistDoneMsg:
		return p.handlePersistDone(msg)

	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return p, nil
}

func (p *PracticeScreen) handleTick() (screen.Screen, tea.Cmd) {
	if p.state.Phase != practice.PhaseExecution || p.outcome != nil {
		return p, nil
	}
	if p.quitConfirm || p.timeUp {
		// Freeze the countdown under overlays; resume when dismissed.
		return p, tickCmd()
	}

	if practice.Tick(p.state) {
		p.timeUp = true
		p.mc.Locked = true
		return p, tea.Batch(tickCmd(), graceCmd())
	}
	return p, tickCmd()
}

// handleGrace advances past an expired question once the time-up notice has
// been on screen for the grace period.
func (p *PracticeScreen) handleGrace() (screen.Screen, tea.Cmd) {
	p.timeUp = false
	return p.advance()
}

// advance moves to the next question, or compiles and persists the outcome
// when the last question is done.
func (p *PracticeScreen) advance() (screen.Screen, tea.Cmd) {
	if practice.Advance(p.state) {
		return p, p.persistOutcome()
	}
	p.loadQuestion()
	return p, nil
}

// persistOutcome writes the ledger updates and the result record in one
// transaction. Only after the write lands does the session reach results.
func (p *PracticeScreen) persistOutcome() tea.Cmd {
	if p.outcome == nil {
		outcome := practice.Compile(p.state)
		p.outcome = &outcome
	}
	p.persisting = true
	p.persistErr = ""

	deps := p.deps
	outcome := p.outcome
	return func() tea.Msg {
		err := deps.Store.SaveOutcome(context.Background(), deps.Profile, outcome.Updates, outcome.Result)
		return persistDoneMsg{Err: err}
	}
}

func (p *PracticeScreen) handlePersistDone(msg persistDoneMsg) (screen.Screen, tea.Cmd) {
	p.persisting = false
	if msg.Err != nil {
		p.persistErr = msg.Err.Error()
		return p, nil
	}

	practice.MarkResults(p.state)
	state := p.state
	deps := p.deps
	return p, func() tea.Msg {
		return router.PushScreenMsg{
			Screen: results.New(results.Deps(deps), state),
		}
	}
}

func (p *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Persistence failed: retry or give up back to the home screen.
	if p.persistErr != "" {
		switch key {
		case "r":
			return p, p.persistOutcome()
		case "esc":
			return p, func() tea.Msg { return router.PopToRootMsg{} }
		}
		return p, nil
	}

	if p.persisting || p.timeUp {
		return p, nil
	}

	if p.quitConfirm {
		switch key {
		case "y", "Y":
			// Abandoned sessions leave no trace.
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			p.quitConfirm = false
		}
		return p, nil
	}

	if p.state.Phase != practice.PhaseExecution {
		return p, nil
	}

	switch key {
	case "esc":
		p.quitConfirm = true
		return p, nil

	case "d":
		if !p.state.FeedbackVisible {
			practice.ToggleDoubt(p.state)
			p.mc.DoubtPending = p.state.PendingDoubt
			return p, nil
		}
	}

	a := p.state.CurrentAnswer()
	answered := a != nil && a.Answered()

	if answered {
		// Waiting on the learner to move on (immediate feedback, or an
		// answered question in end mode).
		switch key {
		case "enter", " ", "space", "n", "right":
			return p.advance()
		}
		return p, nil
	}

	switch key {
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		return p.selectAnswer(idx)
	case "enter":
		return p.selectAnswer(p.mc.Selected)
	}

	var cmd tea.Cmd
	p.mc, cmd = p.mc.Update(msg)
	return p, cmd
}

// selectAnswer submits an option through the session state machine and
// mirrors the new state into the option selector.
func (p *PracticeScreen) selectAnswer(idx int) (screen.Screen, tea.Cmd) {
	q := p.state.CurrentQuestion()
	if q == nil || idx < 0 || idx >= len(q.Options) {
		return p, nil
	}

	practice.SelectAnswer(p.state, idx)

	a := p.state.CurrentAnswer()
	if a == nil || !a.Answered() {
		return p, nil
	}

	p.mc.Locked = true
	p.mc.ChosenIndex = a.SelectedIndex
	p.mc.DoubtPending = false

	if p.state.Config.Feedback == practice.FeedbackImmediate {
		p.mc.Revealed = true
		return p, nil
	}

	// End mode: no reveal, straight to the next question.
	return p.advance()
}

func (p *PracticeScreen) Title() string {
	return "Practice"
}

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	if p.persistErr != "" {
		return []layout.KeyHint{
			{Key: "R", Description: "Retry save"},
			{Key: "Esc", Description: "Abandon"},
		}
	}
	if p.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Quit test"},
			{Key: "N", Description: "Keep going"},
		}
	}

	a := p.state.CurrentAnswer()
	if a != nil && a.Answered() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "↑↓ Enter", Description: "Pick"},
		{Key: "D", Description: "Doubt"},
		{Key: "Esc", Description: "Quit"},
	}
}

// tickCmd schedules the next countdown tick.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// graceCmd schedules the advance past an expired question.
func graceCmd() tea.Cmd {
	return tea.Tick(practice.ExpiryGrace, func(time.Time) tea.Msg {
		return graceMsg{}
	})
}
