// Package practice owns the practice-test session lifecycle: configuration
// validation, the execution state machine with its per-question countdown,
// and result compilation feeding the performance ledger.
package practice

import (
	"math/rand"

	"github.com/meera/lingodrill/internal/bank"
	"github.com/meera/lingodrill/internal/ledger"
	"github.com/meera/lingodrill/internal/selection"
)

// Start validates cfg, draws the question sample, and creates an
// execution-phase session. On *ConfigError or selection.ErrNoQuestions no
// session is created and the caller stays in configuration.
func Start(sessionID, lessonID string, cfg Config, b bank.Bank, records ledger.Map, rng *rand.Rand) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pool, err := selection.Pool(b, lessonID, cfg.Scope, cfg.PreviousLessonIDs)
	if err != nil {
		return nil, err
	}

	sampled, err := selection.Sample(pool, records, cfg.Mixture, cfg.QuestionCount, rng)
	if err != nil {
		return nil, err
	}

	return NewState(sessionID, lessonID, cfg, sampled), nil
}

// SelectAnswer records the learner's choice for the current question. At most
// one answer per question per session: repeat calls are silent no-ops, as is
// selecting on a question the timer already skipped. A pending doubt flag
// forces the verdict to none regardless of raw correctness, and is consumed.
func SelectAnswer(s *State, index int) {
	if s.Phase != PhaseExecution {
		return
	}
	q := s.CurrentQuestion()
	a := s.CurrentAnswer()
	if q == nil || a == nil || a.Answered() {
		return
	}
	if index < 0 || index >= len(q.Options) {
		return
	}

	a.SelectedIndex = index
	switch {
	case s.PendingDoubt:
		a.Doubt = true
		a.Verdict = VerdictNone
	case index == q.CorrectIndex:
		a.Verdict = VerdictCorrect
	default:
		a.Verdict = VerdictWrong
	}
	s.PendingDoubt = false

	if s.Config.Feedback == FeedbackImmediate {
		s.FeedbackVisible = true
	}
}

// ToggleDoubt flips the doubt flag for the upcoming answer. Permitted only
// before the current question is answered; a no-op afterward.
func ToggleDoubt(s *State) {
	if s.Phase != PhaseExecution {
		return
	}
	a := s.CurrentAnswer()
	if a == nil || a.Answered() {
		return
	}
	s.PendingDoubt = !s.PendingDoubt
}

// Advance moves to the next question, resetting the doubt flag, feedback
// visibility, and the countdown. On the last question it returns true:
// the session is complete and ready for result compilation. The phase moves
// to results only after the outcome is persisted (see MarkResults).
func Advance(s *State) bool {
	if s.Phase != PhaseExecution {
		return false
	}
	if s.Current >= len(s.Questions)-1 {
		return true
	}
	s.Current++
	s.PendingDoubt = false
	s.FeedbackVisible = false
	s.Timer.Reset()
	return false
}

// TimeExpire handles the countdown reaching zero. An unanswered question is
// recorded as skipped: a distinct, intentional terminal state, not an error.
// The caller schedules Advance after ExpiryGrace.
func TimeExpire(s *State) {
	if s.Phase != PhaseExecution || !s.Config.TimeLimitEnabled {
		return
	}
	a := s.CurrentAnswer()
	if a == nil || a.Answered() {
		return
	}
	a.Skipped = true
	a.SelectedIndex = NoSelection
	a.Verdict = VerdictNone
	a.Doubt = false
	s.PendingDoubt = false
}

// TimerSuspended reports whether the countdown is paused. The timer is
// suspended exactly when the current question is answered and feedback mode
// is immediate, so a learner reviewing an explanation is not rushed.
func TimerSuspended(s *State) bool {
	a := s.CurrentAnswer()
	return a != nil && a.Answered() && s.Config.Feedback == FeedbackImmediate
}

// Tick consumes one countdown tick. Ignored when the time limit is off, the
// session is not executing, or the timer is suspended. Returns true on the
// tick that expires the current question, after the skip has been recorded.
func Tick(s *State) bool {
	if s.Phase != PhaseExecution || !s.Config.TimeLimitEnabled {
		return false
	}
	if TimerSuspended(s) {
		return false
	}
	if !s.Timer.Tick() {
		return false
	}
	TimeExpire(s)
	return true
}

// MarkResults transitions the session to the results phase. Call only after
// the ledger updates and result record have been persisted: on persistence
// failure the session must stay in execution so the write can be retried.
func MarkResults(s *State) {
	s.Phase = PhaseResults
}
