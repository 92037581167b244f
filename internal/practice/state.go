package practice

import (
	"time"

	"github.com/meera/lingodrill/internal/bank"
)

// Phase is the session lifecycle phase.
type Phase int

const (
	PhaseConfig    Phase = iota // configuring the next test
	PhaseExecution              // answering questions
	PhaseResults                // outcome persisted, reviewing results
)

// NoSelection marks a question without a recorded answer index.
const NoSelection = -1

// Verdict is the scoring classification of one answer. Skipped and doubted
// answers stay VerdictNone: they count as attempts but score neither correct
// nor wrong.
type Verdict int

const (
	VerdictNone Verdict = iota
	VerdictCorrect
	VerdictWrong
)

// Answer is the learner's response to one sampled question. Mutable only
// during execution; frozen once the session reaches results.
type Answer struct {
	SelectedIndex int     `json:"selected_index"`
	Verdict       Verdict `json:"verdict"`
	Doubt         bool    `json:"doubt"`
	Skipped       bool    `json:"skipped"`
}

// Answered reports whether this question has reached a terminal state:
// either an option was chosen or the timer skipped it.
func (a Answer) Answered() bool {
	return a.SelectedIndex != NoSelection || a.Skipped
}

// State is the full runtime state of one practice session. Created on
// successful configuration submit; discarded on retry or exit; never
// partially persisted mid-session.
type State struct {
	SessionID string
	LessonID  string
	Config    Config

	// Questions is the sampled order, immutable once drawn.
	Questions []bank.Question

	// Answers parallels Questions.
	Answers []Answer

	// Current is the index of the question being served.
	Current int

	Phase Phase

	// PendingDoubt applies to the next answer only and resets on consumption
	// or advance.
	PendingDoubt bool

	// FeedbackVisible is true once the current answer's feedback is shown
	// (immediate mode only).
	FeedbackVisible bool

	// Timer is the per-question countdown (used when the time limit is on).
	Timer Timer

	StartTime time.Time
}

// NewState creates an execution-phase session over the sampled questions.
func NewState(sessionID, lessonID string, cfg Config, questions []bank.Question) *State {
	answers := make([]Answer, len(questions))
	for i := range answers {
		answers[i].SelectedIndex = NoSelection
	}
	return &State{
		SessionID: sessionID,
		LessonID:  lessonID,
		Config:    cfg,
		Questions: questions,
		Answers:   answers,
		Phase:     PhaseExecution,
		Timer:     NewTimer(),
		StartTime: time.Now(),
	}
}

// CurrentQuestion returns the question being served, or nil outside execution.
func (s *State) CurrentQuestion() *bank.Question {
	if s.Current < 0 || s.Current >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.Current]
}

// CurrentAnswer returns the answer slot for the current question.
func (s *State) CurrentAnswer() *Answer {
	if s.Current < 0 || s.Current >= len(s.Answers) {
		return nil
	}
	return &s.Answers[s.Current]
}

// Score counts answers scored correct.
func (s *State) Score() int {
	n := 0
	for _, a := range s.Answers {
		if a.Verdict == VerdictCorrect {
			n++
		}
	}
	return n
}

// AnsweredCount counts questions in a terminal state.
func (s *State) AnsweredCount() int {
	n := 0
	for _, a := range s.Answers {
		if a.Answered() {
			n++
		}
	}
	return n
}

// Total returns the number of sampled questions.
func (s *State) Total() int {
	return len(s.Questions)
}
