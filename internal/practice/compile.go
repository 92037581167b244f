package practice

import (
	"time"

	"github.com/meera/lingodrill/internal/ledger"
)

// Result is the persisted record of one completed session. Append-only,
// written exactly once per completed session.
type Result struct {
	ID             string    `json:"id"`
	LessonID       string    `json:"lesson_id"`
	Config         Config    `json:"config"`
	QuestionIDs    []string  `json:"question_ids"`
	Answers        []Answer  `json:"answers"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	CompletedAt    time.Time `json:"completed_at"`
}

// Outcome bundles the result record with the ledger increments it implies.
// Both must be persisted together before the session may show results.
type Outcome struct {
	Result  Result
	Updates []ledger.Update
}

// Classify maps an answer to its ledger bucket. A skipped or never-answered
// question counts against the wrong bucket (so future wrong-mixture selection
// picks it up) even though its verdict stays unscored; doubt takes precedence
// over the recorded verdict.
func Classify(a Answer) ledger.Class {
	switch {
	case a.SelectedIndex == NoSelection:
		return ledger.ClassWrong
	case a.Doubt:
		return ledger.ClassDoubt
	case a.Verdict == VerdictCorrect:
		return ledger.ClassCorrect
	default:
		return ledger.ClassWrong
	}
}

// Compile classifies every question/answer pair and assembles the outcome.
// The state itself is not mutated; the phase advances only once the outcome
// is durably stored.
func Compile(s *State) Outcome {
	ids := make([]string, len(s.Questions))
	updates := make([]ledger.Update, len(s.Questions))
	answers := make([]Answer, len(s.Answers))
	copy(answers, s.Answers)

	for i, q := range s.Questions {
		ids[i] = q.ID
		updates[i] = ledger.Update{QuestionID: q.ID, Class: Classify(s.Answers[i])}
	}

	return Outcome{
		Result: Result{
			ID:             s.SessionID,
			LessonID:       s.LessonID,
			Config:         s.Config,
			QuestionIDs:    ids,
			Answers:        answers,
			Score:          s.Score(),
			TotalQuestions: len(s.Questions),
			CompletedAt:    time.Now(),
		},
		Updates: updates,
	}
}
