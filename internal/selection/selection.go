// Package selection draws the question sample for a practice test from the
// candidate pool, filtered by the learner's past performance.
package selection

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/meera/lingodrill/internal/bank"
	"github.com/meera/lingodrill/internal/ledger"
)

// Scope controls which lessons contribute candidate questions.
type Scope string

const (
	ScopeThisLesson      Scope = "this-lesson"
	ScopeIncludePrevious Scope = "include-previous"
)

// Mixture selects which questions are eligible based on past performance.
type Mixture string

const (
	MixtureAll         Mixture = "all"
	MixtureWrong       Mixture = "wrong"
	MixtureNonAnswered Mixture = "non-answered"
	MixtureDoubtful    Mixture = "doubtful"
	MixtureCombined    Mixture = "combined"
)

// Mixtures lists all mixtures in display order.
var Mixtures = []Mixture{MixtureAll, MixtureWrong, MixtureNonAnswered, MixtureDoubtful, MixtureCombined}

// ErrNoQuestions is returned when the filtered pool is empty. Callers should
// stay in configuration and suggest loosening the mixture filter.
var ErrNoQuestions = errors.New("no questions match the current filter")

// Eligible reports whether a question with the given performance record
// passes the mixture filter.
func Eligible(m Mixture, r ledger.Record) bool {
	switch m {
	case MixtureAll:
		return true
	case MixtureWrong:
		return r.Wrong > 0
	case MixtureNonAnswered:
		return r.TotalAttempts == 0
	case MixtureDoubtful:
		return r.Doubt > 0
	case MixtureCombined:
		return r.Wrong > 0 || r.Doubt > 0 || r.TotalAttempts == 0
	}
	return false
}

// Pool builds the candidate pool: the current lesson's questions, unioned
// with every selected previous lesson when scope is include-previous.
// Duplicate question IDs across lessons are kept once.
func Pool(b bank.Bank, lessonID string, scope Scope, previousLessonIDs []string) ([]bank.Question, error) {
	questions, err := b.Questions(lessonID)
	if err != nil {
		return nil, fmt.Errorf("load lesson %s: %w", lessonID, err)
	}

	pool := make([]bank.Question, 0, len(questions))
	seen := make(map[string]bool, len(questions))
	add := func(qs []bank.Question) {
		for _, q := range qs {
			if seen[q.ID] {
				continue
			}
			seen[q.ID] = true
			pool = append(pool, q)
		}
	}
	add(questions)

	if scope == ScopeIncludePrevious {
		for _, id := range previousLessonIDs {
			qs, err := b.Questions(id)
			if err != nil {
				return nil, fmt.Errorf("load previous lesson %s: %w", id, err)
			}
			add(qs)
		}
	}

	return pool, nil
}

// Sample filters pool by mixture, shuffles uniformly with rng, and truncates
// to count. It never repeats a question and never pads: when count exceeds
// the filtered pool the whole filtered pool is returned. An empty filtered
// pool yields ErrNoQuestions.
func Sample(pool []bank.Question, records ledger.Map, m Mixture, count int, rng *rand.Rand) ([]bank.Question, error) {
	filtered := make([]bank.Question, 0, len(pool))
	for _, q := range pool {
		if Eligible(m, records[q.ID]) {
			filtered = append(filtered, q)
		}
	}
	if len(filtered) == 0 {
		return nil, ErrNoQuestions
	}

	rng.Shuffle(len(filtered), func(i, j int) {
		filtered[i], filtered[j] = filtered[j], filtered[i]
	})

	if count < len(filtered) {
		filtered = filtered[:count]
	}
	return filtered, nil
}
