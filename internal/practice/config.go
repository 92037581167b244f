package practice

import (
	"fmt"

	"github.com/meera/lingodrill/internal/selection"
)

// Question count bounds for a practice test.
const (
	MinQuestionCount = 1
	MaxQuestionCount = 50
)

// FeedbackMode controls when answer feedback becomes visible.
type FeedbackMode string

const (
	FeedbackImmediate FeedbackMode = "immediate"
	FeedbackEnd       FeedbackMode = "end"
)

// Config is the learner-supplied test configuration. It is validated before
// a session is created and persisted as the profile's "last used" defaults.
type Config struct {
	QuestionCount     int                `json:"question_count"`
	Scope             selection.Scope    `json:"scope"`
	PreviousLessonIDs []string           `json:"previous_lesson_ids,omitempty"`
	Mixture           selection.Mixture  `json:"mixture"`
	TimeLimitEnabled  bool               `json:"time_limit_enabled"`
	Feedback          FeedbackMode       `json:"feedback"`
}

// DefaultConfig returns the configuration used when a profile has no saved
// defaults yet.
func DefaultConfig() Config {
	return Config{
		QuestionCount:    10,
		Scope:            selection.ScopeThisLesson,
		Mixture:          selection.MixtureAll,
		TimeLimitEnabled: false,
		Feedback:         FeedbackImmediate,
	}
}

// ConfigError describes why a configuration was rejected. The session is not
// created and the caller stays in the configuration phase.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Reason)
}

// Validate checks the configuration bounds and cross-field rules.
func (c Config) Validate() error {
	if c.QuestionCount < MinQuestionCount || c.QuestionCount > MaxQuestionCount {
		return &ConfigError{
			Field:  "question count",
			Reason: fmt.Sprintf("must be between %d and %d", MinQuestionCount, MaxQuestionCount),
		}
	}

	switch c.Scope {
	case selection.ScopeThisLesson, selection.ScopeIncludePrevious:
	default:
		return &ConfigError{Field: "scope", Reason: fmt.Sprintf("unknown scope %q", c.Scope)}
	}

	if c.Scope == selection.ScopeIncludePrevious && len(c.PreviousLessonIDs) == 0 {
		return &ConfigError{
			Field:  "previous lessons",
			Reason: "select at least one previous lesson, or switch scope to this lesson only",
		}
	}

	valid := false
	for _, m := range selection.Mixtures {
		if c.Mixture == m {
			valid = true
			break
		}
	}
	if !valid {
		return &ConfigError{Field: "mixture", Reason: fmt.Sprintf("unknown mixture %q", c.Mixture)}
	}

	switch c.Feedback {
	case FeedbackImmediate, FeedbackEnd:
	default:
		return &ConfigError{Field: "feedback", Reason: fmt.Sprintf("unknown feedback mode %q", c.Feedback)}
	}

	return nil
}
