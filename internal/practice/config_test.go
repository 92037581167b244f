package practice

import (
	"errors"
	"testing"

	"github.com/meera/lingodrill/internal/selection"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	base := DefaultConfig()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		field   string
	}{
		{"valid", func(c *Config) {}, false, ""},
		{"count at min", func(c *Config) { c.QuestionCount = MinQuestionCount }, false, ""},
		{"count at max", func(c *Config) { c.QuestionCount = MaxQuestionCount }, false, ""},
		{"count zero", func(c *Config) { c.QuestionCount = 0 }, true, "question count"},
		{"count over max", func(c *Config) { c.QuestionCount = MaxQuestionCount + 1 }, true, "question count"},
		{"count negative", func(c *Config) { c.QuestionCount = -3 }, true, "question count"},
		{"bad scope", func(c *Config) { c.Scope = "everything" }, true, "scope"},
		{
			"include-previous without lessons",
			func(c *Config) { c.Scope = selection.ScopeIncludePrevious },
			true, "previous lessons",
		},
		{
			"include-previous with lessons",
			func(c *Config) {
				c.Scope = selection.ScopeIncludePrevious
				c.PreviousLessonIDs = []string{"l0"}
			},
			false, "",
		},
		{"bad mixture", func(c *Config) { c.Mixture = "hardest" }, true, "mixture"},
		{"bad feedback", func(c *Config) { c.Feedback = "delayed" }, true, "feedback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate()

			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}

			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Validate() = %v, want *ConfigError", err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("Field = %q, want %q", cfgErr.Field, tt.field)
			}
		})
	}
}
