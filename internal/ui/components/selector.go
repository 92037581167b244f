package components

import (
	"charm.land/lipgloss/v2"

	"github.com/meera/lingodrill/internal/ui/theme"
)

// Selector is a horizontal option cycler used for enum-valued form fields.
type Selector struct {
	Options []string
	Index   int
}

// NewSelector creates a selector over the given options.
func NewSelector(options []string) Selector {
	return Selector{Options: options}
}

// NewSelectorAt creates a selector with value preselected when present.
func NewSelectorAt(options []string, value string) Selector {
	s := Selector{Options: options}
	for i, o := range options {
		if o == value {
			s.Index = i
			break
		}
	}
	return s
}

// Next cycles forward.
func (s *Selector) Next() {
	if len(s.Options) == 0 {
		return
	}
	s.Index = (s.Index + 1) % len(s.Options)
}

// Prev cycles backward.
func (s *Selector) Prev() {
	if len(s.Options) == 0 {
		return
	}
	s.Index = (s.Index - 1 + len(s.Options)) % len(s.Options)
}

// Value returns the current option.
func (s Selector) Value() string {
	if s.Index < 0 || s.Index >= len(s.Options) {
		return ""
	}
	return s.Options[s.Index]
}

// View renders the selector, highlighted when focused.
func (s Selector) View(focused bool) string {
	style := lipgloss.NewStyle().Foreground(theme.Text)
	if focused {
		style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}
	return style.Render("◂ " + s.Value() + " ▸")
}
