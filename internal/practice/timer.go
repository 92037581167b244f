package practice

import "time"

// QuestionSeconds is the fixed per-question countdown. Not user-editable.
const QuestionSeconds = 30

// ExpiryGrace is how long the time-up notice stays on screen before the
// session force-advances past an expired question.
const ExpiryGrace = 1500 * time.Millisecond

// warningFraction marks the final stretch of the countdown (last ~20%) as a
// warning state for the caller to render differently.
const warningFraction = 5

// Timer is the per-question countdown. It consumes explicit ticks and fires
// expiry at most once per question; Reset re-arms it for the next question.
type Timer struct {
	Duration  int // seconds
	Remaining int // seconds
	Expired   bool
}

// NewTimer returns a timer armed with the standard question duration.
func NewTimer() Timer {
	return Timer{Duration: QuestionSeconds, Remaining: QuestionSeconds}
}

// Tick counts down one second. Returns true on the tick that reaches zero;
// never true again until Reset.
func (t *Timer) Tick() bool {
	if t.Expired || t.Remaining <= 0 {
		return false
	}
	t.Remaining--
	if t.Remaining <= 0 {
		t.Expired = true
		return true
	}
	return false
}

// Reset re-arms the timer for a fresh question.
func (t *Timer) Reset() {
	t.Remaining = t.Duration
	t.Expired = false
}

// Warning reports whether the countdown is in its final stretch.
func (t *Timer) Warning() bool {
	return !t.Expired && t.Remaining > 0 && t.Remaining*warningFraction <= t.Duration
}
