package practice

import "time"

// tickMsg drives the per-question countdown, one per second.
type tickMsg time.Time

// graceMsg fires after the time-up notice has been shown long enough to read.
type graceMsg struct{}

// persistDoneMsg reports the outcome write. On error the session stays in
// execution so the write can be retried.
type persistDoneMsg struct {
	Err error
}
