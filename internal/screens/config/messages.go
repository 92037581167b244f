package config

import "github.com/meera/lingodrill/internal/practice"

// configLoadedMsg carries the profile's saved defaults, nil when none exist.
type configLoadedMsg struct {
	Config *practice.Config
	Err    error
}

// sessionStartedMsg is sent when the session draw finished.
type sessionStartedMsg struct {
	State *practice.State
	Err   error
}
