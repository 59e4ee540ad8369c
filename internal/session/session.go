// Package session models the authenticated session the layout shell keys off.
// Absence of a session is represented explicitly (nil pointer, ok=false)
// rather than by an empty token checked ad hoc at render time.
package session

import "drdash/internal/config"

// Session is an authenticated backend session.
type Session struct {
	Token string
}

// FromConfig derives the session from configuration. ok is false when no
// token is configured; callers render the unauthenticated shell in that case.
func FromConfig(cfg config.Config) (*Session, bool) {
	if cfg.APIToken == "" {
		return nil, false
	}
	return &Session{Token: cfg.APIToken}, true
}
