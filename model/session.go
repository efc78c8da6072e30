package model

import (
	"time"
)

// Session is the credential handed out by a successful login, it is never refreshed
type Session struct {
	UserID      string
	BearerToken string
	// ExpiresAt is read from the token's exp claim, zero when the token does not carry one
	ExpiresAt time.Time
}

// AuthorizationHeader is the value of the Authorization header on authenticated requests
func (s Session) AuthorizationHeader() string {
	return "Bearer " + s.BearerToken
}

// IsExpired returns true if the token advertised an expiry that has passed
func (s Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
