package model

import "time"

// SessionData is the cached form of a provider session.
type SessionData struct {
	Key       string    `json:"key"`
	Token     string    `json:"token"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
