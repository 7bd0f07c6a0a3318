package models

// SessionConfig holds the agency credentials a gateway authenticates with.
// Each gateway owns its own copy.
type SessionConfig struct {
	AgencyCode string
	Username   string
	Password   string
	SystemCode string
	Language   string
	Currency   string
}

// SessionKey identifies a persisted session token.
func (c SessionConfig) SessionKey() string {
	return c.AgencyCode + ":" + c.Username + ":" + c.Language
}
