package entities

import "time"

const (
	// OtpTTL is the logical validity window of a challenge
	OtpTTL = 5 * time.Minute
	// OtpAttemptCeiling permanently invalidates a challenge once reached
	OtpAttemptCeiling = 5
	// OtpRetention is how long a spent or expired challenge stays
	// readable so lookups can still distinguish expired from unknown
	OtpRetention = 24 * time.Hour
)

// OtpChallenge represents one outstanding verification attempt, staged
// locally with its own expiry and attempt policy independent of the
// upstream provider.
type OtpChallenge struct {
	Handle    string    `json:"handle"`
	Phone     string    `json:"phone"`
	Payload   []byte    `json:"payload,omitempty"`
	Used      bool      `json:"used"`
	Attempts  int       `json:"attempts"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the logical validity window has elapsed
func (c *OtpChallenge) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// AttemptsExceeded reports whether the attempt ceiling has been reached
func (c *OtpChallenge) AttemptsExceeded() bool {
	return c.Attempts >= OtpAttemptCeiling
}
