package models

import (
	"time"
)

// OTPRecord is the stored one-time passcode for an email address.
// At most one live record exists per email; a new issuance overwrites it.
type OTPRecord struct {
	Email     string    `json:"email" bson:"email"`
	Code      string    `json:"code" bson:"code"`
	IssuedAt  time.Time `json:"issuedAt" bson:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt" bson:"expiresAt"`
}

// Expired reports whether the record is past its validity window.
func (r *OTPRecord) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}
