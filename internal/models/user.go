package models

import "time"

// User represents a registered account. Emails are stored and compared
// verbatim, so lookups are case-sensitive.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"fullName"`
	PasswordHash string    `json:"-"` // Never expose this to the client
	CreatedAt    time.Time `json:"createdAt"`
}
