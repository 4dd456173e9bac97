package domain

import "time"

// User models an operator of the admin backend.
//
// Password holds the credential exactly as imported from the seed file and is
// compared verbatim at login. Plaintext storage is a known defect kept for
// compatibility with the external credential file; the field never serializes
// in API responses.
type User struct {
	ID        int64     `json:"id"`
	UID       string    `json:"uid,omitempty"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	Password  string    `json:"-"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}
