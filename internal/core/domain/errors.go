package domain

import "errors"

// Credential validation failures. The HTTP layer collapses all three into one
// generic 401 message so a caller cannot probe which usernames exist; the
// distinct values are kept for internal logging.
var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrUserNotFound       = errors.New("user not found")
	ErrIncorrectPassword  = errors.New("incorrect password")
)

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrUsernameTaken        = errors.New("username already taken")
)
