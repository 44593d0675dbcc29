package entity

import "time"

// Challenge is a pending one-time passcode issued to the admin mailbox.
//
// At most one challenge exists per email; issuing a new code replaces any
// pending one.
type Challenge struct {
	Email    string
	Code     string
	IssuedAt time.Time
	Attempts int
}
