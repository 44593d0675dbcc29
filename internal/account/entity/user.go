package entity

import "time"

// User is a supporter account created through the public signup form.
type User struct {
	ID        int64
	Name      string
	Email     string
	Password  string
	CreatedAt time.Time
}
