package entity

import "time"

// Contact is a message submitted through the public contact form.
type Contact struct {
	ID        int64
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}

// Volunteer is an application submitted through the volunteer form.
type Volunteer struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Interest  string
	CreatedAt time.Time
}

// CSRInquiry is a corporate partnership proposal.
type CSRInquiry struct {
	ID            int64
	Company       string
	ContactPerson string
	Email         string
	Phone         string
	Proposal      string
	CreatedAt     time.Time
}
