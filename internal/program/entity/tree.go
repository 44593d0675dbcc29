package entity

import "time"

// Tree is a planted tree registered against a donation. Tag is the public
// identifier printed on the physical marker and shared with the donor.
type Tree struct {
	ID        int64
	Tag       string
	Species   string
	Location  string
	DonorName string
	PaymentID string
	PlantedAt time.Time
}

// Stats aggregates program-wide counters for the admin dashboard.
type Stats struct {
	Users          int64
	Trees          int64
	Donations      int64
	DonationAmount int64
	Volunteers     int64
	Contacts       int64
	CSRInquiries   int64
}
