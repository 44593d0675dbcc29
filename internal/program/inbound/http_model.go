package inbound

import "time"

type DonationRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Amount    int64  `json:"amount"`
	PaymentID string `json:"payment_id"`
}

type DonationResponse struct{}

func (DonationResponse) Message() string {
	return "Donation recorded, thank you for planting with us"
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type ContactResponse struct{}

func (ContactResponse) Message() string {
	return "Message received, we will get back to you soon"
}

type VolunteerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Interest string `json:"interest"`
}

type VolunteerResponse struct{}

func (VolunteerResponse) Message() string {
	return "Volunteer application received"
}

type CSRInquiryRequest struct {
	Company       string `json:"company"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Proposal      string `json:"proposal"`
}

type CSRInquiryResponse struct{}

func (CSRInquiryResponse) Message() string {
	return "CSR inquiry received"
}

type TreeResponse struct {
	Tag       string    `json:"tag"`
	Species   string    `json:"species"`
	Location  string    `json:"location"`
	DonorName string    `json:"donor_name"`
	PlantedAt time.Time `json:"planted_at"`
}

type TreeRegisterRequest struct {
	Tag       string `json:"tag"`
	Species   string `json:"species"`
	Location  string `json:"location"`
	DonorName string `json:"donor_name"`
	PaymentID string `json:"payment_id"`
}

type TreeRegisterResponse struct{}

func (TreeRegisterResponse) Message() string {
	return "Tree registered"
}

type StatsResponse struct {
	Users          int64                    `json:"users"`
	Trees          int64                    `json:"trees"`
	Donations      int64                    `json:"donations"`
	DonationAmount int64                    `json:"donation_amount"`
	Volunteers     int64                    `json:"volunteers"`
	Contacts       int64                    `json:"contacts"`
	CSRInquiries   int64                    `json:"csr_inquiries"`
	Recent         []RecentDonationResponse `json:"recent_donations"`
}

type RecentDonationResponse struct {
	Name      string    `json:"name"`
	Amount    int64     `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}
