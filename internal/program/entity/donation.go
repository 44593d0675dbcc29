package entity

import "time"

// Donation is a completed tree-planting payment reported by the payment
// gateway callback. PaymentID is the gateway's reference and deduplicates
// retried callbacks.
type Donation struct {
	ID        int64
	Name      string
	Email     string
	Amount    int64
	PaymentID string
	CreatedAt time.Time
}
