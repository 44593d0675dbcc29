package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"github.com/greenlegacy/greenlegacy/internal/pkg/goerror"
	"github.com/greenlegacy/greenlegacy/internal/program/entity"
)

const recentDonationLimit = 5

type StatsOutput struct {
	Users          int64
	Trees          int64
	Donations      int64
	DonationAmount int64
	Volunteers     int64
	Contacts       int64
	CSRInquiries   int64
	Recent         []RecentDonation
}

type RecentDonation struct {
	Name      string
	Amount    int64
	CreatedAt time.Time
}

// Stats returns the program counters and latest donations for the admin
// dashboard. Admin only.
func (s *Usecase) Stats(ctx context.Context) (*StatsOutput, error) {
	ctx, span := s.startSpan(ctx, "Stats")
	defer span.End()

	stats, err := s.repoDB.GetStats(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get stats", "error", err)
		return nil, goerror.NewServer(err)
	}

	recent, err := s.repoDB.GetRecentDonations(ctx, recentDonationLimit)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get recent donations", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &StatsOutput{
		Users:          stats.Users,
		Trees:          stats.Trees,
		Donations:      stats.Donations,
		DonationAmount: stats.DonationAmount,
		Volunteers:     stats.Volunteers,
		Contacts:       stats.Contacts,
		CSRInquiries:   stats.CSRInquiries,
		Recent: lo.Map(recent, func(d entity.Donation, _ int) RecentDonation {
			return RecentDonation{
				Name:      d.Name,
				Amount:    d.Amount,
				CreatedAt: d.CreatedAt,
			}
		}),
	}, nil
}
