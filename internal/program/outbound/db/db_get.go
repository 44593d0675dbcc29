package db

import (
	"context"

	"github.com/greenlegacy/greenlegacy/internal/program/entity"
)

const queryGetTreeByTag = `
SELECT id, tag, species, location, donor_name, payment_id, planted_at
FROM program_trees
WHERE tag = $1`

func (s *DB) GetTreeByTag(ctx context.Context, tag string) (tree *entity.Tree, err error) {
	ctx, span := s.startSpan(ctx, "GetTreeByTag")
	defer func() { s.endSpan(span, err) }()

	var t entity.Tree
	err = s.conn.QueryRow(ctx, queryGetTreeByTag, tag).
		Scan(&t.ID, &t.Tag, &t.Species, &t.Location, &t.DonorName, &t.PaymentID, &t.PlantedAt)
	if err != nil {
		err = s.mapError(err)
		return nil, err
	}

	return &t, nil
}

const queryGetStats = `
SELECT
	(SELECT COUNT(*) FROM account_users),
	(SELECT COUNT(*) FROM program_trees),
	(SELECT COUNT(*) FROM program_donations),
	(SELECT COALESCE(SUM(amount), 0) FROM program_donations),
	(SELECT COUNT(*) FROM program_volunteers),
	(SELECT COUNT(*) FROM program_contacts),
	(SELECT COUNT(*) FROM program_csr_inquiries)`

func (s *DB) GetStats(ctx context.Context) (stats *entity.Stats, err error) {
	ctx, span := s.startSpan(ctx, "GetStats")
	defer func() { s.endSpan(span, err) }()

	var st entity.Stats
	err = s.conn.QueryRow(ctx, queryGetStats).Scan(
		&st.Users, &st.Trees, &st.Donations, &st.DonationAmount,
		&st.Volunteers, &st.Contacts, &st.CSRInquiries,
	)
	if err != nil {
		err = s.mapError(err)
		return nil, err
	}

	return &st, nil
}

const queryGetRecentDonations = `
SELECT id, name, email, amount, payment_id, created_at
FROM program_donations
ORDER BY created_at DESC
LIMIT $1`

func (s *DB) GetRecentDonations(ctx context.Context, limit int32) (donations []entity.Donation, err error) {
	ctx, span := s.startSpan(ctx, "GetRecentDonations")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, queryGetRecentDonations, limit)
	if err != nil {
		err = s.mapError(err)
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var d entity.Donation
		if err = rows.Scan(&d.ID, &d.Name, &d.Email, &d.Amount, &d.PaymentID, &d.CreatedAt); err != nil {
			err = s.mapError(err)
			return nil, err
		}
		donations = append(donations, d)
	}
	if err = rows.Err(); err != nil {
		err = s.mapError(err)
		return nil, err
	}

	return donations, nil
}
