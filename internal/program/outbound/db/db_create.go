package db

import (
	"context"

	"github.com/greenlegacy/greenlegacy/internal/program/entity"
)

const queryCreateDonation = `
INSERT INTO program_donations (id, name, email, amount, payment_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

func (s *DB) CreateDonation(ctx context.Context, in entity.Donation) (err error) {
	ctx, span := s.startSpan(ctx, "CreateDonation")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateDonation,
		in.ID, in.Name, in.Email, in.Amount, in.PaymentID, in.CreatedAt)
	err = s.mapError(err)
	return err
}

const queryCreateContact = `
INSERT INTO program_contacts (id, name, email, message, created_at)
VALUES ($1, $2, $3, $4, $5)`

func (s *DB) CreateContact(ctx context.Context, in entity.Contact) (err error) {
	ctx, span := s.startSpan(ctx, "CreateContact")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateContact,
		in.ID, in.Name, in.Email, in.Message, in.CreatedAt)
	err = s.mapError(err)
	return err
}

const queryCreateVolunteer = `
INSERT INTO program_volunteers (id, name, email, phone, interest, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

func (s *DB) CreateVolunteer(ctx context.Context, in entity.Volunteer) (err error) {
	ctx, span := s.startSpan(ctx, "CreateVolunteer")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateVolunteer,
		in.ID, in.Name, in.Email, in.Phone, in.Interest, in.CreatedAt)
	err = s.mapError(err)
	return err
}

const queryCreateCSRInquiry = `
INSERT INTO program_csr_inquiries (id, company, contact_person, email, phone, proposal, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (s *DB) CreateCSRInquiry(ctx context.Context, in entity.CSRInquiry) (err error) {
	ctx, span := s.startSpan(ctx, "CreateCSRInquiry")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateCSRInquiry,
		in.ID, in.Company, in.ContactPerson, in.Email, in.Phone, in.Proposal, in.CreatedAt)
	err = s.mapError(err)
	return err
}

const queryCreateTree = `
INSERT INTO program_trees (id, tag, species, location, donor_name, payment_id, planted_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (s *DB) CreateTree(ctx context.Context, in entity.Tree) (err error) {
	ctx, span := s.startSpan(ctx, "CreateTree")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateTree,
		in.ID, in.Tag, in.Species, in.Location, in.DonorName, in.PaymentID, in.PlantedAt)
	err = s.mapError(err)
	return err
}
