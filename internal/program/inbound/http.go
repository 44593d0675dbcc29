package inbound

import (
	"context"

	"github.com/greenlegacy/greenlegacy/internal/pkg/router"
	"github.com/greenlegacy/greenlegacy/internal/program/usecase"
)

type uc interface {
	DonationCreate(ctx context.Context, in usecase.DonationCreateInput) error
	ContactCreate(ctx context.Context, in usecase.ContactCreateInput) error
	VolunteerCreate(ctx context.Context, in usecase.VolunteerCreateInput) error
	CSRInquiryCreate(ctx context.Context, in usecase.CSRInquiryCreateInput) error

	TreeLookup(ctx context.Context, in usecase.TreeLookupInput) (*usecase.TreeLookupOutput, error)
	TreeRegister(ctx context.Context, in usecase.TreeRegisterInput) error
	Stats(ctx context.Context) (*usecase.StatsOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Public forms
	r.POST("/api/v1/program/donations", end.DonationCreate)
	r.POST("/api/v1/program/contacts", end.ContactCreate)
	r.POST("/api/v1/program/volunteers", end.VolunteerCreate)
	r.POST("/api/v1/program/csr-inquiries", end.CSRInquiryCreate)
	r.GET("/api/v1/program/trees/:tag", end.TreeLookup)

	// Admin dashboard (need authenticated & admin role)
	r.GET("/api/v1/admin/stats", end.Stats, router.AdminOnly)
	r.POST("/api/v1/admin/trees", end.TreeRegister, router.AdminOnly)
}
