package inbound

import (
	"github.com/samber/lo"

	"github.com/greenlegacy/greenlegacy/internal/pkg/router"
	"github.com/greenlegacy/greenlegacy/internal/program/usecase"
)

// HTTPEndpoint exposes HTTP handlers for the program forms and dashboard.
type HTTPEndpoint struct {
	uc uc
}

// DonationCreate records a completed donation payment.
func (h *HTTPEndpoint) DonationCreate(r *router.Request) (any, error) {
	var req DonationRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.DonationCreate(r.Context(), usecase.DonationCreateInput{
		Name:      req.Name,
		Email:     req.Email,
		Amount:    req.Amount,
		PaymentID: req.PaymentID,
	}); err != nil {
		return nil, err
	}

	return DonationResponse{}, nil
}

// ContactCreate stores a contact form message.
func (h *HTTPEndpoint) ContactCreate(r *router.Request) (any, error) {
	var req ContactRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.ContactCreate(r.Context(), usecase.ContactCreateInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}); err != nil {
		return nil, err
	}

	return ContactResponse{}, nil
}

// VolunteerCreate stores a volunteer application.
func (h *HTTPEndpoint) VolunteerCreate(r *router.Request) (any, error) {
	var req VolunteerRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.VolunteerCreate(r.Context(), usecase.VolunteerCreateInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Interest: req.Interest,
	}); err != nil {
		return nil, err
	}

	return VolunteerResponse{}, nil
}

// CSRInquiryCreate stores a corporate partnership proposal.
func (h *HTTPEndpoint) CSRInquiryCreate(r *router.Request) (any, error) {
	var req CSRInquiryRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.CSRInquiryCreate(r.Context(), usecase.CSRInquiryCreateInput{
		Company:       req.Company,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Proposal:      req.Proposal,
	}); err != nil {
		return nil, err
	}

	return CSRInquiryResponse{}, nil
}

// TreeLookup resolves a planted tree by its public tag.
func (h *HTTPEndpoint) TreeLookup(r *router.Request) (any, error) {
	resp, err := h.uc.TreeLookup(r.Context(), usecase.TreeLookupInput{
		Tag: r.GetParam("tag"),
	})
	if err != nil {
		return nil, err
	}

	return TreeResponse{
		Tag:       resp.Tag,
		Species:   resp.Species,
		Location:  resp.Location,
		DonorName: resp.DonorName,
		PlantedAt: resp.PlantedAt,
	}, nil
}

// TreeRegister records a planted tree. Admin only.
func (h *HTTPEndpoint) TreeRegister(r *router.Request) (any, error) {
	var req TreeRegisterRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.TreeRegister(r.Context(), usecase.TreeRegisterInput{
		Tag:       req.Tag,
		Species:   req.Species,
		Location:  req.Location,
		DonorName: req.DonorName,
		PaymentID: req.PaymentID,
	}); err != nil {
		return nil, err
	}

	return TreeRegisterResponse{}, nil
}

// Stats returns program counters for the admin dashboard. Admin only.
func (h *HTTPEndpoint) Stats(r *router.Request) (any, error) {
	resp, err := h.uc.Stats(r.Context())
	if err != nil {
		return nil, err
	}

	return StatsResponse{
		Users:          resp.Users,
		Trees:          resp.Trees,
		Donations:      resp.Donations,
		DonationAmount: resp.DonationAmount,
		Volunteers:     resp.Volunteers,
		Contacts:       resp.Contacts,
		CSRInquiries:   resp.CSRInquiries,
		Recent: lo.Map(resp.Recent, func(d usecase.RecentDonation, _ int) RecentDonationResponse {
			return RecentDonationResponse{
				Name:      d.Name,
				Amount:    d.Amount,
				CreatedAt: d.CreatedAt,
			}
		}),
	}, nil
}
