package inbound

import (
	"github.com/greenlegacy/greenlegacy/internal/adminauth/usecase"
	"github.com/greenlegacy/greenlegacy/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for the admin login flow.
type HTTPEndpoint struct {
	uc uc
}

// RequestOTP validates admin credentials and emails a one-time code.
func (h *HTTPEndpoint) RequestOTP(r *router.Request) (any, error) {
	var req RequestOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.RequestOTP(r.Context(), usecase.RequestOTPInput{
		Email:    req.Email,
		Password: req.Password,
	}); err != nil {
		return nil, err
	}

	return RequestOTPResponse{}, nil
}

// VerifyOTP exchanges a valid one-time code for an admin session token.
func (h *HTTPEndpoint) VerifyOTP(r *router.Request) (any, error) {
	var req VerifyOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.VerifyOTP(r.Context(), usecase.VerifyOTPInput{
		Email: req.Email,
		OTP:   req.OTP,
	})
	if err != nil {
		return nil, err
	}

	return VerifyOTPResponse{Token: resp.Token}, nil
}
