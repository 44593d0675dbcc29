package inbound

import (
	"github.com/greenlegacy/greenlegacy/internal/account/usecase"
	"github.com/greenlegacy/greenlegacy/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for supporter accounts.
type HTTPEndpoint struct {
	uc uc
}

// Signup registers a supporter account.
func (h *HTTPEndpoint) Signup(r *router.Request) (any, error) {
	var req SignupRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.Signup(r.Context(), usecase.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}); err != nil {
		return nil, err
	}

	return SignupResponse{}, nil
}

// Login authenticates a supporter and returns a session token.
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Login(r.Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return LoginResponse{Token: resp.Token}, nil
}

// Profile returns the authenticated supporter's account.
func (h *HTTPEndpoint) Profile(r *router.Request) (any, error) {
	resp, err := h.uc.Profile(r.Context())
	if err != nil {
		return nil, err
	}

	return ProfileResponse{
		ID:        resp.ID,
		Name:      resp.Name,
		Email:     resp.Email,
		CreatedAt: resp.CreatedAt,
	}, nil
}
