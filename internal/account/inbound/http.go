package inbound

import (
	"context"

	"github.com/greenlegacy/greenlegacy/internal/account/usecase"
	"github.com/greenlegacy/greenlegacy/internal/pkg/router"
)

type uc interface {
	Signup(ctx context.Context, in usecase.SignupInput) error
	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)
	Profile(ctx context.Context) (*usecase.ProfileOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/v1/account/signup", end.Signup)
	r.POST("/api/v1/account/login", end.Login)
	r.GET("/api/v1/account/me", end.Profile) // need authenticated
}
