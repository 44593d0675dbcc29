package inbound

import (
	"context"

	"github.com/greenlegacy/greenlegacy/internal/adminauth/usecase"
	"github.com/greenlegacy/greenlegacy/internal/pkg/router"
)

type uc interface {
	RequestOTP(ctx context.Context, in usecase.RequestOTPInput) error
	VerifyOTP(ctx context.Context, in usecase.VerifyOTPInput) (*usecase.VerifyOTPOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/v1/admin/request-otp", end.RequestOTP)
	r.POST("/api/v1/admin/verify-otp", end.VerifyOTP)
}
