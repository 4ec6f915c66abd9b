package inbound

import (
	"context"

	"github.com/inkpress/inkpress/internal/identity/usecase"
	"github.com/inkpress/inkpress/internal/pkg/router"
)

type uc interface {
	Register(ctx context.Context, in usecase.RegisterInput) (*usecase.RegisterOutput, error)
	RegisterVerify(ctx context.Context, in usecase.RegisterVerifyInput) (*usecase.RegisterVerifyOutput, error)

	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)
	Logout(ctx context.Context) error

	PasswordForgot(ctx context.Context, in usecase.PasswordForgotInput) (*usecase.PasswordForgotOutput, error)
	PasswordForgotVerify(ctx context.Context, in usecase.PasswordForgotVerifyInput) (*usecase.PasswordForgotVerifyOutput, error)
	PasswordReset(ctx context.Context, in usecase.PasswordResetInput) error
	PasswordChange(ctx context.Context, in usecase.PasswordChangeInput) error

	AccountUpdate(ctx context.Context, in usecase.AccountUpdateInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Registration
	r.POST("/api/v1/identity/register", end.Register)
	r.POST("/api/v1/identity/register/verify", end.RegisterVerify)

	// Sessions
	r.POST("/api/v1/identity/login", end.Login)
	r.POST("/api/v1/identity/logout", end.Logout) // need authenticated

	// Password Management
	r.POST("/api/v1/identity/password/forgot", end.PasswordForgot)
	r.POST("/api/v1/identity/password/forgot/verify", end.PasswordForgotVerify)
	r.POST("/api/v1/identity/password/reset", end.PasswordReset)
	r.POST("/api/v1/identity/password/change", end.PasswordChange) // need authenticated

	// Account (need authenticated)
	r.PUT("/api/v1/identity/account", end.AccountUpdate)
}
