package inbound

import (
	"github.com/inkpress/inkpress/internal/identity/usecase"
	"github.com/inkpress/inkpress/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for the registration, session, and
// password workflows.
type HTTPEndpoint struct {
	uc uc
}

// Register starts a registration challenge.
// @Summary Register user
// @Description Validates the payload, emails a verification code, and returns an opaque challenge token.
// @Tags Identity, Authentication
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration payload"
// @Success 200 {object} router.successResponse{data=RegisterResponse} "Challenge issued"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 409 {object} router.errorResponse "Username or email already registered"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/register [post]
func (h *HTTPEndpoint) Register(r *router.Request) (any, error) {
	var req RegisterRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Register(r.Context(), usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return RegisterResponse{
		ChallengeToken: resp.ChallengeToken,
		ExpiresIn:      resp.ExpiresIn,
	}, nil
}

// RegisterVerify completes a registration challenge.
// @Summary Verify registration code
// @Description Checks the emailed code against the pending challenge, creates the account, and returns a session token. Each challenge allows a single attempt.
// @Tags Identity, Authentication
// @Accept json
// @Produce json
// @Param request body RegisterVerifyRequest true "Verification payload"
// @Success 200 {object} router.successResponse{data=RegisterVerifyResponse} "Account created"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Invalid, expired, or mismatched code"
// @Failure 409 {object} router.errorResponse "Username or email already registered"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/register/verify [post]
func (h *HTTPEndpoint) RegisterVerify(r *router.Request) (any, error) {
	var req RegisterVerifyRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.RegisterVerify(r.Context(), usecase.RegisterVerifyInput{
		ChallengeToken: req.ChallengeToken,
		Code:           req.Code,
	})
	if err != nil {
		return nil, err
	}

	return RegisterVerifyResponse{
		AccessToken: resp.AccessToken,
		UserID:      resp.UserID,
		Username:    resp.Username,
		Email:       resp.Email,
	}, nil
}

// Login authenticates a user and returns an access token.
// @Summary Authenticate user
// @Description Validates credentials and returns an access token.
// @Tags Identity, Authentication
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login payload"
// @Success 200 {object} router.successResponse{data=LoginResponse} "Authentication result"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Invalid credentials"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/login [post]
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Login(r.Context(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return LoginResponse{
		AccessToken: resp.AccessToken,
		UserID:      resp.UserID,
		Username:    resp.Username,
		Role:        resp.Role,
	}, nil
}

// Logout revokes the current access token.
// @Summary Logout
// @Description Revokes the presented access token for its remaining lifetime.
// @Tags Identity, Authentication
// @Success 204 "No Content"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/logout [post]
// @Security BearerAuth
func (h *HTTPEndpoint) Logout(r *router.Request) (any, error) {
	if err := h.uc.Logout(r.Context()); err != nil {
		return nil, err
	}

	return nil, nil
}

// PasswordForgot starts a password reset challenge.
// @Summary Request password reset
// @Description Emails a reset code when an account exists for the address; the response does not reveal whether it does.
// @Tags Identity, Password
// @Accept json
// @Produce json
// @Param request body PasswordForgotRequest true "Forgot password payload"
// @Success 200 {object} router.successResponse{data=PasswordForgotResponse} "Challenge issued"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/password/forgot [post]
func (h *HTTPEndpoint) PasswordForgot(r *router.Request) (any, error) {
	var req PasswordForgotRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.PasswordForgot(r.Context(), usecase.PasswordForgotInput{Email: req.Email})
	if err != nil {
		return nil, err
	}

	return PasswordForgotResponse{
		ChallengeToken: resp.ChallengeToken,
		ExpiresIn:      resp.ExpiresIn,
	}, nil
}

// PasswordForgotVerify verifies a reset code and issues a reset grant.
// @Summary Verify reset code
// @Description Checks the emailed code against the pending challenge and returns a short-lived reset token. Each challenge allows a single attempt.
// @Tags Identity, Password
// @Accept json
// @Produce json
// @Param request body PasswordForgotVerifyRequest true "Verification payload"
// @Success 200 {object} router.successResponse{data=PasswordForgotVerifyResponse} "Reset grant issued"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Invalid, expired, or mismatched code"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/password/forgot/verify [post]
func (h *HTTPEndpoint) PasswordForgotVerify(r *router.Request) (any, error) {
	var req PasswordForgotVerifyRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.PasswordForgotVerify(r.Context(), usecase.PasswordForgotVerifyInput{
		ChallengeToken: req.ChallengeToken,
		Code:           req.Code,
	})
	if err != nil {
		return nil, err
	}

	return PasswordForgotVerifyResponse{
		ResetToken: resp.ResetToken,
		ExpiresIn:  resp.ExpiresIn,
	}, nil
}

// PasswordReset overwrites the password using a reset grant.
// @Summary Reset password
// @Description Consumes a reset token and overwrites the stored password when both password fields match.
// @Tags Identity, Password
// @Accept json
// @Param request body PasswordResetRequest true "Reset payload"
// @Success 204 "No Content"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Invalid or expired reset token"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/password/reset [post]
func (h *HTTPEndpoint) PasswordReset(r *router.Request) (any, error) {
	var req PasswordResetRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.PasswordReset(r.Context(), usecase.PasswordResetInput{
		ResetToken:      req.ResetToken,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	}); err != nil {
		return nil, err
	}

	return nil, nil
}

// PasswordChange updates the password of the authenticated user.
// @Summary Change password
// @Description Verifies the current password and overwrites it with the new one.
// @Tags Identity, Password
// @Accept json
// @Param request body PasswordChangeRequest true "Change password payload"
// @Success 204 "No Content"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Invalid current password"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/password/change [post]
// @Security BearerAuth
func (h *HTTPEndpoint) PasswordChange(r *router.Request) (any, error) {
	var req PasswordChangeRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.PasswordChange(r.Context(), usecase.PasswordChangeInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	}); err != nil {
		return nil, err
	}

	return nil, nil
}

// AccountUpdate updates the authenticated user's username and email.
// @Summary Update account
// @Description Updates the username and email of the authenticated user.
// @Tags Identity, Account
// @Accept json
// @Param request body AccountUpdateRequest true "Account payload"
// @Success 204 "No Content"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 409 {object} router.errorResponse "Username or email already taken"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/account [put]
// @Security BearerAuth
func (h *HTTPEndpoint) AccountUpdate(r *router.Request) (any, error) {
	var req AccountUpdateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.AccountUpdate(r.Context(), usecase.AccountUpdateInput{
		Username: req.Username,
		Email:    req.Email,
	}); err != nil {
		return nil, err
	}

	return nil, nil
}
