package inbound

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	ChallengeToken string `json:"challenge_token"`
	ExpiresIn      int64  `json:"expires_in"`
}

func (RegisterResponse) Message() string {
	return "Registration started. Please check your email for the verification code."
}

type RegisterVerifyRequest struct {
	ChallengeToken string `json:"challenge_token"`
	Code           string `json:"code"`
}

type RegisterVerifyResponse struct {
	AccessToken string `json:"access_token"`
	UserID      int64  `json:"user_id,string"`
	Username    string `json:"username"`
	Email       string `json:"email"`
}

func (RegisterVerifyResponse) Message() string {
	return "Registration complete."
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	UserID      int64  `json:"user_id,string"`
	Username    string `json:"username"`
	Role        string `json:"role"`
}

type PasswordForgotRequest struct {
	Email string `json:"email"`
}

type PasswordForgotResponse struct {
	ChallengeToken string `json:"challenge_token,omitempty"`
	ExpiresIn      int64  `json:"expires_in,omitempty"`
}

func (PasswordForgotResponse) Message() string {
	return "If an account with that email exists, we have sent a reset code."
}

type PasswordForgotVerifyRequest struct {
	ChallengeToken string `json:"challenge_token"`
	Code           string `json:"code"`
}

type PasswordForgotVerifyResponse struct {
	ResetToken string `json:"reset_token"`
	ExpiresIn  int64  `json:"expires_in"`
}

type PasswordResetRequest struct {
	ResetToken      string `json:"reset_token"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

type AccountUpdateRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
