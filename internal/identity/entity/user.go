package entity

import "time"

type User struct {
	ID        int64
	Username  string
	Email     string
	Password  string // hashed
	Role      UserRole
	CreatedAt time.Time
	UpdatedAt time.Time
}

type NewUser struct {
	ID       int64
	Username string
	Email    string
	Password string // hashed
	Role     UserRole
}

// PendingRegistration is the server-held state of a registration challenge.
// It lives in the challenge store under an opaque token until the OTP code is
// verified or the TTL lapses; the users table is untouched until then.
type PendingRegistration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"` // hashed
	Secret   string `json:"secret"`
}

// PendingReset is the server-held state of a password-reset challenge.
type PendingReset struct {
	Email  string `json:"email"`
	Secret string `json:"secret"`
}

// ResetGrant is minted after a correct reset code and consumed by the final
// password overwrite.
type ResetGrant struct {
	Email string `json:"email"`
}

type UpdateAccount struct {
	ID       int64
	Username string
	Email    string
}
