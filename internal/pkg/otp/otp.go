package otp

import (
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// Challenge is a freshly issued one-time code together with the secret it was
// derived from and how long the code remains valid.
type Challenge struct {
	Secret   string
	Code     string
	Validity time.Duration
}

// OTP defines the contract for time-based one-time password operations.
type OTP interface {
	// Issue creates a new random secret and the code valid at the given time.
	Issue(at time.Time) (Challenge, error)
	// Validate checks whether a code is valid for a secret at the given time.
	Validate(code, secret string, at time.Time) bool
	// GenerateCode creates a code for an existing secret at the given time.
	GenerateCode(secret string, at time.Time) (string, error)
}

// TOTP implements OTP using the Time-based One-Time Password algorithm.
type TOTP struct {
	issuer string
	period uint
	skew   uint
	digits otp.Digits
}

// NewTOTP constructs a TOTP instance with sensible defaults.
//
// If digits is not 6 or 8, it falls back to 6 digits. If period is 0, it uses
// the common 30-second period.
func NewTOTP(issuer string, period, skew uint, digits otp.Digits) *TOTP {
	if digits != otp.DigitsSix && digits != otp.DigitsEight {
		digits = otp.DigitsSix
	}

	if period == 0 {
		period = 30
	}

	if skew == 0 {
		skew = 1
	}

	return &TOTP{
		issuer: issuer,
		period: period,
		skew:   skew,
		digits: digits,
	}
}

// Issue creates a new random secret and the code valid at the given time.
//
// Each call produces an independent secret, so codes from two issuances never
// cross-validate. Validity is the real remaining window: the rest of the
// current period plus the configured skew.
func (o *TOTP) Issue(at time.Time) (Challenge, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      o.issuer,
		AccountName: o.issuer,
		Period:      o.period,
		SecretSize:  20, // RFC 4226/6238 recommendation
		Digits:      o.digits,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return Challenge{}, err
	}

	code, err := o.GenerateCode(key.Secret(), at)
	if err != nil {
		return Challenge{}, err
	}

	period := time.Duration(o.period) * time.Second
	elapsed := time.Duration(at.Unix()%int64(o.period)) * time.Second
	validity := period - elapsed + time.Duration(o.skew)*period

	return Challenge{Secret: key.Secret(), Code: code, Validity: validity}, nil
}

// Validate checks whether a code is valid for a secret at the given time.
func (o *TOTP) Validate(code, secret string, at time.Time) bool {
	rv, err := totp.ValidateCustom(code, secret, at, totp.ValidateOpts{
		Period:    o.period,
		Skew:      o.skew,
		Digits:    o.digits,
		Algorithm: otp.AlgorithmSHA1,
	})

	return rv && err == nil
}

// GenerateCode creates a code for an existing secret at the given time.
func (o *TOTP) GenerateCode(secret string, at time.Time) (string, error) {
	return totp.GenerateCodeCustom(secret, at, totp.ValidateOpts{
		Period:    o.period,
		Skew:      o.skew,
		Digits:    o.digits,
		Algorithm: otp.AlgorithmSHA1,
	})
}
