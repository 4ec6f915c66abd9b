package otp

import (
	"testing"
	"time"

	libOTP "github.com/pquerna/otp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndValidate(t *testing.T) {
	o := NewTOTP("Inkpress", 300, 1, libOTP.DigitsSix)
	at := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	challenge, err := o.Issue(at)
	require.NoError(t, err)
	require.NotEmpty(t, challenge.Secret)
	require.Len(t, challenge.Code, 6)

	assert.True(t, o.Validate(challenge.Code, challenge.Secret, at))
	assert.False(t, o.Validate("000000", challenge.Secret, at))
}

func TestValidate_OutsideWindow(t *testing.T) {
	o := NewTOTP("Inkpress", 300, 1, libOTP.DigitsSix)
	at := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	challenge, err := o.Issue(at)
	require.NoError(t, err)

	// Within skew the code still validates; two periods later it must not.
	assert.True(t, o.Validate(challenge.Code, challenge.Secret, at.Add(300*time.Second)))
	assert.False(t, o.Validate(challenge.Code, challenge.Secret, at.Add(2*300*time.Second+time.Second)))
}

func TestIssue_FreshSecrets(t *testing.T) {
	o := NewTOTP("Inkpress", 300, 1, libOTP.DigitsSix)
	at := time.Now()

	first, err := o.Issue(at)
	require.NoError(t, err)
	second, err := o.Issue(at)
	require.NoError(t, err)

	assert.NotEqual(t, first.Secret, second.Secret)
	assert.False(t, o.Validate(first.Code, second.Secret, at), "codes must not cross-validate")
}

func TestIssue_ValidityWindow(t *testing.T) {
	o := NewTOTP("Inkpress", 300, 1, libOTP.DigitsSix)

	// At a period boundary the full period plus skew remains.
	boundary := time.Unix(300*10, 0)
	challenge, err := o.Issue(boundary)
	require.NoError(t, err)
	assert.Equal(t, 600*time.Second, challenge.Validity)

	// Halfway through the period only half remains, plus skew.
	halfway := time.Unix(300*10+150, 0)
	challenge, err = o.Issue(halfway)
	require.NoError(t, err)
	assert.Equal(t, 450*time.Second, challenge.Validity)
}

func TestGenerateCode(t *testing.T) {
	o := NewTOTP("Inkpress", 300, 1, libOTP.DigitsSix)
	at := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	challenge, err := o.Issue(at)
	require.NoError(t, err)

	code, err := o.GenerateCode(challenge.Secret, at)
	require.NoError(t, err)
	assert.Equal(t, challenge.Code, code)
}

func TestNewTOTP_Defaults(t *testing.T) {
	o := NewTOTP("Inkpress", 0, 0, libOTP.Digits(12))
	assert.Equal(t, uint(30), o.period)
	assert.Equal(t, uint(1), o.skew)
	assert.Equal(t, libOTP.DigitsSix, o.digits)
}
