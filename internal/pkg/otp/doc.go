// Package otp provides helpers for issuing and validating one-time passwords,
// focused on TOTP (time-based OTP).
//
// The registration and password-reset flows issue a fresh secret per
// challenge, mail the derived code to the user, and validate the submitted
// code against the stored secret server-side.
package otp
