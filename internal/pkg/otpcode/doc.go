// Package otpcode generates the short-lived numeric one-time codes persisted
// next to a user record during login. These are random codes compared against
// the stored value, not time-based (TOTP) codes.
package otpcode
