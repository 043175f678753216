// Package clock abstracts the system clock behind a small interface so that
// time-dependent logic (OTP expiry, token lifetimes) can be tested with a
// fixed time source.
package clock
