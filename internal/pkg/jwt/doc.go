// Package jwt wraps token signing and verification for the application.
//
// Tokens wrap a single opaque record identifier in the subject claim. The
// module can run with signing disabled, in which case raw identifiers are
// returned to callers instead of tokens; that decision lives in the caller,
// not here.
package jwt
