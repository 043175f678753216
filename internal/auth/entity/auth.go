package entity

import "time"

// User is the registered principal being authenticated.
type User struct {
	ID       string
	Name     string
	Email    string
	Phone    string
	Password string // hashed
}

// NewUser carries the attributes for creating a User. Password is already hashed.
type NewUser struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// OTPRecord binds an owning user to a one-time numeric code and its expiry.
type OTPRecord struct {
	ID        string
	UserID    string
	Code      string
	ExpiresAt time.Time
}

// UpsertOTP carries the attributes for replacing a user's outstanding code.
type UpsertOTP struct {
	UserID    string
	Code      string
	ExpiresAt time.Time
}
