package entity

// FieldMap resolves logical attribute names to the physical field names used
// by the backing store's schema. It is configured once at module construction
// and read-only afterwards.
type FieldMap struct {
	User UserFields
	OTP  OTPFields
}

// UserFields names the physical fields of a user document.
type UserFields struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// OTPFields names the physical fields of an OTP document.
type OTPFields struct {
	User    string
	Code    string
	Expires string
}

// DefaultFieldMap returns the conventional field names.
func DefaultFieldMap() FieldMap {
	return FieldMap{
		User: UserFields{
			Name:     "name",
			Email:    "email",
			Phone:    "phone",
			Password: "password",
		},
		OTP: OTPFields{
			User:    "user",
			Code:    "code",
			Expires: "expires",
		},
	}
}
