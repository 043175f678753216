package inbound

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	UserToken string `json:"user_token"`
}

type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// LoginResponse carries either a terminal user identifier or an OTP
// challenge, never both.
type LoginResponse struct {
	UserID    string `json:"user_id,omitempty"`
	OTPToken  string `json:"otp_token,omitempty"`
	OTPCode   string `json:"otp_code,omitempty"`
	OTPLength int    `json:"otp_length,omitempty"`
}

type VerifyOTPRequest struct {
	Token string `json:"token"`
	Code  string `json:"code"`
}

type VerifyOTPResponse struct {
	UserToken string `json:"user_token"`
}
