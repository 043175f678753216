package strcase

import "testing"

func TestToLowerSnake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Name", "name"},
		{"UserToken", "user_token"},
		{"OtpCode", "otp_code"},
		{"OTPLength", "otp_length"},
		{"userID", "user_id"},
		{"HTTPServer", "http_server"},
	}

	for _, tt := range tests {
		if got := ToLowerSnake(tt.in); got != tt.want {
			t.Fatalf("ToLowerSnake(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
