package auth

import (
	"testing"

	"github.com/shandysiswandi/gatekit/internal/pkg/config"
)

func TestFieldMapFromConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := config.NewViperFromBytes("yaml", []byte("modules: {auth: {}}"))
		if err != nil {
			t.Fatalf("config: %v", err)
		}

		fields := fieldMapFromConfig(cfg)
		if fields.User.Email != "email" || fields.OTP.User != "user" {
			t.Fatalf("unexpected defaults: %+v", fields)
		}
	})

	t.Run("Overrides", func(t *testing.T) {
		cfg, err := config.NewViperFromBytes("yaml", []byte(`
modules:
  auth:
    fields:
      email: email_address
      password: pw_hash
      otp_expires: valid_until
`))
		if err != nil {
			t.Fatalf("config: %v", err)
		}

		fields := fieldMapFromConfig(cfg)
		if fields.User.Email != "email_address" {
			t.Errorf("email field = %q, want email_address", fields.User.Email)
		}
		if fields.User.Password != "pw_hash" {
			t.Errorf("password field = %q, want pw_hash", fields.User.Password)
		}
		if fields.OTP.Expires != "valid_until" {
			t.Errorf("otp expires field = %q, want valid_until", fields.OTP.Expires)
		}
		if fields.User.Name != "name" {
			t.Errorf("name field = %q, want default name", fields.User.Name)
		}
	})
}
