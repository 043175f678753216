package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/shandysiswandi/gatekit/internal/auth/entity"
	"github.com/shandysiswandi/gatekit/internal/pkg/goerror"
)

const defaultOTPTTL = 5 * time.Minute

type LoginInput struct {
	Identifier string
	Password   string
}

type LoginOutput struct {
	// UserID is set when the second factor is disabled. It is the signed or
	// raw user identifier per token policy.
	UserID string

	OTPRequired bool
	OTPToken    string
	OTPCode     string
	OTPLength   int
}

// Login verifies primary credentials. When the second factor is enabled it
// issues a short-lived challenge instead of a terminal result.
func (s *Usecase) Login(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	ctx, span := s.startSpan(ctx, "Login")
	defer span.End()

	identifier := strings.TrimSpace(in.Identifier)
	if identifier == "" || in.Password == "" {
		return nil, goerror.NewBusiness("Missing credentials", goerror.CodeInvalidInput)
	}

	user, err := s.repoDB.FindUserByAnyIdentifier(ctx, identifier)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "user account not found", "identifier", identifier)
		return nil, goerror.NewBusiness("User not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo find user by identifier", "identifier", identifier, "error", err)
		return nil, goerror.NewServer(err)
	}

	if !s.bcrypt.Verify(user.Password, in.Password) {
		slog.WarnContext(ctx, "password does not match", "user_id", user.ID)
		return nil, goerror.NewBusiness("Invalid password", goerror.CodeUnauthorized)
	}

	if !s.cfg.GetBool("modules.auth.otp") {
		token, err := s.issueToken(ctx, user.ID)
		if err != nil {
			return nil, goerror.NewServer(err)
		}
		return &LoginOutput{UserID: token}, nil
	}

	code, err := s.otp.Generate()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate otp code", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	ttl := s.cfg.GetMinute("modules.auth.otp_ttl_minutes")
	if ttl <= 0 {
		ttl = defaultOTPTTL
	}

	record, err := s.repoDB.UpsertOTP(ctx, entity.UpsertOTP{
		UserID:    user.ID,
		Code:      code,
		ExpiresAt: s.clock.Now().Add(ttl),
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo upsert otp", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	otpToken, err := s.issueToken(ctx, record.ID)
	if err != nil {
		return nil, goerror.NewServer(err)
	}

	// The code is returned to the caller, which is responsible for
	// out-of-band delivery.
	return &LoginOutput{
		OTPRequired: true,
		OTPToken:    otpToken,
		OTPCode:     code,
		OTPLength:   len(code),
	}, nil
}
