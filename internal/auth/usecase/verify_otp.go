package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/gatekit/internal/pkg/goerror"
)

type VerifyOTPInput struct {
	Token string
	Code  string
}

type VerifyOTPOutput struct {
	UserToken string
}

// VerifyOTP redeems a login challenge. The record is deleted only on a
// successful match, so a mismatched code can be retried.
func (s *Usecase) VerifyOTP(ctx context.Context, in VerifyOTPInput) (*VerifyOTPOutput, error) {
	ctx, span := s.startSpan(ctx, "VerifyOTP")
	defer span.End()

	recordID, err := s.resolveToken(ctx, in.Token)
	if err != nil {
		return nil, err
	}

	record, err := s.repoDB.GetOTPByID(ctx, recordID)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "otp record not found", "otp_id", recordID)
		return nil, goerror.NewBusiness("OTP not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get otp", "otp_id", recordID, "error", err)
		return nil, goerror.NewServer(err)
	}

	if s.cfg.GetBool("modules.auth.otp_expiry_check") && s.clock.Now().After(record.ExpiresAt) {
		slog.WarnContext(ctx, "otp code expired", "otp_id", record.ID)
		return nil, goerror.NewBusiness("OTP expired", goerror.CodeUnauthorized)
	}

	if record.Code != in.Code {
		slog.WarnContext(ctx, "otp code does not match", "otp_id", record.ID)
		return nil, goerror.NewBusiness("Invalid OTP", goerror.CodeUnauthorized)
	}

	if err := s.repoDB.DeleteOTPByID(ctx, record.ID); err != nil {
		slog.ErrorContext(ctx, "failed to repo delete otp", "otp_id", record.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	token, err := s.issueToken(ctx, record.UserID)
	if err != nil {
		return nil, goerror.NewServer(err)
	}

	return &VerifyOTPOutput{UserToken: token}, nil
}
