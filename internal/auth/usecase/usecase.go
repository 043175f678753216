package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/gatekit/internal/auth/entity"
	"github.com/shandysiswandi/gatekit/internal/pkg/clock"
	"github.com/shandysiswandi/gatekit/internal/pkg/config"
	"github.com/shandysiswandi/gatekit/internal/pkg/goerror"
	"github.com/shandysiswandi/gatekit/internal/pkg/goroutine"
	"github.com/shandysiswandi/gatekit/internal/pkg/hash"
	"github.com/shandysiswandi/gatekit/internal/pkg/instrument"
	"github.com/shandysiswandi/gatekit/internal/pkg/jwt"
	"github.com/shandysiswandi/gatekit/internal/pkg/otpcode"
	"github.com/shandysiswandi/gatekit/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

// UserRegisteredEvent is published after a successful registration.
type UserRegisteredEvent struct {
	UserID string
	Name   string
	Email  string
	Phone  string
}

type repoMessaging interface {
	PublishUserRegistered(ctx context.Context, msg UserRegisteredEvent) error
}

type repoDB interface {
	FindUserByAttributes(ctx context.Context, name, email, phone string) (*entity.User, error)
	FindUserByAnyIdentifier(ctx context.Context, identifier string) (*entity.User, error)
	CreateUser(ctx context.Context, in entity.NewUser) (*entity.User, error)

	UpsertOTP(ctx context.Context, in entity.UpsertOTP) (*entity.OTPRecord, error)
	GetOTPByID(ctx context.Context, id string) (*entity.OTPRecord, error)
	DeleteOTPByID(ctx context.Context, id string) error
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	validator     validator.Validator
	cfg           config.Config
	bcrypt        hash.Hash
	otp           otpcode.Generator
	clock         clock.Clocker
	jwt           jwt.JWT
	ins           instrument.Instrumentation
	goroutine     *goroutine.Manager
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	Validator     validator.Validator
	Config        config.Config
	Bcrypt        hash.Hash
	OTP           otpcode.Generator
	Clock         clock.Clocker
	JWT           jwt.JWT
	Instrument    instrument.Instrumentation
	Goroutine     *goroutine.Manager
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		validator:     dep.Validator,
		cfg:           dep.Config,
		bcrypt:        dep.Bcrypt,
		otp:           dep.OTP,
		clock:         dep.Clock,
		jwt:           dep.JWT,
		ins:           dep.Instrument,
		goroutine:     dep.Goroutine,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("auth.usecase").Start(ctx, name)
}

// issueToken wraps a record identifier into a signed token, or passes the raw
// identifier through when signing is disabled.
func (s *Usecase) issueToken(ctx context.Context, id string) (string, error) {
	if !s.cfg.GetBool("modules.auth.jwt") {
		return id, nil
	}

	token, err := s.jwt.Sign(id)
	if err != nil {
		slog.ErrorContext(ctx, "failed to sign token", "error", err)
		return "", err
	}
	return token, nil
}

// resolveToken reverses issueToken: it unwraps a signed token when signing is
// enabled, else treats the input as the raw identifier.
func (s *Usecase) resolveToken(ctx context.Context, token string) (string, error) {
	if !s.cfg.GetBool("modules.auth.jwt") {
		if token == "" {
			return "", goerror.NewBusiness("Invalid token", goerror.CodeUnauthorized)
		}
		return token, nil
	}

	claims, err := s.jwt.Verify(token)
	if err != nil || claims.ID() == "" {
		slog.WarnContext(ctx, "token verification failed", "error", err)
		return "", goerror.NewBusiness("Invalid token", goerror.CodeUnauthorized)
	}
	return claims.ID(), nil
}
