package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/gatekit/internal/auth/entity"
	"github.com/shandysiswandi/gatekit/internal/pkg/goerror"
)

type RegisterInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required"`
	Phone    string `validate:"required"`
	Password string `validate:"required"`
}

type RegisterOutput struct {
	UserToken string
}

// Register creates a new user unless any of the identifying attributes
// already belongs to an existing one.
func (s *Usecase) Register(ctx context.Context, in RegisterInput) (*RegisterOutput, error) {
	ctx, span := s.startSpan(ctx, "Register")
	defer span.End()

	// Attributes are stored as received (modulo whitespace) so that a later
	// login with the exact same identifier always matches.
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	_, err := s.repoDB.FindUserByAttributes(ctx, in.Name, in.Email, in.Phone)
	if err == nil {
		return nil, goerror.NewBusiness("User already exists", goerror.CodeConflict)
	}
	if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo find user by attributes", "email", in.Email, "error", err)
		return nil, goerror.NewServerMsg(err, "Failed to register user")
	}

	hashedPassword, err := s.bcrypt.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return nil, goerror.NewServerMsg(err, "Failed to register user")
	}

	user, err := s.repoDB.CreateUser(ctx, entity.NewUser{
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		Password: string(hashedPassword),
	})
	if errors.Is(err, goerror.ErrConflict) {
		// A concurrent registration won the race on a unique index.
		return nil, goerror.NewBusiness("User already exists", goerror.CodeConflict)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create user", "email", in.Email, "error", err)
		return nil, goerror.NewServerMsg(err, "Failed to register user")
	}

	token, err := s.issueToken(ctx, user.ID)
	if err != nil {
		return nil, goerror.NewServerMsg(err, "Failed to register user")
	}

	event := UserRegisteredEvent{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Phone:  user.Phone,
	}
	s.goroutine.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
		if err := s.repoMessaging.PublishUserRegistered(ctx, event); err != nil {
			slog.ErrorContext(ctx, "failed to publish user registered", "user_id", event.UserID, "error", err)
		}
		return nil
	})

	return &RegisterOutput{UserToken: token}, nil
}
