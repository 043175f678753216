package inbound

import (
	"github.com/shandysiswandi/gatekit/internal/auth/usecase"
	"github.com/shandysiswandi/gatekit/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for the authentication workflows.
type HTTPEndpoint struct {
	uc uc
}

// Register creates a new user and returns its token.
func (h *HTTPEndpoint) Register(r *router.Request) (any, error) {
	var req RegisterRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Register(r.Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return RegisterResponse{UserToken: resp.UserToken}, nil
}

// Login verifies credentials and returns either a user identifier or an OTP
// challenge when the second factor is enabled.
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Login(r.Context(), usecase.LoginInput{
		Identifier: req.Identifier,
		Password:   req.Password,
	})
	if err != nil {
		return nil, err
	}

	if resp.OTPRequired {
		return LoginResponse{
			OTPToken:  resp.OTPToken,
			OTPCode:   resp.OTPCode,
			OTPLength: resp.OTPLength,
		}, nil
	}

	return LoginResponse{UserID: resp.UserID}, nil
}

// VerifyOTP redeems a login challenge and returns the user token.
func (h *HTTPEndpoint) VerifyOTP(r *router.Request) (any, error) {
	var req VerifyOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.VerifyOTP(r.Context(), usecase.VerifyOTPInput{
		Token: req.Token,
		Code:  req.Code,
	})
	if err != nil {
		return nil, err
	}

	return VerifyOTPResponse{UserToken: resp.UserToken}, nil
}
