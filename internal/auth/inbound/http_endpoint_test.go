package inbound

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shandysiswandi/gatekit/internal/auth/usecase"
	"github.com/shandysiswandi/gatekit/internal/pkg/config"
	"github.com/shandysiswandi/gatekit/internal/pkg/goerror"
	"github.com/shandysiswandi/gatekit/internal/pkg/instrument"
	"github.com/shandysiswandi/gatekit/internal/pkg/router"
	"github.com/shandysiswandi/gatekit/internal/pkg/uid"
)

type fakeUC struct {
	registerOut *usecase.RegisterOutput
	loginOut    *usecase.LoginOutput
	verifyOut   *usecase.VerifyOTPOutput
	err         error
}

func (f *fakeUC) Register(context.Context, usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	return f.registerOut, f.err
}

func (f *fakeUC) Login(context.Context, usecase.LoginInput) (*usecase.LoginOutput, error) {
	return f.loginOut, f.err
}

func (f *fakeUC) VerifyOTP(context.Context, usecase.VerifyOTPInput) (*usecase.VerifyOTPOutput, error) {
	return f.verifyOut, f.err
}

func serve(t *testing.T, uc uc, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte("app: {}"))
	if err != nil {
		t.Fatalf("config: %v", err)
	}

	r := router.NewRouter(router.Config{
		Config:     cfg,
		UUID:       uid.NewUUID(),
		Instrument: instrument.NewNoop(),
	})
	RegisterHTTPEndpoint(r, uc)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, strings.NewReader(body)))

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return rec, resp
}

func TestRegisterEndpoint(t *testing.T) {
	_, resp := serve(t, &fakeUC{registerOut: &usecase.RegisterOutput{UserToken: "tok-1"}},
		"/api/v1/auth/register",
		`{"name":"Jane","email":"jane@example.com","phone":"555","password":"p"}`)

	if resp["success"] != true {
		t.Fatalf("success = %v, want true", resp["success"])
	}
	data := resp["data"].(map[string]any)
	if data["user_token"] != "tok-1" {
		t.Fatalf("user_token = %v, want tok-1", data["user_token"])
	}
}

func TestLoginEndpointOTPChallenge(t *testing.T) {
	_, resp := serve(t, &fakeUC{loginOut: &usecase.LoginOutput{
		OTPRequired: true,
		OTPToken:    "otp-tok",
		OTPCode:     "123456",
		OTPLength:   6,
	}}, "/api/v1/auth/login", `{"identifier":"jane@example.com","password":"p"}`)

	data := resp["data"].(map[string]any)
	if data["otp_token"] != "otp-tok" || data["otp_code"] != "123456" {
		t.Fatalf("unexpected challenge payload: %v", data)
	}
	if data["otp_length"] != float64(6) {
		t.Fatalf("otp_length = %v, want 6", data["otp_length"])
	}
	if _, ok := data["user_id"]; ok {
		t.Fatal("user_id must be omitted on a challenge response")
	}
}

func TestLoginEndpointTerminal(t *testing.T) {
	_, resp := serve(t, &fakeUC{loginOut: &usecase.LoginOutput{UserID: "uid-1"}},
		"/api/v1/auth/login", `{"identifier":"jane@example.com","password":"p"}`)

	data := resp["data"].(map[string]any)
	if data["user_id"] != "uid-1" {
		t.Fatalf("user_id = %v, want uid-1", data["user_id"])
	}
	if _, ok := data["otp_token"]; ok {
		t.Fatal("otp fields must be omitted on a terminal response")
	}
}

func TestVerifyOTPEndpointError(t *testing.T) {
	rec, resp := serve(t, &fakeUC{err: goerror.NewBusiness("Invalid OTP", goerror.CodeUnauthorized)},
		"/api/v1/auth/otp/verify", `{"token":"t","code":"000000"}`)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if resp["success"] != false || resp["error"] != "Invalid OTP" {
		t.Fatalf("unexpected error envelope: %v", resp)
	}
}

func TestEndpointIgnoresUnknownBodyKeys(t *testing.T) {
	_, resp := serve(t, &fakeUC{registerOut: &usecase.RegisterOutput{UserToken: "tok-1"}},
		"/api/v1/auth/register",
		`{"name":"Jane","email":"jane@example.com","phone":"555","password":"p","plan":"gold"}`)

	if resp["success"] != true {
		t.Fatalf("success = %v, want true for a payload with extra keys", resp["success"])
	}
}

func TestEndpointRejectsMalformedBody(t *testing.T) {
	rec, resp := serve(t, &fakeUC{}, "/api/v1/auth/register", `{"name":`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if resp["success"] != false {
		t.Fatalf("success = %v, want false", resp["success"])
	}
}
