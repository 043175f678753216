package goerror

import (
	"errors"
	"net/http"
	"testing"
)

func TestNewBusiness(t *testing.T) {
	err := NewBusiness("User already exists", CodeConflict)

	var gerr *Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if gerr.Msg() != "User already exists" {
		t.Fatalf("unexpected message: %q", gerr.Msg())
	}
	if gerr.Type() != TypeBusiness {
		t.Fatalf("unexpected type: %v", gerr.Type())
	}
	if gerr.StatusCode() != http.StatusConflict {
		t.Fatalf("unexpected status code: %d", gerr.StatusCode())
	}
}

func TestNewServer(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewServer(cause)

	var gerr *Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if gerr.Msg() != "Internal server error" {
		t.Fatalf("server errors must not leak the cause, got %q", gerr.Msg())
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected the cause to be wrapped")
	}
	if gerr.StatusCode() != http.StatusInternalServerError {
		t.Fatalf("unexpected status code: %d", gerr.StatusCode())
	}
}

func TestStatusCodeMapping(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeInvalidFormat, http.StatusBadRequest},
		{CodeInvalidInput, http.StatusUnprocessableEntity},
		{CodeNotFound, http.StatusNotFound},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeConflict, http.StatusConflict},
		{CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		err := NewBusiness("x", tt.code)

		var gerr *Error
		if !errors.As(err, &gerr) {
			t.Fatalf("expected *Error, got %T", err)
		}
		if got := gerr.StatusCode(); got != tt.want {
			t.Fatalf("code %v: got status %d, want %d", tt.code, got, tt.want)
		}
	}
}
