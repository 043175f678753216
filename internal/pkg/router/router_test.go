package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shandysiswandi/gatekit/internal/pkg/config"
	"github.com/shandysiswandi/gatekit/internal/pkg/goerror"
	"github.com/shandysiswandi/gatekit/internal/pkg/instrument"
	"github.com/shandysiswandi/gatekit/internal/pkg/uid"
)

func newTestRouter(t *testing.T) *Router {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte("app: {}"))
	if err != nil {
		t.Fatalf("config: %v", err)
	}

	return NewRouter(Config{
		Config:     cfg,
		UUID:       uid.NewUUID(),
		Instrument: instrument.NewNoop(),
	})
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func TestRouterSuccessEnvelope(t *testing.T) {
	r := newTestRouter(t)
	r.GET("/ping", func(_ *Request) (any, error) {
		return map[string]string{"pong": "ok"}, nil
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	body := decodeBody(t, rec)
	if body["success"] != true {
		t.Errorf("success = %v, want true", body["success"])
	}
	data, ok := body["data"].(map[string]any)
	if !ok || data["pong"] != "ok" {
		t.Errorf("data = %v, want map with pong", body["data"])
	}
}

func TestRouterErrorEnvelope(t *testing.T) {
	r := newTestRouter(t)
	r.POST("/fail", func(_ *Request) (any, error) {
		return nil, goerror.NewBusiness("User not found", goerror.CodeNotFound)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/fail", strings.NewReader("{}")))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	body := decodeBody(t, rec)
	if body["success"] != false {
		t.Errorf("success = %v, want false", body["success"])
	}
	if body["error"] != "User not found" {
		t.Errorf("error = %v, want User not found", body["error"])
	}
}

func TestRouterUnknownErrorHidesCause(t *testing.T) {
	r := newTestRouter(t)
	r.GET("/boom", func(_ *Request) (any, error) {
		return nil, http.ErrBodyNotAllowed
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "Internal server error" {
		t.Errorf("error = %v, want Internal server error", body["error"])
	}
}

func TestRouterRecoversFromPanic(t *testing.T) {
	r := newTestRouter(t)
	r.GET("/panic", func(_ *Request) (any, error) {
		panic("kaboom")
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestRouterNotFound(t *testing.T) {
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestRouterCorrelationIDHeader(t *testing.T) {
	r := newTestRouter(t)
	r.GET("/cid", func(_ *Request) (any, error) {
		return map[string]string{}, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/cid", nil)
	req.Header.Set(HeaderCorrelationID, "abc-123")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if got := rec.Header().Get(HeaderCorrelationID); got != "abc-123" {
		t.Errorf("correlation header = %q, want abc-123", got)
	}
}
