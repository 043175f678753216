package instrument

import (
	"context"
	"log/slog"
	"testing"
	"time"
)

type captureHandler struct {
	records []slog.Record
}

func (c *captureHandler) Enabled(context.Context, slog.Level) bool { return true }

func (c *captureHandler) Handle(_ context.Context, r slog.Record) error {
	c.records = append(c.records, r)
	return nil
}

func (c *captureHandler) WithAttrs([]slog.Attr) slog.Handler { return c }
func (c *captureHandler) WithGroup(string) slog.Handler      { return c }

func recordAttrs(r slog.Record) map[string]slog.Value {
	attrs := make(map[string]slog.Value)
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value
		return true
	})
	return attrs
}

func TestMaskHandlerRedactsConfiguredKeys(t *testing.T) {
	capture := &captureHandler{}
	h := &maskHandler{handler: capture, maskKeys: buildMaskKeys([]string{"password", " Code "})}

	rec := slog.NewRecord(time.Now(), slog.LevelInfo, "login", 0)
	rec.AddAttrs(
		slog.String("identifier", "jane@example.com"),
		slog.String("Password", "hunter2"),
		slog.String("code", "123456"),
	)

	if err := h.Handle(context.Background(), rec); err != nil {
		t.Fatalf("handle: %v", err)
	}

	attrs := recordAttrs(capture.records[0])
	if got := attrs["identifier"].String(); got != "jane@example.com" {
		t.Errorf("identifier = %q, want untouched", got)
	}
	if got := attrs["Password"].String(); got != "***" {
		t.Errorf("Password = %q, want ***", got)
	}
	if got := attrs["code"].String(); got != "***" {
		t.Errorf("code = %q, want ***", got)
	}
}

func TestContextHandlerAddsCorrelationID(t *testing.T) {
	capture := &captureHandler{}
	h := &contextHandler{Handler: capture, serviceName: "gatekit"}

	ctx := SetCorrelationID(context.Background(), "cid-123")
	rec := slog.NewRecord(time.Now(), slog.LevelInfo, "hello", 0)

	if err := h.Handle(ctx, rec); err != nil {
		t.Fatalf("handle: %v", err)
	}

	attrs := recordAttrs(capture.records[0])
	if got := attrs["_cID"].String(); got != "cid-123" {
		t.Errorf("_cID = %q, want cid-123", got)
	}
	if got := attrs["service"].String(); got != "gatekit" {
		t.Errorf("service = %q, want gatekit", got)
	}
}

func TestGetCorrelationIDMissing(t *testing.T) {
	if got := GetCorrelationID(context.Background()); got != "" {
		t.Errorf("GetCorrelationID = %q, want empty", got)
	}
}
