package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestRequestIDGeneratesWhenMissing(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var captured string
	handler := RequestID()(func(c echo.Context) error {
		captured = GetRequestID(c)
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler: %v", err)
	}

	if captured == "" {
		t.Error("request ID should be generated when the header is absent")
	}
	if got := rec.Header().Get(RequestIDHeader); got != captured {
		t.Errorf("response header = %q, want %q", got, captured)
	}
}

func TestRequestIDReusesIncomingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error { return nil })
	if err := handler(c); err != nil {
		t.Fatalf("handler: %v", err)
	}

	if got := GetRequestID(c); got != "abc-123" {
		t.Errorf("request ID = %q, want %q", got, "abc-123")
	}
	if got := rec.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("response header = %q, want %q", got, "abc-123")
	}
}

func TestGetRequestIDUnset(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	if got := GetRequestID(c); got != "" {
		t.Errorf("request ID = %q, want empty", got)
	}
}
