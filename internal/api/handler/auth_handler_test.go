package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/careerhub/job-board-api/internal/core/domain"
	"github.com/careerhub/job-board-api/internal/core/ports"
)

type stubAuthService struct {
	registerResult *ports.AuthResult
	registerErr    error
	loginResult    *ports.AuthResult
	loginErr       error
}

func (s *stubAuthService) Register(_ context.Context, _ ports.RegisterInput) (*ports.AuthResult, error) {
	return s.registerResult, s.registerErr
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (*ports.AuthResult, error) {
	return s.loginResult, s.loginErr
}

func newAuthContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func TestAuthHandler_Register(t *testing.T) {
	svc := &stubAuthService{
		registerResult: &ports.AuthResult{
			Token: "jwt-token",
			User:  &domain.User{ID: "user_1", Name: "Jane", Email: "jane@example.com", Role: domain.RoleUser},
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newAuthContext(`{"name":"Jane","email":"jane@example.com","password":"secret1"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("register: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	body := decodeEnvelope(t, rec)
	if body["success"] != true {
		t.Errorf("expected success envelope, got %v", body)
	}
	data, _ := body["data"].(map[string]any)
	if data["token"] != "jwt-token" {
		t.Errorf("expected token in response, got %v", data)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Errorf("password material leaked into response: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"email":"jane@example.com","password":"secret1"}`},
		{"bad email", `{"name":"Jane","email":"not-an-email","password":"secret1"}`},
		{"short password", `{"name":"Jane","email":"jane@example.com","password":"abc"}`},
		{"malformed json", `{"name":`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newAuthContext(tc.body)
			err := h.Register(c)
			httpErr, ok := err.(*echo.HTTPError)
			if !ok {
				t.Fatalf("expected *echo.HTTPError, got %v", err)
			}
			if httpErr.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", httpErr.Code)
			}
		})
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{registerErr: domain.ErrUserExists})

	c, _ := newAuthContext(`{"name":"Jane","email":"jane@example.com","password":"secret1"}`)
	err := h.Register(c)
	// Domain errors pass through untouched so the central error handler can
	// map them to status codes.
	if err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists passthrough, got %v", err)
	}
}

func TestAuthHandler_Login(t *testing.T) {
	svc := &stubAuthService{
		loginResult: &ports.AuthResult{
			Token: "jwt-token",
			User:  &domain.User{ID: "user_1", Email: "jane@example.com", Role: domain.RoleUser},
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newAuthContext(`{"email":"jane@example.com","password":"secret1"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := decodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]any)
	if data["token"] != "jwt-token" {
		t.Errorf("expected token in response, got %v", data)
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials})

	c, _ := newAuthContext(`{"email":"jane@example.com","password":"wrong"}`)
	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials passthrough, got %v", err)
	}
}
