package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/pharmatrack/inventory-system/internal/core/domain"
	"github.com/pharmatrack/inventory-system/internal/core/ports"
)

type stubAuthService struct {
	loginResult *ports.LoginResult
	loginErr    error
	registered  *ports.RegisterInput
	registerErr error
}

func (s *stubAuthService) Login(_ context.Context, username, password string) (*ports.LoginResult, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.loginResult, nil
}

func (s *stubAuthService) Register(_ context.Context, input ports.RegisterInput) (*domain.Account, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	s.registered = &input
	return &domain.Account{ID: 2, Username: input.Username, Role: input.Role}, nil
}

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func setActor(c echo.Context, id int64, username, role string) {
	c.Set("id", id)
	c.Set("username", username)
	c.Set("role", role)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	svc := &stubAuthService{loginResult: &ports.LoginResult{
		Token: "tok123", Username: "alice", Role: domain.RoleAdmin,
	}}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/api/auth/login", `{"username":"alice","password":"pw"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["token"] != "tok123" || resp["role"] != "admin" || resp["username"] != "alice" {
		t.Fatalf("unexpected response: %v", resp)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(http.MethodPost, "/api/auth/login", `{"username":"alice"}`)
	err := h.Login(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Login_BadCredentialsPassThrough(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials})

	c, _ := newTestContext(http.MethodPost, "/api/auth/login", `{"username":"alice","password":"wrong"}`)
	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials to reach the error handler, got %v", err)
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/api/auth/register", `{"username":"bob","password":"pass1","role":"cashier"}`)
	setActor(c, 1, "admin", "admin")

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.registered == nil || svc.registered.Requester.Username != "admin" {
		t.Fatalf("register input must carry the requesting admin, got %+v", svc.registered)
	}
}

func TestAuthHandler_Register_InvalidRole(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(http.MethodPost, "/api/auth/register", `{"username":"bob","password":"pass1","role":"superuser"}`)
	setActor(c, 1, "admin", "admin")

	err := h.Register(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad role, got %v", err)
	}
}

func TestAuthHandler_Register_DuplicatePassThrough(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{registerErr: domain.ErrAccountExists})

	c, _ := newTestContext(http.MethodPost, "/api/auth/register", `{"username":"bob","password":"pass1","role":"cashier"}`)
	setActor(c, 1, "admin", "admin")

	if err := h.Register(c); err != domain.ErrAccountExists {
		t.Fatalf("expected ErrAccountExists to reach the error handler, got %v", err)
	}
}

func TestAuthHandler_Register_MissingClaims(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(http.MethodPost, "/api/auth/register", `{"username":"bob","password":"pass1","role":"cashier"}`)

	err := h.Register(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without auth claims, got %v", err)
	}
}
