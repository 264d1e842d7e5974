package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"id":       float64(7),
		"username": "alice",
		"role":     "admin",
		"exp":      time.Now().Add(ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func runAuth(t *testing.T, header string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(testSecret)
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return c, handler(c)
}

func assertUnauthorized(t *testing.T, err error) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", he.Code)
	}
}

func TestAuth_ValidTokenInjectsClaims(t *testing.T) {
	token := signToken(t, testSecret, time.Hour)
	c, err := runAuth(t, "Bearer "+token)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if id, _ := c.Get("id").(int64); id != 7 {
		t.Fatalf("expected id 7, got %v", c.Get("id"))
	}
	if c.Get("username") != "alice" {
		t.Fatalf("expected username alice, got %v", c.Get("username"))
	}
	if c.Get("role") != "admin" {
		t.Fatalf("expected role admin, got %v", c.Get("role"))
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	_, err := runAuth(t, "")
	assertUnauthorized(t, err)
}

func TestAuth_MalformedHeader(t *testing.T) {
	_, err := runAuth(t, "Basic abc123")
	assertUnauthorized(t, err)
}

func TestAuth_ExpiredToken(t *testing.T) {
	// Correctly signed but past its expiry: still 401.
	token := signToken(t, testSecret, -time.Minute)
	_, err := runAuth(t, "Bearer "+token)
	assertUnauthorized(t, err)
}

func TestAuth_WrongSignature(t *testing.T) {
	token := signToken(t, "other-secret", time.Hour)
	_, err := runAuth(t, "Bearer "+token)
	assertUnauthorized(t, err)
}

func TestAuth_GarbageToken(t *testing.T) {
	_, err := runAuth(t, "Bearer not.a.token")
	assertUnauthorized(t, err)
}
