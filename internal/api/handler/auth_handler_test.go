package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/userdesk/user-api/internal/core/domain"
	"github.com/userdesk/user-api/internal/infrastructure/hash"
)

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	hasher := hash.NewBcryptHasher(bcrypt.MinCost)
	stored, err := hasher.Hash("s3cret")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	svc := &stubUserService{
		getByUsernameFn: func(_ context.Context, username string) (*domain.User, error) {
			if username != "carol" {
				t.Fatalf("unexpected username: %q", username)
			}
			return &domain.User{
				ID:           3,
				Username:     "carol",
				PasswordHash: stored,
				Roles:        []domain.Role{{ID: domain.RoleAdminID, Name: domain.RoleAdmin}},
			}, nil
		},
	}
	h := NewAuthHandler(svc, hasher, "secret", time.Hour)

	body := strings.NewReader(`{"username":"carol","password":"s3cret"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("expected token in response")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["username"] != "carol" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	roles, _ := claims["roles"].([]any)
	if len(roles) != 1 || roles[0] != domain.RoleAdmin {
		t.Fatalf("unexpected roles claim: %+v", claims["roles"])
	}
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	e := newTestEcho()
	hasher := hash.NewBcryptHasher(bcrypt.MinCost)
	stored, _ := hasher.Hash("right")

	svc := &stubUserService{
		getByUsernameFn: func(context.Context, string) (*domain.User, error) {
			return &domain.User{Username: "carol", PasswordHash: stored}, nil
		},
	}
	h := NewAuthHandler(svc, hasher, "secret", time.Hour)

	body := strings.NewReader(`{"username":"carol","password":"wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_UnknownUser(t *testing.T) {
	// An unknown username yields the same failure as a wrong password, so the
	// endpoint cannot be used to enumerate accounts.
	e := newTestEcho()
	hasher := hash.NewBcryptHasher(bcrypt.MinCost)

	svc := &stubUserService{
		getByUsernameFn: func(context.Context, string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewAuthHandler(svc, hasher, "secret", time.Hour)

	body := strings.NewReader(`{"username":"ghost","password":"pw"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_Validation(t *testing.T) {
	e := newTestEcho()
	h := NewAuthHandler(&stubUserService{
		getByUsernameFn: func(context.Context, string) (*domain.User, error) {
			t.Fatalf("service must not be called on validation failure")
			return nil, nil
		},
	}, hash.NewBcryptHasher(bcrypt.MinCost), "secret", time.Hour)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Login(c)
	var he *echo.HTTPError
	if err == nil || !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}
