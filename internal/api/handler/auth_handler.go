package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/userdesk/user-api/internal/api/metrics"
	"github.com/userdesk/user-api/internal/core/domain"
	"github.com/userdesk/user-api/internal/core/ports"
)

const defaultTokenTTL = 24 * time.Hour

// AuthHandler issues bearer tokens for the identity middleware. Credential
// verification goes through the lifecycle service and the hasher; no
// plaintext ever leaves this handler.
type AuthHandler struct {
	service   ports.UserService
	hasher    ports.PasswordHasher
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthHandler(service ports.UserService, hasher ports.PasswordHasher, jwtSecret string, tokenTTL time.Duration) *AuthHandler {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthHandler{service: service, hasher: hasher, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

// Login handles POST /api/auth/login.
//
// @Summary      Login and obtain a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.GetByUsername(c.Request().Context(), req.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginAttemptsTotal.WithLabelValues("invalid").Inc()
			return domain.ErrInvalidCredentials
		}
		return err
	}

	if !h.hasher.Matches(req.Password, user.PasswordHash) {
		metrics.LoginAttemptsTotal.WithLabelValues("invalid").Inc()
		return domain.ErrInvalidCredentials
	}

	token, err := h.generateToken(user)
	if err != nil {
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, loginResponse{Token: token, User: toUserResponse(user)})
}

func (h *AuthHandler) generateToken(user *domain.User) (string, error) {
	roles := make([]string, 0, len(user.Roles))
	for _, r := range user.Roles {
		roles = append(roles, r.Name)
	}

	claims := jwt.MapClaims{
		"username": user.Username,
		"roles":    roles,
		"exp":      time.Now().Add(h.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(h.jwtSecret))
}
