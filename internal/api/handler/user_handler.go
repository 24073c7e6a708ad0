package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/userdesk/user-api/internal/api/metrics"
	"github.com/userdesk/user-api/internal/core/domain"
	"github.com/userdesk/user-api/internal/core/ports"
)

// UserHandler handles HTTP requests for user lifecycle operations.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type messageResponse struct {
	Message string `json:"message"`
}

// List handles GET /api/users.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userResponse
// @Failure      401  {object}  messageResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponses(users))
}

// Create handles POST /api/users.
//
// @Summary      Create a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      userRequest  true  "User fields including plaintext password"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.service.Create(c.Request().Context(), req.toInput(0)); err != nil {
		switch {
		case errors.Is(err, domain.ErrUsernameExists):
			metrics.UsersCreatedTotal.WithLabelValues("conflict").Inc()
		default:
			metrics.UsersCreatedTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.UsersCreatedTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "User created successfully"})
}

// Get handles GET /api/users/:id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      400  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	user, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Update handles PUT /api/users/:id.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int          true  "User id"
// @Param        body  body      userRequest  true  "User fields"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req userRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.service.Update(c.Request().Context(), req.toInput(id)); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.UsersUpdatedTotal.WithLabelValues("not_found").Inc()
		} else {
			metrics.UsersUpdatedTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.UsersUpdatedTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "User updated successfully"})
}

// Delete handles DELETE /api/users/:id. Deleting a missing id still returns
// 200; the store's delete is idempotent.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  messageResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteByID(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.UsersDeletedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "User deleted"})
}

// Me handles GET /api/user — the authenticated caller's own record.
//
// @Summary      Get the authenticated caller's record
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  messageResponse
// @Router       /api/user [get]
func (h *UserHandler) Me(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	user, err := h.service.GetByUsername(c.Request().Context(), username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}
