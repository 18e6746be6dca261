package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/soufianez0uhair/shopsmart-api/internal/api/metrics"
	"github.com/soufianez0uhair/shopsmart-api/internal/core/domain"
	"github.com/soufianez0uhair/shopsmart-api/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Register creates a new user account and returns a bearer token for it.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Failure      500   {object}  map[string]any
// @Router       /users/register [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user := req.toDomain()
	if err := domain.ValidateRegistration(user); err != nil {
		metrics.RegistrationFailuresTotal.WithLabelValues("validation").Inc()
		return err
	}

	token, err := h.userService.Register(c.Request().Context(), user)
	if err != nil {
		metrics.RegistrationFailuresTotal.WithLabelValues(registerFailureReason(err)).Inc()
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusCreated, authResponse{Token: token})
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]any
// @Failure      500   {object}  map[string]any
// @Router       /users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := domain.ValidateLogin(req.Email); err != nil {
		metrics.LoginFailuresTotal.WithLabelValues("validation").Inc()
		return err
	}

	token, err := h.userService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginFailuresTotal.WithLabelValues(loginFailureReason(err)).Inc()
		return err
	}

	metrics.LoginsTotal.Inc()
	return c.JSON(http.StatusOK, authResponse{Token: token})
}

// Me returns the profile of the authenticated user. The auth middleware has
// already verified the token and injected its email claim.
//
// @Summary      Current user profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	email, _ := c.Get("email").(string)
	if email == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	user, err := h.userService.Profile(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func registerFailureReason(err error) string {
	if errors.Is(err, domain.ErrEmailInUse) {
		return "email_in_use"
	}
	return "internal"
}

func loginFailureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmailNotRegistered):
		return "unknown_email"
	case errors.Is(err, domain.ErrIncorrectPassword):
		return "incorrect_password"
	default:
		return "internal"
	}
}
