package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fitengage/gym-manager/internal/api/metrics"
	"github.com/fitengage/gym-manager/internal/core/domain"
	"github.com/fitengage/gym-manager/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a staff account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest   true  "User registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  envelope
// @Failure      409   {object}  envelope
// @Failure      500   {object}  envelope
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid payload.")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, registerResponse{envelope: succeeded, UserID: id})
}

// Login verifies credentials and opens a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  envelope
// @Failure      401   {object}  envelope
// @Failure      429   {object}  envelope
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid payload.")
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		} else {
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		envelope:     succeeded,
		User:         result.User,
		SessionToken: result.SessionToken,
	})
}

// CheckSession resolves a session token to its user.
//
// @Summary      Check a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      tokenRequest  true  "Session token"
// @Success      200   {object}  userResponse
// @Failure      401   {object}  envelope
// @Router       /auth/session/check [post]
func (h *AuthHandler) CheckSession(c echo.Context) error {
	token := h.token(c)
	user, err := h.authService.CheckSession(c.Request().Context(), token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{envelope: succeeded, User: user})
}

// Logout deletes the session. Unknown tokens are not an error.
//
// @Summary      Logout
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      tokenRequest  false  "Session token (or Authorization header)"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token := h.token(c)
	if token == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Session token is required.")
	}
	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, succeeded)
}

// ActiveSession returns the most recent session so a desktop client can sign
// back in silently. The body is null when nobody is signed in.
//
// @Summary      Most recent session (desktop mode)
// @Tags         auth
// @Produce      json
// @Success      200  {object}  activeSessionResponse
// @Router       /auth/session/active [get]
func (h *AuthHandler) ActiveSession(c echo.Context) error {
	session, err := h.authService.ActiveSession(c.Request().Context())
	if err != nil {
		return err
	}
	if session == nil {
		return c.JSON(http.StatusOK, nil)
	}
	return c.JSON(http.StatusOK, activeSessionResponse{UserID: session.UserID, SessionToken: session.Token})
}

// Profile returns a user's public fields.
//
// @Summary      Get a user profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  userResponse
// @Failure      401  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /users/{id} [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	user, err := h.authService.Profile(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{envelope: succeeded, User: user})
}

// token reads the session token from the JSON body, falling back to the
// Authorization header.
func (h *AuthHandler) token(c echo.Context) string {
	var req tokenRequest
	if c.Request().ContentLength != 0 {
		_ = c.Bind(&req)
	}
	if req.Token != "" {
		return req.Token
	}
	return BearerToken(c)
}
