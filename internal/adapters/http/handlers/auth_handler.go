package handlers

import (
	"errors"
	"strings"
	"time"

	"cultura-cupping/internal/config"
	"cultura-cupping/internal/core/domain"
	"cultura-cupping/internal/core/services"
	"cultura-cupping/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	accountService *services.AccountService
	cfg            *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(accountService *services.AccountService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		accountService: accountService,
		cfg:            cfg,
	}
}

// GuestRequest represents guest login request body
type GuestRequest struct {
	Name string `json:"name"`
}

// Register handles account registration
// @Summary Register new account
// @Description Register a new cupper account; returns every violated rule at once
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.RegisterInput true "Registration form"
// @Success 201 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req services.RegisterInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	result, err := h.accountService.Register(c.Context(), &req)
	if err != nil {
		var regErr *domain.RegistrationError
		if errors.As(err, &regErr) {
			return response.ValidationFailed(c, "Registration failed", regErr.Violations)
		}
		return response.InternalServerError(c, "Failed to register account")
	}

	h.setAuthCookies(c, result.AccessToken, result.RefreshToken)

	return response.Created(c, "Account registered successfully", fiber.Map{
		"access_token": result.AccessToken,
		"account":      result.Account,
	})
}

// Login handles login
// @Summary Login
// @Description Authenticate with email and password; the demo account uses its fixed credential
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.LoginInput true "Login credentials"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req services.LoginInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if strings.TrimSpace(req.Email) == "" {
		return response.BadRequest(c, "Email is required")
	}
	if req.Password == "" {
		return response.BadRequest(c, "Password is required")
	}

	result, err := h.accountService.Authenticate(c.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "No account with that email")
		case errors.Is(err, domain.ErrInvalidPassword):
			return response.Unauthorized(c, "Invalid email or password")
		default:
			return response.InternalServerError(c, "Failed to login")
		}
	}

	h.setAuthCookies(c, result.AccessToken, result.RefreshToken)

	return response.Success(c, "Login successful", fiber.Map{
		"access_token": result.AccessToken,
		"account":      result.Account,
	})
}

// Guest handles guest login
// @Summary Continue as guest
// @Description Create an ephemeral guest identity; always succeeds
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body GuestRequest false "Optional guest name"
// @Success 200 {object} response.Response
// @Router /auth/guest [post]
func (h *AuthHandler) Guest(c *fiber.Ctx) error {
	var req GuestRequest
	// Body is optional for guests
	_ = c.BodyParser(&req)

	result, err := h.accountService.Guest(c.Context(), req.Name)
	if err != nil {
		return response.InternalServerError(c, "Failed to start guest session")
	}

	h.setAuthCookies(c, result.AccessToken, result.RefreshToken)

	return response.Success(c, "Guest session started", fiber.Map{
		"access_token": result.AccessToken,
		"account":      result.Account,
	})
}

// RefreshToken handles token refresh
// @Summary Refresh access token
// @Description Rotate the refresh token and issue a new pair
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	refreshToken := c.Cookies("refresh_token")
	if refreshToken == "" {
		return response.Unauthorized(c, "Refresh token not found")
	}

	result, err := h.accountService.Refresh(c.Context(), refreshToken)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTokenExpired):
			h.clearAuthCookies(c)
			return response.Unauthorized(c, "Refresh token expired")
		case errors.Is(err, services.ErrTokenRevoked):
			h.clearAuthCookies(c)
			return response.Unauthorized(c, "Refresh token revoked")
		default:
			h.clearAuthCookies(c)
			return response.Unauthorized(c, "Invalid refresh token")
		}
	}

	h.setAuthCookies(c, result.AccessToken, result.RefreshToken)

	return response.Success(c, "Token refreshed", fiber.Map{
		"access_token": result.AccessToken,
		"account":      result.Account,
	})
}

// Logout handles logout
// @Summary Logout
// @Description Revoke the refresh token and clear the active identity and working flavor selection
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	refreshToken := c.Cookies("refresh_token")

	if err := h.accountService.Logout(c.Context(), refreshToken); err != nil {
		return response.InternalServerError(c, "Failed to logout")
	}

	h.clearAuthCookies(c)

	return response.Success(c, "Logged out", nil)
}

// LogoutAll revokes all refresh tokens of the current account
// @Summary Logout everywhere
// @Description Revoke every refresh token of the current account
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /auth/logout-all [post]
func (h *AuthHandler) LogoutAll(c *fiber.Ctx) error {
	accountID, ok := c.Locals("accountID").(string)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	if err := h.accountService.LogoutAll(c.Context(), accountID); err != nil {
		return response.InternalServerError(c, "Failed to revoke sessions")
	}

	h.clearAuthCookies(c)

	return response.Success(c, "All sessions revoked", nil)
}

// Me returns the current account
// @Summary Current account
// @Description Return the account behind the access token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	accountID, ok := c.Locals("accountID").(string)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	account, err := h.accountService.GetByID(c.Context(), accountID)
	if err != nil {
		return response.NotFound(c, "Account not found")
	}

	return response.Success(c, "", services.NewAccountResponse(account))
}

// setAuthCookies sets the token cookies
func (h *AuthHandler) setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Expires:  time.Now().Add(time.Duration(h.cfg.JWT.AccessTokenMins) * time.Minute),
		HTTPOnly: true,
		Secure:   h.cfg.Cookie.Secure,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Expires:  time.Now().Add(time.Duration(h.cfg.JWT.RefreshTokenDays) * 24 * time.Hour),
		HTTPOnly: true,
		Secure:   h.cfg.Cookie.Secure,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
		Path:     "/",
	})
}

// clearAuthCookies expires the token cookies
func (h *AuthHandler) clearAuthCookies(c *fiber.Ctx) {
	for _, name := range []string{"access_token", "refresh_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
			Secure:   h.cfg.Cookie.Secure,
			SameSite: h.cfg.Cookie.SameSite,
			Domain:   h.cfg.Cookie.Domain,
			Path:     "/",
		})
	}
}
