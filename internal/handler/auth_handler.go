package handler

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"lingopath/internal/config"
	"lingopath/internal/domain"
	"lingopath/internal/dto"
	"lingopath/internal/logger"
	"lingopath/internal/middleware"
	"lingopath/internal/service"
	"lingopath/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const oauthStateCookieName = "oauthstate"

// AuthHandler serves registration, login and profile endpoints.
type AuthHandler struct {
	authService service.AuthService
	validator   *validation.Validator
	appConfig   *config.Config
}

func NewAuthHandler(authService service.AuthService, validator *validation.Validator, appConfig *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator,
		appConfig:   appConfig,
	}
}

// Register creates a new account with email and password.
// @Summary Register a new user
// @Description Creates a password account, sets the auth cookie and returns a token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration payload"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} middleware.ValidationErrorResponse "Validation failed"
// @Failure 409 {object} middleware.ErrorResponse "Email already registered"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.ValidateRegisterRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.authService.Register(c.Context(), &req)
	if err != nil {
		return err
	}

	h.setAuthCookie(c, resp.Token)
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login authenticates an existing account.
// @Summary Log in
// @Description Verifies credentials, sets the auth cookie and returns a token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login payload"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} middleware.ValidationErrorResponse "Validation failed"
// @Failure 401 {object} middleware.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.ValidateLoginRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.authService.Login(c.Context(), &req)
	if err != nil {
		return err
	}

	h.setAuthCookie(c, resp.Token)
	return c.JSON(resp)
}

// Logout clears the auth cookie. The JWT itself stays valid until expiry;
// header-based clients simply drop their copy.
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.appConfig.Cookie.Secure,
		SameSite: "None",
		Domain:   h.appConfig.Cookie.Domain,
		Path:     "/",
	})
	return c.JSON(dto.MessageResponse{Message: "Logged out"})
}

// Profile returns the authenticated user's account.
// @Summary Get current user profile
// @Tags auth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} middleware.ErrorResponse "Not authenticated"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.UserIDKey).(string)
	resp, err := h.authService.GetProfile(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GoogleLogin initiates the Google OAuth2 login flow.
// @Summary Initiate Google login
// @Description Redirects the user to Google's OAuth2 consent page.
// @Tags auth
// @Success 307 {string} string "Redirects to Google"
// @Router /auth/google/login [get]
func (h *AuthHandler) GoogleLogin(c *fiber.Ctx) error {
	appLogger := logger.Get()
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		appLogger.Error("Failed to generate random state for OAuth", zap.Error(err))
		return domain.NewInternalError("could not start OAuth flow", err)
	}
	state := base64.URLEncoding.EncodeToString(b)

	c.Cookie(&fiber.Cookie{
		Name:     oauthStateCookieName,
		Value:    state,
		Expires:  time.Now().Add(10 * time.Minute),
		HTTPOnly: true,
		Secure:   c.Secure(),
		SameSite: "Lax",
		Path:     "/",
	})

	return c.Redirect(h.authService.GetGoogleLoginURL(state), fiber.StatusTemporaryRedirect)
}

// GoogleCallback handles the callback from Google OAuth2.
// @Summary Google OAuth2 callback
// @Description Verifies the state, upserts the user and issues a platform token.
// @Tags auth
// @Param code query string true "Authorization code from Google"
// @Param state query string true "State string for CSRF protection"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} middleware.ErrorResponse "Invalid state or code"
// @Router /auth/google/callback [get]
func (h *AuthHandler) GoogleCallback(c *fiber.Ctx) error {
	appLogger := logger.Get()
	code := c.Query("code")
	receivedState := c.Query("state")
	expectedState := c.Cookies(oauthStateCookieName)

	// One-shot state; clear it regardless of outcome.
	c.Cookie(&fiber.Cookie{
		Name:     oauthStateCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   c.Secure(),
		SameSite: "Lax",
		Path:     "/",
	})

	if code == "" {
		return domain.NewInvalidInputError("authorization code is missing")
	}
	if receivedState == "" || expectedState == "" || receivedState != expectedState {
		appLogger.Warn("OAuth state mismatch", zap.String("received", receivedState))
		return domain.NewInvalidInputError("OAuth state mismatch or missing")
	}

	token, user, err := h.authService.HandleGoogleCallback(c.Context(), code)
	if err != nil {
		appLogger.Error("Failed to handle Google callback", zap.Error(err))
		return domain.NewInternalError("error processing Google login", err)
	}

	h.setAuthCookie(c, token)
	return c.JSON(dto.AuthResponse{
		Message: "Login successful",
		User:    dto.UserResponse{ID: user.ID, Email: user.Email, Name: user.Name},
		Token:   token,
	})
}

// setAuthCookie stores the JWT for browser clients. SameSite=None with the
// Secure flag so the SPA can call the API cross-origin.
func (h *AuthHandler) setAuthCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    token,
		Expires:  time.Now().Add(h.appConfig.JWT.TokenTTL),
		HTTPOnly: true,
		Secure:   h.appConfig.Cookie.Secure,
		SameSite: "None",
		Domain:   h.appConfig.Cookie.Domain,
		Path:     "/",
	})
}
