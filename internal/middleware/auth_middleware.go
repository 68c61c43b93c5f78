package middleware

import (
	"strings"

	"lingopath/internal/logger"
	"lingopath/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	TokenCookieName     = "token"

	// Keys for fiber.Ctx locals
	UserIDKey    = "userID"
	UserEmailKey = "userEmail"
	UserNameKey  = "userName"
)

// Credential sources, in resolution order.
const (
	CredentialSourceHeader = "header"
	CredentialSourceCookie = "cookie"
	CredentialSourceNone   = "none"
)

// ResolveCredential extracts the bearer token from the request. The
// Authorization header wins over the cookie when both are present; the
// cookie exists for browser clients that cannot attach headers.
func ResolveCredential(c *fiber.Ctx) (string, string) {
	authHeader := c.Get(AuthorizationHeader)
	if strings.HasPrefix(authHeader, BearerSchema) {
		if token := strings.TrimPrefix(authHeader, BearerSchema); token != "" {
			return token, CredentialSourceHeader
		}
	}
	if token := c.Cookies(TokenCookieName); token != "" {
		return token, CredentialSourceCookie
	}
	return "", CredentialSourceNone
}

// Protected is a middleware function that protects routes by requiring a
// valid JWT. It validates the token using the provided AuthService and sets
// the user identity in the context locals.
func Protected(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, source := ResolveCredential(c)
		if source == CredentialSourceNone {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "MISSING_CREDENTIALS",
				Message: "Authentication required",
				Status:  fiber.StatusUnauthorized,
			})
		}

		claims, err := authService.ValidateJWT(c.Context(), tokenString)
		if err != nil {
			logger.Get().Debug("JWT validation failed",
				zap.Error(err),
				zap.String("source", source))
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "INVALID_TOKEN",
				Message: "Invalid or expired token",
				Status:  fiber.StatusUnauthorized,
			})
		}

		c.Locals(UserIDKey, claims.UserID)
		c.Locals(UserEmailKey, claims.Email)
		c.Locals(UserNameKey, claims.Name)

		return c.Next()
	}
}

// OptionalAuth authenticates the user when a valid token is present and
// proceeds as anonymous otherwise. Useful for endpoints whose response is
// merely enriched by identity.
func OptionalAuth(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, source := ResolveCredential(c)
		if source == CredentialSourceNone {
			return c.Next()
		}

		claims, err := authService.ValidateJWT(c.Context(), tokenString)
		if err != nil {
			logger.Get().Debug("OptionalAuth: JWT validation failed, proceeding as anonymous",
				zap.Error(err),
				zap.String("source", source))
			return c.Next()
		}

		c.Locals(UserIDKey, claims.UserID)
		c.Locals(UserEmailKey, claims.Email)
		c.Locals(UserNameKey, claims.Name)

		return c.Next()
	}
}
