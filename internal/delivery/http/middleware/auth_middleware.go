// Package middleware contains the HTTP middleware for the application.
package middleware

import (
	"strings"

	"homiio/config"
	"homiio/internal/delivery/http/response"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const profileIDKey = "profileID"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	cfg *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{cfg: cfg}
}

// Authenticate validates the bearer token and puts the profile ID on the
// request context. Every saved-property route is scoped to this profile.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "AUTHENTICATION_REQUIRED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "AUTHENTICATION_REQUIRED", "Invalid token format, must be Bearer token")
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.Errorf("unexpected signing method: %v", token.Header["alg"])
			}

			return []byte(m.cfg.SecretKey.Access), nil
		})
		if err != nil || !token.Valid {
			return response.Unauthorized(c, "AUTHENTICATION_REQUIRED", "Invalid or expired token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return response.Unauthorized(c, "AUTHENTICATION_REQUIRED", "Failed to parse token claims")
		}

		profileIDStr, ok := claims["sub"].(string)
		if !ok {
			return response.Unauthorized(c, "AUTHENTICATION_REQUIRED", "Profile ID missing from token")
		}
		profileID, err := uuid.Parse(profileIDStr)
		if err != nil {
			return response.Unauthorized(c, "AUTHENTICATION_REQUIRED", "Invalid profile ID format in token")
		}

		c.Set(profileIDKey, profileID)

		return next(c)
	}
}

// GetProfileID returns the authenticated profile ID set by Authenticate.
func GetProfileID(c echo.Context) (uuid.UUID, bool) {
	profileID, ok := c.Get(profileIDKey).(uuid.UUID)

	return profileID, ok
}
