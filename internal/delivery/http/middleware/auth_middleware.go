package middleware

import (
	"errors"
	"strings"

	"jobhunt/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const (
	CtxUserIDKey = "user_id"
	CtxEmailKey  = "email"
)

type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

// Middleware accepts access tokens only and stores the caller's id and email
// in Locals.
func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, appErr := m.authenticate(c.Get("Authorization"))
		if appErr != nil {
			return appErr
		}

		c.Locals(CtxUserIDKey, claims.UserID)
		c.Locals(CtxEmailKey, claims.Email)
		return c.Next()
	}
}

func (m *AuthMiddleware) authenticate(header string) (jwt.Claims, *AppError) {
	token, ok := BearerToken(header)
	if !ok {
		return jwt.Claims{}, NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	if m == nil || m.jwt == nil {
		return jwt.Claims{}, NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	claims, err := m.jwt.ValidateToken(token)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return jwt.Claims{}, NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
	case err != nil:
		return jwt.Claims{}, NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
	}

	if claims.TokenType != jwt.TokenTypeAccess || m.jwt.IsRefreshToken(claims) || claims.UserID == uuid.Nil {
		return jwt.Claims{}, NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, nil)
	}
	return claims, nil
}

// BearerToken extracts the token of an "Authorization: Bearer <token>" header.
func BearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// UserID returns the authenticated user id, or uuid.Nil outside protected routes.
func UserID(c fiber.Ctx) uuid.UUID {
	id, ok := c.Locals(CtxUserIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}

func Email(c fiber.Ctx) string {
	email, _ := c.Locals(CtxEmailKey).(string)
	return email
}
