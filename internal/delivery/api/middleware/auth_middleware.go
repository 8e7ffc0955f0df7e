package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"smartdine/internal/delivery/api/response"
	deliverycontext "smartdine/internal/delivery/context"
	"smartdine/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID = "userID"
	contextKeyRoles  = "roles"
)

// AuthMiddleware resolves the caller's identity from a bearer access token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		claims, code, message := m.parse(authHeader)
		if claims == nil {
			return response.Unauthorized(c, code, message)
		}

		setIdentity(c, claims)

		return next(c)
	}
}

// AuthenticateRole is Authenticate followed by RequireRole(role).
func (m *AuthMiddleware) AuthenticateRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return m.Authenticate(RequireRole(role)(next))
	}
}

// RequireRole rejects authenticated callers whose token does not carry role.
// It must run after Authenticate.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !slices.Contains(GetRoles(c), role) {
				return response.Forbidden(c, "FORBIDDEN", "Token lacks the required role")
			}

			return next(c)
		}
	}
}

// OptionalAuthenticate attaches the caller's identity when a valid token is present
// and lets anonymous requests through. A malformed or expired token is still rejected.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return next(c)
		}

		claims, code, message := m.parse(authHeader)
		if claims == nil {
			return response.Unauthorized(c, code, message)
		}

		setIdentity(c, claims)

		return next(c)
	}
}

func (m *AuthMiddleware) parse(authHeader string) (claims *service.Claims, code, message string) {
	tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || strings.TrimSpace(tokenString) == "" {
		return nil, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token"
	}

	claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(tokenString))
	if err != nil || claims.UserID <= 0 {
		return nil, "INVALID_TOKEN", "Invalid or expired token"
	}

	return claims, "", ""
}

func setIdentity(c echo.Context, claims *service.Claims) {
	c.Set(contextKeyUserID, claims.UserID)
	c.Set(contextKeyRoles, claims.Roles)
	deliverycontext.EnrichLogger(c, slog.Int64("user_id", claims.UserID))
}

// GetUserID returns the authenticated caller's user ID.
func GetUserID(c echo.Context) (int64, bool) {
	userID, ok := c.Get(contextKeyUserID).(int64)

	return userID, ok && userID > 0
}

// GetRoles returns the authenticated caller's roles.
func GetRoles(c echo.Context) []string {
	roles, _ := c.Get(contextKeyRoles).([]string)

	return roles
}
