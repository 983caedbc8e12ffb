package middleware

import (
	"strings"

	"closecart/config"
	"closecart/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"closecart/internal/delivery/http/response"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyUserID = "userID"
	ContextKeyShopID = "shopID"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cfg: cfg}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		token, err := m.tokenSvc.ValidateToken(tokenString, m.cfg.SecretKey.Access)
		if err != nil || !token.Valid {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return response.Unauthorized(c, "UNAUTHORIZED", "Failed to parse token claims")
		}

		// Refresh tokens must not pass as access tokens.
		if tokenType, _ := claims["type"].(string); tokenType != "access" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Token is not an access token")
		}

		userIDStr, ok := claims["sub"].(string)
		if !ok {
			return response.Unauthorized(c, "UNAUTHORIZED", "User ID missing from token")
		}
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID format in token")
		}

		shopIDStr, ok := claims["shopId"].(string)
		if !ok {
			return response.Unauthorized(c, "UNAUTHORIZED", "Shop ID missing from token")
		}
		shopID, err := uuid.Parse(shopIDStr)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid shop ID format in token")
		}

		// Set identity on the context for handlers to use
		c.Set(ContextKeyUserID, userID)
		c.Set(ContextKeyShopID, shopID)

		return next(c)
	}
}

// UserID returns the authenticated user ID set by Authenticate.
func UserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ContextKeyUserID).(uuid.UUID)

	return id, ok
}

// ShopID returns the authenticated shop ID set by Authenticate.
func ShopID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ContextKeyShopID).(uuid.UUID)

	return id, ok
}
