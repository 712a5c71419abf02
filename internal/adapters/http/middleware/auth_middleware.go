package middleware

import (
	"errors"
	"strings"

	"swiftpay/internal/config"
	"swiftpay/internal/pkg/jwt"
	"swiftpay/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware gates protected operations behind a valid identity
// assertion. The token is read from the secure cookie first, then from the
// Authorization header; validity is proven by signature and expiry alone,
// no session lookup.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accessToken := extractToken(c)
		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		claims, err := jwt.ValidateAccessToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		c.Locals("userID", claims.UserID)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}

// extractToken reads the token from the cookie, falling back to a bearer
// header. The cookie takes precedence when both are present.
func extractToken(c *fiber.Ctx) string {
	if token := c.Cookies("access_token"); token != "" {
		return token
	}

	authHeader := c.Get("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// RoleMiddleware creates role-based authorization middleware
func RoleMiddleware(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		for _, allowedRole := range allowedRoles {
			if role == allowedRole {
				return c.Next()
			}
		}

		return response.Forbidden(c, "You don't have permission to access this resource")
	}
}

// EmployeeOnly middleware allows only the employee role
func EmployeeOnly() fiber.Handler {
	return RoleMiddleware("employee")
}

// CustomerOnly middleware allows only the customer role
func CustomerOnly() fiber.Handler {
	return RoleMiddleware("customer")
}
