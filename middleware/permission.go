package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// RequireRole returns a middleware that allows only users with the given
// role. It is a pure predicate over the claims verified by JWTMiddleware
// and must be mounted after it.
func RequireRole(requiredRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("userRole").(string)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized: user role not found!", nil)
		}

		if role != requiredRole {
			return JsonResponse(c, fiber.StatusForbidden, false, fmt.Sprintf("Access denied. %ss only!", requiredRole), nil)
		}

		// Role matches, proceed
		return c.Next()
	}
}
