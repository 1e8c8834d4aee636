package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"wedding_invitation/constants"
	"wedding_invitation/helper"
	"wedding_invitation/utils"
)

func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")

		if token == "" {
			// check header Authorization: Bearer xxx
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing token", errors.New("no token"))
		}

		jwtToken, err := helper.ParseToken(token)
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", err)
		}

		c.Locals("user", jwtToken)
		return c.Next()
	}
}

// AdminOnly phải đặt sau Protected
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claim, ok := helper.GetInfoAccountFromToken(c)
		if !ok || claim.Role != constants.ROLE_ADMIN {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ERROR_UNAUTHORIZED, errors.New("admin role required"))
		}
		return c.Next()
	}
}
