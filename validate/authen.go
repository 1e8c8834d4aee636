package validate

import (
	"github.com/gofiber/fiber/v2"

	"wedding_invitation/model"
)

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.LoginInput
		if ok, err := parseBody(c, &input); !ok {
			return err
		}

		c.Locals("input", input)
		return c.Next()
	}
}
