package validate

import (
	"github.com/gofiber/fiber/v2"

	"wedding_invitation/constants"
	"wedding_invitation/model"
	"wedding_invitation/utils"
)

func CreateWeddingInvitation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateWeddingInvitationInput
		if ok, err := parseBody(c, &input); !ok {
			return err
		}
		if err := requireCoupleNames(input.Fields); err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT, err, "fields")
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func UpdateWeddingInvitation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateWeddingInvitationInput
		if ok, err := parseBody(c, &input); !ok {
			return err
		}

		c.Locals("input", input)
		return c.Next()
	}
}
