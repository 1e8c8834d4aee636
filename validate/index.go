package validate

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"wedding_invitation/constants"
	"wedding_invitation/utils"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("invitation_status", func(fl validator.FieldLevel) bool {
		return IsInvitationStatus(fl.Field().String())
	})
	return v
}

func IsInvitationStatus(status string) bool {
	return slices.Contains(constants.INVITATION_STATUSES, status)
}

func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil || valueKey <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		// Save input to context locals
		c.Locals("inputId", valueKey)

		// Continue to next handler
		return c.Next()
	}
}

// parseBody đọc body vào input rồi validate theo tag. ok=false nghĩa là
// response lỗi đã được ghi, handler trả về err luôn.
func parseBody(c *fiber.Ctx, input any) (ok bool, err error) {
	if err := c.BodyParser(input); err != nil {
		return false, utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT, fmt.Errorf("invalid input %s", err.Error()))
	}
	if err := validate.Struct(input); err != nil {
		return false, utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT, err)
	}
	return true, nil
}
