package validate

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"wedding_invitation/constants"
	"wedding_invitation/model"
	"wedding_invitation/utils"
	"wedding_invitation/vnpay"
)

func CreateVNPayPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateVNPayPaymentInput
		if ok, err := parseBody(c, &input); !ok {
			return err
		}

		if err := requireCoupleNames(input.Fields); err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT, err, "fields")
		}

		input.BankCode = strings.ToUpper(strings.TrimSpace(input.BankCode))
		if input.BankCode != "" && !vnpay.IsKnownBankCode(input.BankCode) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Mã ngân hàng không hợp lệ", errors.New("unknown bank code"), "bankCode")
		}

		c.Locals("input", input)
		return c.Next()
	}
}

// requireCoupleNames kiểm tra fields có tên cô dâu, chú rể dạng chuỗi
func requireCoupleNames(fields map[string]any) error {
	for _, key := range []string{constants.FIELD_GROOM_NAME, constants.FIELD_BRIDE_NAME} {
		v, ok := fields[key].(string)
		if !ok || strings.TrimSpace(v) == "" {
			return errors.New("thiếu " + key)
		}
	}
	return nil
}
