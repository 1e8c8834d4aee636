package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"wedding_invitation/utils"
)

// ConvertVndToEth: GET /currency/convert?vnd=2000000
func ConvertVndToEth(c *fiber.Ctx) error {
	vnd, err := strconv.ParseFloat(c.Query("vnd"), 64)
	if err != nil || vnd <= 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Số tiền VND không hợp lệ", err)
	}

	result, err := deps.Converter.ConvertVndToEth(c.UserContext(), vnd)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Lỗi chuyển đổi tiền tệ", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, result)
}

func GetCurrencyRates(c *fiber.Ctx) error {
	rates, err := deps.Converter.Rates(c.UserContext())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Lỗi lấy tỷ giá", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, rates)
}
