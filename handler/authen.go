package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"wedding_invitation/config"
	"wedding_invitation/constants"
	"wedding_invitation/helper"
	"wedding_invitation/model"
	"wedding_invitation/utils"
)

// Login cho admin, tài khoản lấy từ ADMIN_USERNAME / ADMIN_PASSWORD_HASH
func Login(c *fiber.Ctx) error {
	input := c.Locals("input").(model.LoginInput)

	if !helper.CheckAdminCredentials(input.Username, input.Password) {
		zap.L().Warn("admin login failed", zap.String("username", input.Username), zap.String("ip", helper.ClientIP(c)))
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Sai tên đăng nhập hoặc mật khẩu", errors.New("invalid credentials"))
	}

	token, err := helper.GenerateAccessToken(model.TokenClaim{
		Username: input.Username,
		Role:     constants.ROLE_ADMIN,
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// set access token vào HTTPOnly cookie
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "Lax",
		Secure:   config.AppEnv() == "production",
		Path:     "/",
	})

	return utils.SuccessResponse(c, fiber.StatusOK, model.TokenData{AccessToken: token})
}

func Logout(c *fiber.Ctx) error {
	c.ClearCookie("access_token")
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "logout success"})
}
