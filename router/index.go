package router

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"wedding_invitation/handler"
	"wedding_invitation/middleware"
	"wedding_invitation/validate"
)

func SetupRoutes(app *fiber.App) {
	// return URL đăng ký với VNPay
	app.Get("/vnpay/return", handler.VNPayReturn)

	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1")

	auth := v1.Group("/auth")
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Post("/logout", handler.Logout)

	vnpay := v1.Group("/vnpay")
	vnpay.Post("/create-payment", validate.CreateVNPayPayment(), handler.CreateVNPayPayment)
	vnpay.Post("/verify-return", handler.VerifyVNPayReturn)
	vnpay.Get("/ipn", handler.VNPayIPN)
	vnpay.Post("/ipn", handler.VNPayIPN)
	vnpay.Get("/bank-codes", handler.GetBankCodes)

	orders := v1.Group("/orders")
	orders.Get("/:orderId", handler.GetOrderStatus)
	orders.Use("/:orderId/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	orders.Get("/:orderId/ws", websocket.New(handler.OrderStatusWebsocket))

	templates := v1.Group("/templates")
	templates.Get("/", handler.GetTemplates)
	templates.Get("/:templateId", validate.GetById("templateId"), handler.GetTemplateById)

	invitations := v1.Group("/wedding-invitations")
	invitations.Get("/", middleware.Protected(), middleware.AdminOnly(), handler.GetWeddingInvitations)
	invitations.Post("/", validate.CreateWeddingInvitation(), handler.CreateWeddingInvitation)
	invitations.Get("/:slug", handler.GetWeddingInvitation)
	invitations.Put("/:slug", validate.UpdateWeddingInvitation(), handler.UpdateWeddingInvitation)
	invitations.Delete("/:slug", middleware.Protected(), middleware.AdminOnly(), handler.DeleteWeddingInvitation)

	currency := v1.Group("/currency")
	currency.Get("/convert", handler.ConvertVndToEth)
	currency.Get("/rates", handler.GetCurrencyRates)
}
