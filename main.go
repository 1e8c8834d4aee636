package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"wedding_invitation/config"
	"wedding_invitation/currency"
	"wedding_invitation/database"
	"wedding_invitation/handler"
	"wedding_invitation/helper"
	"wedding_invitation/logger"
	"wedding_invitation/payment"
	"wedding_invitation/router"
	"wedding_invitation/utils"
	"wedding_invitation/vnpay"
)

func main() {
	if _, err := logger.InitLogger(config.LoadLogger()); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	vnpayConfig := config.LoadVNPay()
	vnpayService, err := vnpay.New(vnpayConfig)
	if err != nil {
		zap.L().Fatal("invalid VNPay configuration", zap.Error(err))
	}
	zap.L().Info("VNPay configured", zap.Stringer("config", vnpayConfig))

	database.ConnectDB()

	redisClient := redis.NewClient(&redis.Options{Addr: config.RedisAddr()})
	defer redisClient.Close()
	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		zap.L().Warn("redis unavailable, order status push disabled until it recovers", zap.Error(err))
	}
	cancel()

	notifier := payment.NewRedisNotifier(redisClient)
	converter := currency.NewConverter()
	frontendURL := config.FrontendURL()

	fulfillment := &payment.Fulfillment{
		DB:          database.DB,
		Notifier:    notifier,
		Mailer:      utils.SMTPMailer{Config: config.LoadSMTP()},
		FrontendURL: frontendURL,
	}

	handler.Setup(handler.Deps{
		VNPay:       vnpayService,
		Fulfillment: fulfillment,
		Converter:   converter,
		Notifier:    notifier,
		FrontendURL: frontendURL,
	})

	if err := helper.StartOrderExpiryScheduler(database.DB); err != nil {
		zap.L().Fatal("failed to start order scheduler", zap.Error(err))
	}
	defer helper.StopOrderExpiryScheduler()
	helper.StartRateScheduler(converter)
	defer helper.StopRateScheduler()

	app := fiber.New(fiber.Config{
		BodyLimit: 4 * 1024 * 1024,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     frontendURL,
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	router.SetupRoutes(app)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		zap.L().Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			zap.L().Error("shutdown", zap.Error(err))
		}
	}()

	if err := app.Listen(":" + config.Port()); err != nil {
		zap.L().Error("server stopped", zap.Error(err))
	}
}
