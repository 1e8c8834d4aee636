package helper

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// RateRefresher is satisfied by currency.Converter.
type RateRefresher interface {
	Refresh(ctx context.Context) error
}

var rateScheduler *cron.Cron

// StartRateScheduler làm mới tỷ giá mỗi 5 phút để request không phải chờ API ngoài
func StartRateScheduler(r RateRefresher) {
	rateScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := rateScheduler.AddFunc("*/5 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := r.Refresh(ctx); err != nil {
			zap.L().Warn("[CRON] refresh currency rates", zap.Error(err))
		}
	})
	if err != nil {
		zap.L().Error("Lỗi khởi tạo scheduler tỷ giá", zap.Error(err))
		return
	}

	rateScheduler.Start()
	zap.L().Info("Rate scheduler started (every 5 minutes)")
}

func StopRateScheduler() {
	if rateScheduler != nil {
		rateScheduler.Stop()
	}
}
