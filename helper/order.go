package helper

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"wedding_invitation/constants"
	"wedding_invitation/model"
)

const PendingOrderTTL = 15 * time.Minute

var orderScheduler gocron.Scheduler

// NewOrderID tạo mã tham chiếu gửi sang VNPay: TEMPLATE_<templateId>_<unix>_<rand>
func NewOrderID(templateID uint, now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("TEMPLATE_%d_%d_%s", templateID, now.Unix(), suffix)
}

// ExpirePendingOrders marks PENDING orders created before cutoff as
// EXPIRED. A late successful callback can still confirm them.
func ExpirePendingOrders(db *gorm.DB, cutoff time.Time) (int64, error) {
	result := db.Model(&model.PaymentOrder{}).
		Where("status = ? AND created_at < ?", constants.ORDER_PENDING, cutoff).
		Update("status", constants.ORDER_EXPIRED)
	return result.RowsAffected, result.Error
}

func StartOrderExpiryScheduler(db *gorm.DB) error {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("ICT", 7*3600)),
	)
	if err != nil {
		return err
	}

	_, err = s.NewJob(
		gocron.DurationJob(time.Minute),
		gocron.NewTask(func() {
			n, err := ExpirePendingOrders(db, time.Now().Add(-PendingOrderTTL))
			if err != nil {
				zap.L().Error("[CRON] expire pending orders failed", zap.Error(err))
				return
			}
			if n > 0 {
				zap.L().Info("[CRON] expired pending orders", zap.Int64("count", n))
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	orderScheduler = s
	s.Start()
	zap.L().Info("Order expiry scheduler started (every 1 minute)")
	return nil
}

func StopOrderExpiryScheduler() {
	if orderScheduler != nil {
		if err := orderScheduler.Shutdown(); err != nil {
			zap.L().Warn("order scheduler shutdown", zap.Error(err))
		}
	}
}
