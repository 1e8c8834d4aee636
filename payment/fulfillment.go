package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"wedding_invitation/constants"
	"wedding_invitation/helper"
	"wedding_invitation/model"
	"wedding_invitation/utils"
	"wedding_invitation/vnpay"
)

var ict = time.FixedZone("ICT", 7*3600)

type Mailer interface {
	SendInvitationReady(to string, data utils.InvitationReadyData)
}

// Fulfillment applies verified gateway callbacks to payment orders. The
// return redirect and the IPN may both deliver the same transaction; only
// the delivery that flips the order to PAID creates the invitation.
type Fulfillment struct {
	DB          *gorm.DB
	Notifier    Publisher
	Mailer      Mailer
	FrontendURL string
	Now         func() time.Time
}

// Result đi kèm Outcome, có order sau khi xử lý (nếu tìm thấy)
type Result struct {
	Outcome Outcome
	Order   *model.PaymentOrder
}

func (f *Fulfillment) now() time.Time {
	if f.Now != nil {
		return f.Now()
	}
	return time.Now()
}

func (f *Fulfillment) InvitationLink(slug string) string {
	return f.FrontendURL + "/wedding/" + slug
}

func (f *Fulfillment) Apply(ctx context.Context, result vnpay.VerificationResult) (Result, error) {
	if !result.IsValid {
		return Result{Outcome: OutcomeInvalidSignature}, nil
	}

	orderID := result.OrderID()
	if orderID == "" {
		return Result{Outcome: OutcomeOrderNotFound}, nil
	}

	db := f.DB.WithContext(ctx)

	var order model.PaymentOrder
	if err := db.Preload("Template").Where("order_id = ?", orderID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Result{Outcome: OutcomeOrderNotFound}, nil
		}
		return Result{}, fmt.Errorf("load order %s: %w", orderID, err)
	}

	amount, err := vnpay.ParseAmount(result.Data["vnp_Amount"])
	if err != nil || amount != order.Amount {
		zap.L().Warn("vnpay amount mismatch",
			zap.String("orderId", orderID),
			zap.Int64("expected", order.Amount),
			zap.String("received", result.Data["vnp_Amount"]))
		return Result{Outcome: OutcomeAmountMismatch, Order: &order}, nil
	}

	if order.Status == constants.ORDER_PAID {
		return Result{Outcome: OutcomeAlreadyConfirmed, Order: &order}, nil
	}

	if !result.IsSuccess {
		return f.markFailed(ctx, db, &order, result)
	}
	return f.confirm(ctx, db, &order, result)
}

func (f *Fulfillment) markFailed(ctx context.Context, db *gorm.DB, order *model.PaymentOrder, result vnpay.VerificationResult) (Result, error) {
	res := db.Model(&model.PaymentOrder{}).
		Where("order_id = ? AND status <> ?", order.OrderID, constants.ORDER_PAID).
		Updates(map[string]any{
			"status":         constants.ORDER_FAILED,
			"response_code":  result.ResponseCode(),
			"transaction_no": result.Data["vnp_TransactionNo"],
		})
	if res.Error != nil {
		return Result{}, fmt.Errorf("mark order %s failed: %w", order.OrderID, res.Error)
	}
	if res.RowsAffected == 0 {
		return f.alreadyConfirmed(db, order)
	}

	order.Status = constants.ORDER_FAILED
	order.ResponseCode = result.ResponseCode()
	zap.L().Info("vnpay payment failed",
		zap.String("orderId", order.OrderID),
		zap.String("responseCode", order.ResponseCode))

	f.publish(ctx, StatusEvent{OrderID: order.OrderID, Status: order.Status})
	return Result{Outcome: OutcomeFailed, Order: order}, nil
}

func (f *Fulfillment) confirm(ctx context.Context, db *gorm.DB, order *model.PaymentOrder, result vnpay.VerificationResult) (Result, error) {
	now := f.now()
	var payDate *time.Time
	if t, err := vnpay.ParseDate(result.Data["vnp_PayDate"], ict); err == nil {
		payDate = &t
	}

	won := false
	var invitation model.WeddingInvitation

	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.PaymentOrder{}).
			Where("order_id = ? AND status <> ?", order.OrderID, constants.ORDER_PAID).
			Updates(map[string]any{
				"status":         constants.ORDER_PAID,
				"response_code":  result.ResponseCode(),
				"transaction_no": result.Data["vnp_TransactionNo"],
				"bank_tran_no":   result.Data["vnp_BankTranNo"],
				"pay_date":       payDate,
				"paid_at":        now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}

		orderID := order.OrderID
		created, err := helper.CreateWeddingInvitation(tx, order.TemplateID, order.Fields, &orderID)
		if err != nil {
			return err
		}
		invitation = *created

		if err := tx.Model(&model.PaymentOrder{}).
			Where("order_id = ?", order.OrderID).
			Update("invitation_slug", invitation.Slug).Error; err != nil {
			return err
		}

		won = true
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("confirm order %s: %w", order.OrderID, err)
	}
	if !won {
		return f.alreadyConfirmed(db, order)
	}

	order.Status = constants.ORDER_PAID
	order.ResponseCode = result.ResponseCode()
	order.TransactionNo = result.Data["vnp_TransactionNo"]
	order.BankTranNo = result.Data["vnp_BankTranNo"]
	order.PayDate = payDate
	order.PaidAt = &now
	order.InvitationSlug = invitation.Slug

	zap.L().Info("vnpay payment confirmed",
		zap.String("orderId", order.OrderID),
		zap.String("transactionNo", order.TransactionNo),
		zap.String("slug", invitation.Slug))

	f.publish(ctx, StatusEvent{OrderID: order.OrderID, Status: order.Status, InvitationSlug: invitation.Slug})

	if f.Mailer != nil {
		data := utils.InvitationReadyData{
			OrderID:   order.OrderID,
			GroomName: invitation.GroomName,
			BrideName: invitation.BrideName,
			Amount:    order.Amount,
			Link:      f.InvitationLink(invitation.Slug),
		}
		if order.Template != nil {
			data.TemplateName = order.Template.Name
		}
		f.Mailer.SendInvitationReady(order.Email, data)
	}

	return Result{Outcome: OutcomeConfirmed, Order: order}, nil
}

// alreadyConfirmed đọc lại order khi callback khác đã commit PAID trước,
// để caller thấy được invitation_slug của bản ghi đã commit
func (f *Fulfillment) alreadyConfirmed(db *gorm.DB, order *model.PaymentOrder) (Result, error) {
	var committed model.PaymentOrder
	if err := db.Preload("Template").Where("order_id = ?", order.OrderID).First(&committed).Error; err != nil {
		return Result{}, fmt.Errorf("reload order %s: %w", order.OrderID, err)
	}
	return Result{Outcome: OutcomeAlreadyConfirmed, Order: &committed}, nil
}

func (f *Fulfillment) publish(ctx context.Context, event StatusEvent) {
	if f.Notifier == nil {
		return
	}
	if err := f.Notifier.Publish(ctx, event); err != nil {
		zap.L().Warn("publish payment status", zap.String("orderId", event.OrderID), zap.Error(err))
	}
}
