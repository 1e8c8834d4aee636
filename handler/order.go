package handler

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"wedding_invitation/constants"
	"wedding_invitation/database"
	"wedding_invitation/model"
	"wedding_invitation/payment"
	"wedding_invitation/utils"
	"wedding_invitation/vnpay"
)

type orderStatus struct {
	OrderID        string `json:"orderId"`
	Status         string `json:"status"`
	Amount         int64  `json:"amount"`
	TemplateID     uint   `json:"templateId"`
	ResponseCode   string `json:"responseCode,omitempty"`
	Message        string `json:"message,omitempty"`
	InvitationSlug string `json:"invitationSlug,omitempty"`
}

func findOrderStatus(orderID string) (*orderStatus, error) {
	var order model.PaymentOrder
	if err := database.DB.Where("order_id = ?", orderID).First(&order).Error; err != nil {
		return nil, err
	}
	status := &orderStatus{
		OrderID:        order.OrderID,
		Status:         order.Status,
		Amount:         order.Amount,
		TemplateID:     order.TemplateID,
		ResponseCode:   order.ResponseCode,
		InvitationSlug: order.InvitationSlug,
	}
	if order.ResponseCode != "" {
		status.Message = vnpay.ResponseMessage(order.ResponseCode, order.Locale)
	}
	return status, nil
}

func GetOrderStatus(c *fiber.Ctx) error {
	status, err := findOrderStatus(c.Params("orderId"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, status)
}

// OrderStatusWebsocket sub kênh Redis trước, sau đó mới gửi trạng thái hiện tại
// rồi forward các thay đổi cho tới khi đơn PAID
func OrderStatusWebsocket(c *websocket.Conn) {
	orderID := c.Params("orderId")
	defer c.Close()

	if deps.Notifier == nil {
		if status, err := findOrderStatus(orderID); err != nil {
			_ = c.WriteJSON(fiber.Map{"error": constants.ERROR_NOT_FOUND})
		} else {
			_ = c.WriteJSON(status)
		}
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Sub kênh Redis và chờ xác nhận, event publish sau thời điểm này không bị mất
	pubsub := deps.Notifier.Subscribe(ctx, orderID)
	defer pubsub.Close()
	if _, err := pubsub.Receive(ctx); err != nil {
		zap.L().Warn("subscribe payment status", zap.String("orderId", orderID), zap.Error(err))
		_ = c.WriteJSON(fiber.Map{"error": constants.ERROR_INTERNAL_ERROR})
		return
	}

	status, err := findOrderStatus(orderID)
	if err != nil {
		_ = c.WriteJSON(fiber.Map{"error": constants.ERROR_NOT_FOUND})
		return
	}
	if err := c.WriteJSON(status); err != nil {
		return
	}
	if status.Status == constants.ORDER_PAID {
		return
	}

	// client đóng kết nối thì dừng
	go func() {
		defer cancel()
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	channel := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-channel:
			if !ok {
				return
			}
			if err := c.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				zap.L().Debug("websocket write", zap.String("orderId", orderID), zap.Error(err))
				return
			}
			var event payment.StatusEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err == nil && event.Status == constants.ORDER_PAID {
				return
			}
		}
	}
}
