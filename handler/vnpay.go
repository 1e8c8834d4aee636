package handler

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"wedding_invitation/constants"
	"wedding_invitation/database"
	"wedding_invitation/helper"
	"wedding_invitation/model"
	"wedding_invitation/payment"
	"wedding_invitation/utils"
	"wedding_invitation/vnpay"
)

func CreateVNPayPayment(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateVNPayPaymentInput)

	// Giá lấy từ template, không tin amount phía client
	var template model.Template
	if err := database.DB.Where("id = ? AND is_active = ?", input.TemplateID, true).First(&template).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Template không tồn tại", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if template.PriceAmount <= 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Template miễn phí, không cần thanh toán", nil)
	}

	bankCode := input.BankCode
	if bankCode == "" {
		bankCode = vnpay.DefaultBankCode
	}
	locale := input.Locale
	if locale == "" {
		locale = vnpay.LocaleVN
	}

	order := model.PaymentOrder{
		OrderID:    helper.NewOrderID(template.ID, time.Now()),
		TemplateID: template.ID,
		Amount:     template.PriceAmount,
		Method:     constants.PAYMENT_METHOD_VNPAY,
		Status:     constants.ORDER_PENDING,
		BankCode:   bankCode,
		Locale:     locale,
		Email:      input.Email,
		Fields:     input.Fields,
	}
	if err := database.DB.Create(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể tạo đơn thanh toán", err)
	}

	paymentURL := deps.VNPay.CreatePaymentURL(vnpay.PaymentRequest{
		Amount:           order.Amount,
		OrderDescription: fmt.Sprintf("Thanh toan template %s - %s", template.Slug, order.OrderID),
		OrderID:          order.OrderID,
		ClientIP:         helper.ClientIP(c),
		BankCode:         bankCode,
		Locale:           locale,
	})

	zap.L().Info("vnpay payment url created",
		zap.String("orderId", order.OrderID),
		zap.Int64("amount", order.Amount),
		zap.String("bankCode", bankCode),
		zap.String("gateway", deps.VNPay.GatewayURL()))

	return utils.SuccessResponse(c, fiber.StatusOK, model.CreateVNPayPaymentResponse{
		Success:    true,
		PaymentURL: paymentURL,
		OrderID:    order.OrderID,
		Amount:     order.Amount,
	})
}

// VerifyVNPayReturn nhận params trang return gửi lên (JSON) và trả về kết quả verify.
func VerifyVNPayReturn(c *fiber.Ctx) error {
	body := map[string]any{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(vnpay.VerificationResult{
			Message: "Lỗi xác thực dữ liệu thanh toán",
		})
	}

	result := deps.VNPay.VerifyReturnURL(vnpay.StringifyParams(body))
	if result.IsValid {
		if _, err := deps.Fulfillment.Apply(c.UserContext(), result); err != nil {
			zap.L().Error("apply vnpay return", zap.String("orderId", result.OrderID()), zap.Error(err))
		}
	}
	return c.JSON(result)
}

// VNPayReturn là return URL đăng ký với VNPay: verify, cập nhật đơn rồi chuyển về frontend
func VNPayReturn(c *fiber.Ctx) error {
	query, err := url.ParseQuery(string(c.Request().URI().QueryString()))
	if err != nil {
		return c.Redirect(deps.FrontendURL+"/payment-failed?reason="+url.QueryEscape(constants.ERROR_INVALID_INPUT), fiber.StatusFound)
	}

	result := deps.VNPay.VerifyQuery(query)
	if !result.IsValid {
		zap.L().Warn("vnpay return with invalid signature", zap.String("txnRef", query.Get("vnp_TxnRef")))
		return c.Redirect(deps.FrontendURL+"/payment-failed?reason="+url.QueryEscape(result.Message), fiber.StatusFound)
	}

	res, err := deps.Fulfillment.Apply(c.UserContext(), result)
	if err != nil {
		zap.L().Error("apply vnpay return", zap.String("orderId", result.OrderID()), zap.Error(err))
	}

	if result.IsSuccess && res.Order != nil && res.Order.InvitationSlug != "" {
		return c.Redirect(fmt.Sprintf("%s/payment-success?orderId=%s&slug=%s",
			deps.FrontendURL, url.QueryEscape(result.OrderID()), url.QueryEscape(res.Order.InvitationSlug)), fiber.StatusFound)
	}
	return c.Redirect(fmt.Sprintf("%s/payment-failed?orderId=%s&reason=%s",
		deps.FrontendURL, url.QueryEscape(result.OrderID()), url.QueryEscape(result.Message)), fiber.StatusFound)
}

// VNPayIPN nhận IPN server-to-server. VNPay có thể gọi GET (query) hoặc POST (JSON/form).
func VNPayIPN(c *fiber.Ctx) error {
	params, err := ipnParams(c)
	if err != nil {
		zap.L().Warn("vnpay ipn unreadable", zap.Error(err))
		return c.JSON(payment.IPNError())
	}

	result := deps.VNPay.VerifyReturnURL(params)
	res, err := deps.Fulfillment.Apply(c.UserContext(), result)
	if err != nil {
		zap.L().Error("vnpay ipn", zap.String("orderId", result.OrderID()), zap.Error(err))
		return c.JSON(payment.IPNError())
	}

	zap.L().Info("vnpay ipn",
		zap.String("orderId", result.OrderID()),
		zap.String("responseCode", result.ResponseCode()),
		zap.Stringer("outcome", res.Outcome))
	return c.JSON(res.Outcome.IPNResponse())
}

func ipnParams(c *fiber.Ctx) (map[string]string, error) {
	if c.Method() == fiber.MethodGet {
		query, err := url.ParseQuery(string(c.Request().URI().QueryString()))
		if err != nil {
			return nil, err
		}
		return vnpay.Flatten(query), nil
	}

	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		body := map[string]any{}
		if err := c.BodyParser(&body); err != nil {
			return nil, err
		}
		return vnpay.StringifyParams(body), nil
	}

	query, err := url.ParseQuery(string(c.Body()))
	if err != nil {
		return nil, err
	}
	return vnpay.Flatten(query), nil
}

type bankCode struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func GetBankCodes(c *fiber.Ctx) error {
	codes := vnpay.BankCodes()
	list := make([]bankCode, 0, len(codes))
	for code, name := range codes {
		list = append(list, bankCode{Code: code, Name: name})
	}
	sort.Slice(list, func(i, j int) bool {
		// VNPAYQR luôn đứng đầu
		if list[i].Code == vnpay.DefaultBankCode || list[j].Code == vnpay.DefaultBankCode {
			return list[i].Code == vnpay.DefaultBankCode
		}
		return list[i].Code < list[j].Code
	})
	return utils.SuccessResponse(c, fiber.StatusOK, list)
}
