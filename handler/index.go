package handler

import (
	"wedding_invitation/currency"
	"wedding_invitation/payment"
	"wedding_invitation/vnpay"
)

// Deps là các service dùng chung giữa handler, khởi tạo một lần ở main.
type Deps struct {
	VNPay       *vnpay.Service
	Fulfillment *payment.Fulfillment
	Converter   *currency.Converter
	Notifier    *payment.RedisNotifier
	FrontendURL string
}

var deps Deps

func Setup(d Deps) {
	deps = d
}
