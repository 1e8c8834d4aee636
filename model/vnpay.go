package model

type CreateVNPayPaymentInput struct {
	TemplateID uint           `json:"templateId" validate:"required,gt=0"`
	Fields     map[string]any `json:"fields" validate:"required"`
	BankCode   string         `json:"bankCode" validate:"omitempty,max=20"`
	Locale     string         `json:"locale" validate:"omitempty,oneof=vn en"`
	Email      string         `json:"email" validate:"omitempty,email"`
}

type CreateVNPayPaymentResponse struct {
	Success    bool   `json:"success"`
	PaymentURL string `json:"paymentUrl"`
	OrderID    string `json:"orderId"`
	Amount     int64  `json:"amount"`
}

// IPNResponse là body trả về cho VNPay ở endpoint IPN.
type IPNResponse struct {
	RspCode string `json:"RspCode"`
	Message string `json:"Message"`
}
