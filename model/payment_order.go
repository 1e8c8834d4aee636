package model

import (
	"time"

	"gorm.io/datatypes"
)

// PaymentOrder là một lần thanh toán template, khoá duy nhất theo OrderID
// (vnp_TxnRef gửi sang VNPay).
type PaymentOrder struct {
	DTO
	OrderID        string            `gorm:"uniqueIndex;size:100;not null" json:"orderId"`
	TemplateID     uint              `gorm:"not null" json:"templateId"`
	Template       *Template         `json:"template,omitempty"`
	Amount         int64             `gorm:"not null" json:"amount"` // VND
	Method         string            `gorm:"size:20" json:"method"`
	Status         string            `gorm:"size:20;index;default:PENDING" json:"status"` // PENDING, PAID, FAILED, EXPIRED
	BankCode       string            `gorm:"size:20" json:"bankCode"`
	Locale         string            `gorm:"size:5" json:"locale"`
	Email          string            `gorm:"size:255" json:"email,omitempty"`
	Fields         datatypes.JSONMap `json:"fields"`
	ResponseCode   string            `gorm:"size:5" json:"responseCode,omitempty"`
	TransactionNo  string            `gorm:"size:50" json:"transactionNo,omitempty"`
	BankTranNo     string            `gorm:"size:50" json:"bankTranNo,omitempty"`
	PayDate        *time.Time        `json:"payDate,omitempty"`
	PaidAt         *time.Time        `json:"paidAt,omitempty"`
	InvitationSlug string            `gorm:"size:255" json:"invitationSlug,omitempty"`
}
