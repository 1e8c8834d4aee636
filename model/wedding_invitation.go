package model

import "gorm.io/datatypes"

type WeddingInvitation struct {
	DTO
	Slug         string            `gorm:"uniqueIndex;size:255;not null" json:"slug"`
	TemplateID   uint              `gorm:"not null" json:"templateId"`
	Template     *Template         `json:"template,omitempty"`
	OrderID      *string           `gorm:"uniqueIndex;size:100" json:"orderId,omitempty"` // null với thiệp tạo thủ công
	GroomName    string            `gorm:"size:255" json:"groomName"`
	BrideName    string            `gorm:"size:255" json:"brideName"`
	Fields       datatypes.JSONMap `json:"fields"`
	CustomValues datatypes.JSONMap `json:"customValues,omitempty"`
	Status       string            `gorm:"size:20;default:published" json:"status"` // draft, published
}

type CreateWeddingInvitationInput struct {
	TemplateID uint           `json:"templateId" validate:"required,gt=0"`
	Fields     map[string]any `json:"fields" validate:"required"`
}

type UpdateWeddingInvitationInput struct {
	CustomValues map[string]any `json:"customValues"`
	Status       string         `json:"status" validate:"omitempty,invitation_status"`
}

type GetWeddingInvitationQuery struct {
	Fields   bool `query:"fields"`
	Template bool `query:"template"`
	QR       bool `query:"qr"`
}

type WeddingInvitationFilter struct {
	Pagination
	Status *string `query:"status"`
}

// WeddingInvitationDetail là response của GET /wedding-invitations/:slug
type WeddingInvitationDetail struct {
	DTO
	Slug         string            `json:"slug"`
	TemplateID   uint              `json:"templateId"`
	Template     *Template         `json:"template,omitempty"`
	OrderID      *string           `json:"orderId,omitempty"`
	GroomName    string            `json:"groomName"`
	BrideName    string            `json:"brideName"`
	Fields       datatypes.JSONMap `json:"fields,omitempty"`
	CustomValues datatypes.JSONMap `json:"customValues,omitempty"`
	Status       string            `json:"status"`
	Link         string            `json:"link"`
	QRCode       string            `json:"qrCode,omitempty"`
}
