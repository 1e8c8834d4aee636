package helper

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"wedding_invitation/constants"
	"wedding_invitation/model"
)

func fieldString(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}

// CreateWeddingInvitation lưu thiệp mới với slug duy nhất. Tên cô dâu/chú rể
// trong fields được làm sạch trước khi lưu. orderID nil cho thiệp miễn phí.
func CreateWeddingInvitation(tx *gorm.DB, templateID uint, fields map[string]any, orderID *string) (*model.WeddingInvitation, error) {
	groom := CleanName(fieldString(fields, constants.FIELD_GROOM_NAME))
	bride := CleanName(fieldString(fields, constants.FIELD_BRIDE_NAME))

	cleanFields := make(datatypes.JSONMap, len(fields))
	for k, v := range fields {
		cleanFields[k] = v
	}
	cleanFields[constants.FIELD_GROOM_NAME] = groom
	cleanFields[constants.FIELD_BRIDE_NAME] = bride

	slug, err := GenerateUniqueWeddingSlug(tx, groom, bride)
	if err != nil {
		return nil, err
	}

	invitation := &model.WeddingInvitation{
		Slug:       slug,
		TemplateID: templateID,
		OrderID:    orderID,
		GroomName:  groom,
		BrideName:  bride,
		Fields:     cleanFields,
		Status:     constants.INVITATION_PUBLISHED,
	}
	if err := tx.Create(invitation).Error; err != nil {
		return nil, err
	}
	return invitation, nil
}
