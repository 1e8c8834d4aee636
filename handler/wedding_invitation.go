package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"wedding_invitation/constants"
	"wedding_invitation/database"
	"wedding_invitation/helper"
	"wedding_invitation/model"
	"wedding_invitation/utils"
	"wedding_invitation/validate"
)

func GetWeddingInvitations(c *fiber.Ctx) error {
	filter := new(model.WeddingInvitationFilter)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT, err)
	}
	if filter.Status != nil && !validate.IsInvitationStatus(*filter.Status) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT, errors.New("invalid status"))
	}

	db := database.DB.Model(&model.WeddingInvitation{})
	if filter.Status != nil {
		db = db.Where("status = ?", *filter.Status)
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var invitations []model.WeddingInvitation
	if err := db.Preload("Template", func(tx *gorm.DB) *gorm.DB {
		return tx.Select("id", "name", "slug")
	}).Order("created_at DESC").Find(&invitations).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       invitations,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	})
}

// CreateWeddingInvitation chỉ cho template miễn phí; template có phí đi qua VNPay
func CreateWeddingInvitation(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateWeddingInvitationInput)

	var template model.Template
	if err := database.DB.Where("id = ? AND is_active = ?", input.TemplateID, true).First(&template).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Template không tồn tại", err)
	}
	if template.PriceAmount > 0 {
		return utils.ErrorResponse(c, fiber.StatusPaymentRequired, "Template có phí, vui lòng thanh toán", errors.New("payment required"))
	}

	var invitation *model.WeddingInvitation
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		invitation, err = helper.CreateWeddingInvitation(tx, template.ID, input.Fields, nil)
		return err
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể tạo thiệp", err)
	}

	zap.L().Info("wedding invitation created", zap.String("slug", invitation.Slug))
	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"slug": invitation.Slug,
		"data": invitation,
	})
}

func findInvitation(c *fiber.Ctx, query *gorm.DB) (*model.WeddingInvitation, error) {
	var invitation model.WeddingInvitation
	if err := query.Where("slug = ?", c.Params("slug")).First(&invitation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
		}
		return nil, utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return &invitation, nil
}

func GetWeddingInvitation(c *fiber.Ctx) error {
	query := new(model.GetWeddingInvitationQuery)
	if err := c.QueryParser(query); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT, err)
	}

	db := database.DB
	if query.Template {
		db = db.Preload("Template")
	} else {
		db = db.Preload("Template", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "name")
		})
	}

	invitation, errResp := findInvitation(c, db)
	if invitation == nil {
		return errResp
	}

	var detail model.WeddingInvitationDetail
	if err := copier.Copy(&detail, invitation); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if !query.Fields {
		detail.Fields = nil
	}
	detail.Link = deps.FrontendURL + "/wedding/" + invitation.Slug

	if query.QR {
		qr, err := utils.QRCodeDataURL(detail.Link, 256)
		if err != nil {
			zap.L().Warn("generate qr code", zap.String("slug", invitation.Slug), zap.Error(err))
		} else {
			detail.QRCode = qr
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, detail)
}

func UpdateWeddingInvitation(c *fiber.Ctx) error {
	input := c.Locals("input").(model.UpdateWeddingInvitationInput)

	invitation, errResp := findInvitation(c, database.DB)
	if invitation == nil {
		return errResp
	}

	updates := map[string]any{}
	if input.CustomValues != nil {
		invitation.CustomValues = input.CustomValues
		updates["custom_values"] = invitation.CustomValues
	}
	if input.Status != "" {
		invitation.Status = input.Status
		updates["status"] = input.Status
	}
	if len(updates) > 0 {
		if err := database.DB.Model(invitation).Updates(updates).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể cập nhật", err)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, invitation)
}

func DeleteWeddingInvitation(c *fiber.Ctx) error {
	invitation, errResp := findInvitation(c, database.DB)
	if invitation == nil {
		return errResp
	}

	if err := database.DB.Delete(invitation).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Xóa thất bại", err)
	}

	zap.L().Info("wedding invitation deleted", zap.String("slug", invitation.Slug))
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Xóa thiệp thành công"})
}
