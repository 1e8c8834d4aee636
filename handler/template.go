package handler

import (
	"github.com/gofiber/fiber/v2"

	"wedding_invitation/constants"
	"wedding_invitation/database"
	"wedding_invitation/model"
	"wedding_invitation/utils"
)

func GetTemplates(c *fiber.Ctx) error {
	filter := new(model.Pagination)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT, err)
	}

	db := database.DB.Model(&model.Template{}).Where("is_active = ?", true)

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var templates []model.Template
	if err := db.Omit("html", "css", "js").Order("id ASC").Find(&templates).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       templates,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	})
}

func GetTemplateById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	var template model.Template
	if err := database.DB.Where("id = ? AND is_active = ?", id, true).First(&template).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Template không tồn tại", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, template)
}
