package database

import (
	"wedding_invitation/constants"
	"wedding_invitation/model"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var defaultDynamicFields = datatypes.JSON(`[
	{"key":"` + constants.FIELD_GROOM_NAME + `","label":"Tên chú rể","type":"text","required":true},
	{"key":"` + constants.FIELD_BRIDE_NAME + `","label":"Tên cô dâu","type":"text","required":true},
	{"key":"ngày_cưới","label":"Ngày cưới","type":"date","required":true},
	{"key":"địa_điểm","label":"Địa điểm","type":"text","required":false}
]`)

func SeedData(db *gorm.DB) {
	templates := []model.Template{
		{
			Name:          "Hoa Sen Cổ Điển",
			Slug:          "hoa-sen-co-dien",
			PriceAmount:   2000000,
			Html:          `<section class="wedding"><h1>{{` + constants.FIELD_BRIDE_NAME + `}} &amp; {{` + constants.FIELD_GROOM_NAME + `}}</h1><p>{{ngày_cưới}}</p></section>`,
			Css:           `.wedding{font-family:serif;text-align:center}`,
			DynamicFields: defaultDynamicFields,
			IsActive:      true,
		},
		{
			Name:          "Tối Giản Hiện Đại",
			Slug:          "toi-gian-hien-dai",
			PriceAmount:   500000,
			Html:          `<main><h2>{{` + constants.FIELD_GROOM_NAME + `}} ♥ {{` + constants.FIELD_BRIDE_NAME + `}}</h2><p>{{địa_điểm}}</p></main>`,
			Css:           `main{font-family:sans-serif}`,
			DynamicFields: defaultDynamicFields,
			IsActive:      true,
		},
	}

	for _, template := range templates {
		// Tạo mới nếu không tồn tại
		if err := db.Where(model.Template{Slug: template.Slug}).FirstOrCreate(&template).Error; err != nil {
			zap.L().Error("failed to seed template", zap.String("slug", template.Slug), zap.Error(err))
		}
	}
}
