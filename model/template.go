package model

import "gorm.io/datatypes"

type Template struct {
	DTO
	Name          string         `gorm:"size:255;not null" json:"name"`
	Slug          string         `gorm:"uniqueIndex;size:255" json:"slug"`
	PriceAmount   int64          `gorm:"not null" json:"priceAmount"` // VND
	Html          string         `json:"html,omitempty"`
	Css           string         `json:"css,omitempty"`
	Js            string         `json:"js,omitempty"`
	DynamicFields datatypes.JSON `json:"dynamicFields,omitempty"`
	IsActive      bool           `gorm:"default:true" json:"isActive"`
}
