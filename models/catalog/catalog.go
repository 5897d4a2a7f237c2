package catalog

import (
	"time"

	"tourism-booking/models/language"
)

// Item is a bookable catalog entry: a health checkup package, a wellness
// program or a tour package. Items are managed through the admin surface and
// are read-only to the booking flow.
type Item struct {
	ID   string   `gorm:"type:varchar(36);primaryKey" json:"id"`
	Kind ItemKind `gorm:"size:30;not null;index" json:"kind"`

	NameKo string  `gorm:"type:varchar(255);not null" json:"name_ko"`
	NameEn *string `gorm:"type:varchar(255)" json:"name_en,omitempty"`
	NameZh *string `gorm:"type:varchar(255)" json:"name_zh,omitempty"`
	NameJa *string `gorm:"type:varchar(255)" json:"name_ja,omitempty"`
	NameVi *string `gorm:"type:varchar(255)" json:"name_vi,omitempty"`

	// PriceKRW is the authoritative price. PriceUSD is optional; when it is
	// absent the USD view is derived at the fixed site rate.
	PriceKRW int  `gorm:"not null" json:"price_krw"`
	PriceUSD *int `json:"price_usd,omitempty"`

	Status        ItemStatus `gorm:"size:20;not null;default:on_sale" json:"status"`
	DescriptionKo *string    `gorm:"type:text" json:"description_ko,omitempty"`
	DescriptionEn *string    `gorm:"type:text" json:"description_en,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the Item model
func (Item) TableName() string {
	return "catalog_items"
}

// Name returns the display name for lang. Missing translations fall back to
// the Korean name, which is always present.
func (i Item) Name(lang language.Language) string {
	var localized *string
	switch lang {
	case language.English:
		localized = i.NameEn
	case language.Chinese:
		localized = i.NameZh
	case language.Japanese:
		localized = i.NameJa
	case language.Vietnamese:
		localized = i.NameVi
	}
	if localized != nil && *localized != "" {
		return *localized
	}
	return i.NameKo
}
