package restaurant

import (
	"time"

	"tourism-booking/models/language"
)

// Restaurant is a curated listing imported in bulk from operator CSV files.
type Restaurant struct {
	ID string `gorm:"type:varchar(36);primaryKey" json:"id"`

	NameKo string `gorm:"type:varchar(255);not null" json:"name_ko"`
	NameEn string `gorm:"type:varchar(255)" json:"name_en,omitempty"`
	NameJa string `gorm:"type:varchar(255)" json:"name_ja,omitempty"`
	NameZh string `gorm:"type:varchar(255)" json:"name_zh,omitempty"`
	NameTh string `gorm:"type:varchar(255)" json:"name_th,omitempty"`

	Region  string `gorm:"type:varchar(50);not null;index" json:"region"`
	Sector  string `gorm:"type:varchar(50);not null;index" json:"sector"`
	City    string `gorm:"type:varchar(100);not null" json:"city"`
	Address string `gorm:"type:text;not null" json:"address"`

	CuisineType     string `gorm:"type:varchar(100)" json:"cuisine_type"`
	AvgPrice        int    `json:"avg_price"`
	GovCertified    bool   `gorm:"default:false" json:"gov_certified"`
	AirportPriority string `gorm:"type:varchar(20)" json:"airport_priority"`
	DescriptionKo   string `gorm:"type:text" json:"description_ko"`

	Status ListingStatus `gorm:"size:20;not null;default:open" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Name returns the display name for lang, falling back to the Korean name.
func (r Restaurant) Name(lang language.Language) string {
	var localized string
	switch lang {
	case language.English:
		localized = r.NameEn
	case language.Japanese:
		localized = r.NameJa
	case language.Chinese:
		localized = r.NameZh
	case language.Thai:
		localized = r.NameTh
	}
	if localized != "" {
		return localized
	}
	return r.NameKo
}

// ListingStatus is the operating state of a listing.
type ListingStatus string

const (
	ListingStatusOpen   ListingStatus = "open"
	ListingStatusPaused ListingStatus = "paused"
	ListingStatusClosed ListingStatus = "closed"
)

func (s ListingStatus) String() string {
	return string(s)
}

func (s ListingStatus) IsValid() bool {
	switch s {
	case ListingStatusOpen, ListingStatusPaused, ListingStatusClosed:
		return true
	default:
		return false
	}
}
