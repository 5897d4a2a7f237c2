package booking

import (
	"time"
)

// TourBooking is a culinary tour reservation. The total is the selected
// tier's per-person base price multiplied by the party size.
type TourBooking struct {
	ID string `gorm:"type:varchar(36);primaryKey" json:"id"`

	PackageItemID *string `gorm:"type:varchar(36);index" json:"package_item_id,omitempty"`

	CustomerName    string  `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerEmail   string  `gorm:"type:varchar(255);not null" json:"customer_email"`
	CustomerPhone   *string `gorm:"type:varchar(20)" json:"customer_phone,omitempty"`
	CustomerCountry string  `gorm:"type:varchar(10);not null" json:"customer_country"`

	TravelDate      *time.Time `json:"travel_date,omitempty"`
	NumPeople       int        `gorm:"not null" json:"num_people"`
	PackageTier     TourTier   `gorm:"size:20;not null;default:standard" json:"package_tier"`
	TotalPrice      int        `gorm:"not null" json:"total_price"`
	SpecialRequests *string    `gorm:"type:text" json:"special_requests,omitempty"`

	Status TourStatus `gorm:"size:20;not null;default:pending;index" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the TourBooking model
func (TourBooking) TableName() string {
	return "tour_bookings"
}

// TourTier is the price class of a tour reservation.
type TourTier string

const (
	TierBudget   TourTier = "budget"
	TierStandard TourTier = "standard"
	TierPremium  TourTier = "premium"
)

func (t TourTier) IsValid() bool {
	switch t {
	case TierBudget, TierStandard, TierPremium:
		return true
	default:
		return false
	}
}
