package booking

import (
	"time"
)

// Booking is a medical tourism reservation: a health checkup package with an
// optional wellness add-on plus interpreter/transport/accommodation extras.
// Immutable once created except for status transitions.
type Booking struct {
	ID string `gorm:"type:varchar(36);primaryKey" json:"id"`

	CustomerName    string  `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerEmail   string  `gorm:"type:varchar(255);not null" json:"customer_email"`
	CustomerPhone   *string `gorm:"type:varchar(20)" json:"customer_phone,omitempty"`
	CustomerCountry string  `gorm:"type:varchar(10);not null;index" json:"customer_country"`
	CustomerGender  *string `gorm:"type:varchar(10)" json:"customer_gender,omitempty"`
	CustomerAge     *int    `json:"customer_age,omitempty"`
	PassportNumber  *string `gorm:"type:varchar(50)" json:"passport_number,omitempty"`

	// Primary selection. Nil is legal: pricing falls back to the default
	// checkup package.
	PackageItemID  *string    `gorm:"type:varchar(36);index" json:"package_item_id,omitempty"`
	CheckupDate    *time.Time `json:"checkup_date,omitempty"`
	CheckupTime    *string    `gorm:"type:varchar(10)" json:"checkup_time,omitempty"`
	MedicalHistory *string    `gorm:"type:text" json:"medical_history,omitempty"`
	FamilyHistory  *string    `gorm:"type:text" json:"family_history,omitempty"`
	Allergies      *string    `gorm:"type:text" json:"allergies,omitempty"`
	Medications    *string    `gorm:"type:text" json:"medications,omitempty"`

	// Optional wellness add-on, added on top of the package price.
	AddonItemID  *string    `gorm:"type:varchar(36);index" json:"addon_item_id,omitempty"`
	WellnessDate *time.Time `json:"wellness_date,omitempty"`
	WellnessTime *string    `gorm:"type:varchar(10)" json:"wellness_time,omitempty"`
	Symptoms     *string    `gorm:"type:text" json:"symptoms,omitempty"`

	NeedsInterpreter    bool    `gorm:"default:false" json:"needs_interpreter"`
	InterpreterLanguage *string `gorm:"type:varchar(10)" json:"interpreter_language,omitempty"`
	NeedsTransportation bool    `gorm:"default:false" json:"needs_transportation"`
	PickupLocation      *string `gorm:"type:varchar(255)" json:"pickup_location,omitempty"`
	NeedsAccommodation  bool    `gorm:"default:false" json:"needs_accommodation"`
	HotelNights         *int    `json:"hotel_nights,omitempty"`

	// Committed totals in both currencies, computed at creation time.
	TotalKRW int `gorm:"not null" json:"total_krw"`
	TotalUSD int `gorm:"not null" json:"total_usd"`

	Status MedicalStatus `gorm:"size:20;not null;default:applied;index" json:"status"`
	Notes  *string       `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the Booking model
func (Booking) TableName() string {
	return "medical_bookings"
}
