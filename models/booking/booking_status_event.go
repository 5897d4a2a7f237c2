package booking

import (
	"time"
)

// StatusEvent is one entry in the append-only status history of a booking.
// Events are many per booking, across both booking kinds.
type StatusEvent struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	BookingID string `gorm:"type:varchar(36);not null;index" json:"booking_id"`
	Kind      string `gorm:"type:varchar(20);not null" json:"kind"` // "tour" or "medical"

	Status    string    `gorm:"size:20;not null" json:"status"`
	CreatedBy string    `gorm:"type:varchar(255);not null" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName sets the table name for the StatusEvent model
func (StatusEvent) TableName() string {
	return "booking_status_events"
}
