package database

import (
	"errors"

	"tourism-booking/models/booking"
	"tourism-booking/models/catalog"
	"tourism-booking/models/restaurant"

	"gorm.io/gorm"
)

// Store adapts the gorm connection to the narrow interfaces consumed by the
// pricing, booking and ingest services, so each can be tested against an
// in-memory fake.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// FindItem looks up a catalog item by id. A missing item returns (nil, nil):
// absence is a normal outcome handled by the caller's fallback policy.
func (s *Store) FindItem(id string) (*catalog.Item, error) {
	var item catalog.Item
	err := s.db.First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) InsertBooking(b *booking.Booking) error {
	return s.db.Create(b).Error
}

func (s *Store) InsertTourBooking(b *booking.TourBooking) error {
	return s.db.Create(b).Error
}

func (s *Store) AppendStatusEvent(e *booking.StatusEvent) error {
	return s.db.Create(e).Error
}

func (s *Store) InsertRestaurant(r *restaurant.Restaurant) error {
	return s.db.Create(r).Error
}
