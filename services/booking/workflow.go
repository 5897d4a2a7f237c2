package booking

import (
	"fmt"
	"time"

	"tourism-booking/logger"
	bookingModel "tourism-booking/models/booking"
	"tourism-booking/services/pricing"
	bookingTypes "tourism-booking/types/booking"

	"github.com/google/uuid"
	"github.com/jinzhu/now"
)

// Per-person base prices for the tour tiers, in the reference currency.
var tourTierPrices = map[bookingModel.TourTier]int{
	bookingModel.TierBudget:   700,
	bookingModel.TierStandard: 1100,
	bookingModel.TierPremium:  1800,
}

// BookingStore persists bookings and their status history.
type BookingStore interface {
	InsertBooking(b *bookingModel.Booking) error
	InsertTourBooking(b *bookingModel.TourBooking) error
	AppendStatusEvent(e *bookingModel.StatusEvent) error
}

// Workflow turns inbound reservation requests into persisted bookings.
// Only missing identity fields fail a request; pricing-side problems degrade
// to defaults under the permissive policy.
type Workflow struct {
	Store  BookingStore
	Pricer *pricing.Aggregator
}

func NewWorkflow(store BookingStore, pricer *pricing.Aggregator) *Workflow {
	return &Workflow{Store: store, Pricer: pricer}
}

// CreateMedical prices and persists a medical booking in the applied state.
func (w *Workflow) CreateMedical(req *bookingTypes.MedicalBookingCreateRequest) (*bookingModel.Booking, error) {
	if req.CustomerName == "" || req.CustomerEmail == "" || req.CustomerCountry == "" {
		return nil, ErrMissingIdentity
	}
	if req.NeedsAccommodation && (req.HotelNights < 1 || req.HotelNights > 7) {
		return nil, ErrInvalidNights
	}

	packageID := optional(req.HealthPackageID)
	addonID := optional(req.WellnessProgramID)

	components, err := w.Pricer.Quote(packageID, addonID, req.NeedsAccommodation, req.HotelNights)
	if err != nil {
		return nil, err
	}

	b := &bookingModel.Booking{
		ID:              uuid.NewString(),
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   optional(req.CustomerPhone),
		CustomerCountry: req.CustomerCountry,
		CustomerGender:  optional(req.CustomerGender),
		PassportNumber:  optional(req.PassportNumber),

		PackageItemID:  packageID,
		CheckupDate:    parseDate(req.CheckupDate),
		CheckupTime:    optional(req.CheckupTime),
		MedicalHistory: optional(req.MedicalHistory),
		FamilyHistory:  optional(req.FamilyHistory),
		Allergies:      optional(req.Allergies),
		Medications:    optional(req.Medications),

		AddonItemID:  addonID,
		WellnessDate: parseDate(req.WellnessDate),
		WellnessTime: optional(req.WellnessTime),
		Symptoms:     optional(req.Symptoms),

		NeedsInterpreter:    req.NeedsInterpreter,
		InterpreterLanguage: optional(req.InterpreterLanguage),
		NeedsTransportation: req.NeedsTransportation,
		PickupLocation:      optional(req.PickupLocation),
		NeedsAccommodation:  req.NeedsAccommodation,

		TotalKRW: components.TotalKRW,
		TotalUSD: components.TotalUSD,
		Status:   bookingModel.MedicalStatusApplied,
	}
	if req.CustomerAge > 0 {
		age := req.CustomerAge
		b.CustomerAge = &age
	}
	if req.NeedsAccommodation {
		nights := req.HotelNights
		b.HotelNights = &nights
	}

	if err := w.Store.InsertBooking(b); err != nil {
		return nil, fmt.Errorf("insert medical booking: %w", err)
	}
	w.recordStatus(b.ID, "medical", string(b.Status))

	return b, nil
}

// CreateTour prices and persists a tour booking in the pending state.
func (w *Workflow) CreateTour(req *bookingTypes.TourBookingCreateRequest) (*bookingModel.TourBooking, error) {
	if req.CustomerName == "" || req.CustomerEmail == "" || req.CustomerCountry == "" {
		return nil, ErrMissingIdentity
	}

	tier := bookingModel.TourTier(req.PackageTier)
	if !tier.IsValid() {
		tier = bookingModel.TierStandard
	}

	people := req.NumPeople
	if people < 1 {
		people = 1
	}

	b := &bookingModel.TourBooking{
		ID:              uuid.NewString(),
		PackageItemID:   optional(req.PackageID),
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   optional(req.CustomerPhone),
		CustomerCountry: req.CustomerCountry,
		TravelDate:      parseDate(req.TravelDate),
		NumPeople:       people,
		PackageTier:     tier,
		TotalPrice:      tourTierPrices[tier] * people,
		SpecialRequests: optional(req.SpecialRequests),
		Status:          bookingModel.TourStatusPending,
	}

	if err := w.Store.InsertTourBooking(b); err != nil {
		return nil, fmt.Errorf("insert tour booking: %w", err)
	}
	w.recordStatus(b.ID, "tour", string(b.Status))

	return b, nil
}

// TransitionMedical validates an operator-driven status change.
func TransitionMedical(current, next bookingModel.MedicalStatus) error {
	if !next.IsValid() || !current.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, current, next)
	}
	return nil
}

// TransitionTour validates an operator-driven status change.
func TransitionTour(current, next bookingModel.TourStatus) error {
	if !next.IsValid() || !current.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, current, next)
	}
	return nil
}

// recordStatus appends to the booking's status history. History is
// advisory: a failed append never fails the booking itself.
func (w *Workflow) recordStatus(bookingID, kind, status string) {
	event := &bookingModel.StatusEvent{
		BookingID: bookingID,
		Kind:      kind,
		Status:    status,
		CreatedBy: "system",
	}
	if err := w.Store.AppendStatusEvent(event); err != nil {
		logger.Warning(fmt.Sprintf("Failed to append status event for booking %s: %v", bookingID, err))
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// parseDate tolerantly parses a date input. Dates are not identity fields:
// an unparseable value degrades to nil rather than failing the request.
func parseDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := now.Parse(raw)
	if err != nil {
		return nil
	}
	return &t
}
