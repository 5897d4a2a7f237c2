package booking

import (
	"fmt"
)

// MedicalBookingCreateRequest is the inbound payload for a medical tourism
// reservation. Only the identity fields are mandatory; every selection field
// may be absent and falls back to defaults during pricing.
type MedicalBookingCreateRequest struct {
	CustomerName    string `json:"customer_name" validate:"required,min=1,max=255"`
	CustomerEmail   string `json:"customer_email" validate:"required,email"`
	CustomerPhone   string `json:"customer_phone" validate:"omitempty,max=20"`
	CustomerCountry string `json:"customer_country" validate:"required,min=2,max=10"`
	CustomerGender  string `json:"customer_gender" validate:"omitempty,oneof=male female other"`
	CustomerAge     int    `json:"customer_age" validate:"omitempty,min=0,max=150"`
	PassportNumber  string `json:"passport_number" validate:"omitempty,max=50"`

	HealthPackageID string `json:"health_package_id" validate:"omitempty,max=36"`
	CheckupDate     string `json:"checkup_date" validate:"omitempty"`
	CheckupTime     string `json:"checkup_time" validate:"omitempty,max=10"`
	MedicalHistory  string `json:"medical_history"`
	FamilyHistory   string `json:"family_history"`
	Allergies       string `json:"allergies"`
	Medications     string `json:"medications"`

	WellnessProgramID string `json:"wellness_program_id" validate:"omitempty,max=36"`
	WellnessDate      string `json:"wellness_date" validate:"omitempty"`
	WellnessTime      string `json:"wellness_time" validate:"omitempty,max=10"`
	Symptoms          string `json:"symptoms"`

	NeedsInterpreter    bool   `json:"needs_interpreter"`
	InterpreterLanguage string `json:"interpreter_language" validate:"omitempty,max=10"`
	NeedsTransportation bool   `json:"needs_transportation"`
	PickupLocation      string `json:"pickup_location" validate:"omitempty,max=255"`
	NeedsAccommodation  bool   `json:"needs_accommodation"`
	HotelNights         int    `json:"hotel_nights" validate:"omitempty,min=1,max=7"`
}

// Validate checks the mandatory identity fields before the workflow runs.
func (r MedicalBookingCreateRequest) Validate() error {
	if r.CustomerName == "" {
		return fmt.Errorf("customer_name is required")
	}
	if r.CustomerEmail == "" {
		return fmt.Errorf("customer_email is required")
	}
	if r.CustomerCountry == "" {
		return fmt.Errorf("customer_country is required")
	}
	if r.NeedsAccommodation && (r.HotelNights < 1 || r.HotelNights > 7) {
		return fmt.Errorf("hotel_nights must be between 1 and 7 when accommodation is requested")
	}
	return nil
}

// TourBookingCreateRequest is the inbound payload for a tour reservation.
type TourBookingCreateRequest struct {
	PackageID       string `json:"package_id" validate:"omitempty,max=36"`
	CustomerName    string `json:"customer_name" validate:"required,min=1,max=255"`
	CustomerEmail   string `json:"customer_email" validate:"required,email"`
	CustomerPhone   string `json:"customer_phone" validate:"omitempty,max=20"`
	CustomerCountry string `json:"customer_country" validate:"required,min=2,max=10"`
	TravelDate      string `json:"travel_date" validate:"omitempty"`
	NumPeople       int    `json:"num_people" validate:"required,min=1,max=50"`
	PackageTier     string `json:"package_tier" validate:"omitempty,oneof=budget standard premium"`
	SpecialRequests string `json:"special_requests"`
}

// Validate checks the mandatory identity fields before the workflow runs.
func (r TourBookingCreateRequest) Validate() error {
	if r.CustomerName == "" {
		return fmt.Errorf("customer_name is required")
	}
	if r.CustomerEmail == "" {
		return fmt.Errorf("customer_email is required")
	}
	if r.CustomerCountry == "" {
		return fmt.Errorf("customer_country is required")
	}
	if r.NumPeople < 1 {
		return fmt.Errorf("num_people must be at least 1")
	}
	return nil
}

// UpdateStatusRequest carries an operator-driven status transition.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,min=1,max=20"`
}
