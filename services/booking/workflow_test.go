package booking

import (
	"errors"
	"testing"

	bookingModel "tourism-booking/models/booking"
	"tourism-booking/models/catalog"
	"tourism-booking/services/pricing"
	"tourism-booking/services/validation"
	bookingTypes "tourism-booking/types/booking"
)

type mockItemStore struct {
	items map[string]*catalog.Item
}

func (m *mockItemStore) FindItem(id string) (*catalog.Item, error) {
	return m.items[id], nil
}

type mockBookingStore struct {
	insertBookingFunc func(b *bookingModel.Booking) error
	bookings          []*bookingModel.Booking
	tourBookings      []*bookingModel.TourBooking
	events            []*bookingModel.StatusEvent
}

func (m *mockBookingStore) InsertBooking(b *bookingModel.Booking) error {
	if m.insertBookingFunc != nil {
		if err := m.insertBookingFunc(b); err != nil {
			return err
		}
	}
	m.bookings = append(m.bookings, b)
	return nil
}

func (m *mockBookingStore) InsertTourBooking(b *bookingModel.TourBooking) error {
	m.tourBookings = append(m.tourBookings, b)
	return nil
}

func (m *mockBookingStore) AppendStatusEvent(e *bookingModel.StatusEvent) error {
	m.events = append(m.events, e)
	return nil
}

func intPtr(i int) *int { return &i }

func newWorkflow(store *mockBookingStore, items map[string]*catalog.Item) *Workflow {
	pricer := pricing.NewAggregator(&mockItemStore{items: items}, validation.Permissive)
	return NewWorkflow(store, pricer)
}

func TestCreateMedical_MissingIdentityFails(t *testing.T) {
	store := &mockBookingStore{}
	w := newWorkflow(store, nil)

	cases := []bookingTypes.MedicalBookingCreateRequest{
		{CustomerEmail: "a@b.com", CustomerCountry: "CN"},
		{CustomerName: "Li Wei", CustomerCountry: "CN"},
		{CustomerName: "Li Wei", CustomerEmail: "a@b.com"},
	}
	for i, req := range cases {
		if _, err := w.CreateMedical(&req); !errors.Is(err, ErrMissingIdentity) {
			t.Errorf("case %d: expected ErrMissingIdentity, got %v", i, err)
		}
	}
	if len(store.bookings) != 0 {
		t.Errorf("no booking should be persisted, got %d", len(store.bookings))
	}
}

func TestCreateMedical_NoSelectionUsesDefaults(t *testing.T) {
	store := &mockBookingStore{}
	w := newWorkflow(store, nil)

	created, err := w.CreateMedical(&bookingTypes.MedicalBookingCreateRequest{
		CustomerName:    "Li Wei",
		CustomerEmail:   "li@example.com",
		CustomerCountry: "CN",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.TotalKRW != 250000 || created.TotalUSD != 200 {
		t.Errorf("expected default totals 250000/200, got %d/%d", created.TotalKRW, created.TotalUSD)
	}
	if created.Status != bookingModel.MedicalStatusApplied {
		t.Errorf("expected initial status applied, got %s", created.Status)
	}
	if len(store.bookings) != 1 {
		t.Fatalf("expected 1 persisted booking, got %d", len(store.bookings))
	}
	if len(store.events) != 1 || store.events[0].Status != "applied" {
		t.Errorf("expected one applied status event, got %+v", store.events)
	}
}

func TestCreateMedical_FullSelection(t *testing.T) {
	items := map[string]*catalog.Item{
		"pkg":   {ID: "pkg", Kind: catalog.KindHealthPackage, PriceKRW: 800000, PriceUSD: intPtr(650)},
		"addon": {ID: "addon", Kind: catalog.KindWellnessProgram, PriceKRW: 180000, PriceUSD: intPtr(145)},
	}
	store := &mockBookingStore{}
	w := newWorkflow(store, items)

	created, err := w.CreateMedical(&bookingTypes.MedicalBookingCreateRequest{
		CustomerName:       "Li Wei",
		CustomerEmail:      "li@example.com",
		CustomerCountry:    "CN",
		HealthPackageID:    "pkg",
		WellnessProgramID:  "addon",
		CheckupDate:        "2026-09-15",
		NeedsAccommodation: true,
		HotelNights:        2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 800000 + 180000 + 2*80000
	if created.TotalKRW != 1140000 {
		t.Errorf("expected 1140000 KRW, got %d", created.TotalKRW)
	}
	// 650 + 145 + round(160000/1250)
	if created.TotalUSD != 923 {
		t.Errorf("expected 923 USD, got %d", created.TotalUSD)
	}
	if created.CheckupDate == nil {
		t.Error("expected parsed checkup date")
	}
	if created.HotelNights == nil || *created.HotelNights != 2 {
		t.Errorf("expected 2 hotel nights, got %v", created.HotelNights)
	}
}

func TestCreateMedical_InvalidNights(t *testing.T) {
	w := newWorkflow(&mockBookingStore{}, nil)

	for _, nights := range []int{0, 8} {
		_, err := w.CreateMedical(&bookingTypes.MedicalBookingCreateRequest{
			CustomerName:       "Li Wei",
			CustomerEmail:      "li@example.com",
			CustomerCountry:    "CN",
			NeedsAccommodation: true,
			HotelNights:        nights,
		})
		if !errors.Is(err, ErrInvalidNights) {
			t.Errorf("nights=%d: expected ErrInvalidNights, got %v", nights, err)
		}
	}
}

func TestCreateMedical_PersistenceFailureIsFatal(t *testing.T) {
	store := &mockBookingStore{
		insertBookingFunc: func(b *bookingModel.Booking) error {
			return errors.New("write failed")
		},
	}
	w := newWorkflow(store, nil)

	_, err := w.CreateMedical(&bookingTypes.MedicalBookingCreateRequest{
		CustomerName:    "Li Wei",
		CustomerEmail:   "li@example.com",
		CustomerCountry: "CN",
	})
	if err == nil {
		t.Fatal("expected persistence failure to fail the request")
	}
	if len(store.events) != 0 {
		t.Error("no status event should be recorded for a failed insert")
	}
}

func TestCreateTour_TierPricing(t *testing.T) {
	store := &mockBookingStore{}
	w := newWorkflow(store, nil)

	cases := []struct {
		tier   string
		people int
		want   int
	}{
		{"budget", 2, 1400},
		{"standard", 3, 3300},
		{"premium", 1, 1800},
		{"", 2, 2200},       // defaults to standard
		{"deluxe", 1, 1100}, // unknown tier defaults to standard
	}
	for _, tc := range cases {
		created, err := w.CreateTour(&bookingTypes.TourBookingCreateRequest{
			CustomerName:    "Tanaka Yuki",
			CustomerEmail:   "tanaka@example.com",
			CustomerCountry: "JP",
			NumPeople:       tc.people,
			PackageTier:     tc.tier,
		})
		if err != nil {
			t.Fatalf("tier %q: unexpected error: %v", tc.tier, err)
		}
		if created.TotalPrice != tc.want {
			t.Errorf("tier %q x%d: expected total %d, got %d", tc.tier, tc.people, tc.want, created.TotalPrice)
		}
		if created.Status != bookingModel.TourStatusPending {
			t.Errorf("expected initial status pending, got %s", created.Status)
		}
	}
}

func TestCreateTour_MissingIdentityFails(t *testing.T) {
	w := newWorkflow(&mockBookingStore{}, nil)

	_, err := w.CreateTour(&bookingTypes.TourBookingCreateRequest{
		CustomerEmail: "x@example.com",
		NumPeople:     2,
	})
	if !errors.Is(err, ErrMissingIdentity) {
		t.Errorf("expected ErrMissingIdentity, got %v", err)
	}
}

func TestTransitionValidation(t *testing.T) {
	if err := TransitionMedical(bookingModel.MedicalStatusApplied, bookingModel.MedicalStatusConfirmed); err != nil {
		t.Errorf("applied -> confirmed must be legal: %v", err)
	}
	if err := TransitionMedical(bookingModel.MedicalStatusApplied, bookingModel.MedicalStatusCheckupDone); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("applied -> checkup_done must be illegal, got %v", err)
	}
	if err := TransitionTour(bookingModel.TourStatusCancelled, bookingModel.TourStatusPending); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("cancelled is terminal, got %v", err)
	}
	if err := TransitionTour(bookingModel.TourStatusPending, "shipped"); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("unknown target status must be illegal, got %v", err)
	}
}
