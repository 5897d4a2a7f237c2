package booking

import (
	"net/http/httptest"
	"strings"
	"testing"

	bookingModel "tourism-booking/models/booking"
	"tourism-booking/models/catalog"
	bookingService "tourism-booking/services/booking"
	"tourism-booking/services/pricing"
	"tourism-booking/services/validation"

	"github.com/gofiber/fiber/v2"
)

type stubBookingStore struct{}

func (stubBookingStore) InsertBooking(b *bookingModel.Booking) error         { return nil }
func (stubBookingStore) InsertTourBooking(b *bookingModel.TourBooking) error { return nil }
func (stubBookingStore) AppendStatusEvent(e *bookingModel.StatusEvent) error { return nil }

type stubItemStore struct{}

func (stubItemStore) FindItem(id string) (*catalog.Item, error) { return nil, nil }

func newTestApp() *fiber.App {
	pricer := pricing.NewAggregator(stubItemStore{}, validation.Permissive)
	workflow := bookingService.NewWorkflow(stubBookingStore{}, pricer)
	bc := NewBookingController(nil, workflow)

	app := fiber.New()
	app.Post("/medical-bookings", bc.StoreMedical)
	app.Post("/bookings", bc.StoreTour)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestStoreMedical_ValidRequestCreated(t *testing.T) {
	app := newTestApp()

	status := postJSON(t, app, "/medical-bookings", `{
		"customer_name": "Li Wei",
		"customer_email": "li@example.com",
		"customer_country": "CN"
	}`)
	if status != fiber.StatusCreated {
		t.Errorf("expected 201, got %d", status)
	}
}

func TestStoreMedical_AccommodationWithoutNightsRejected(t *testing.T) {
	app := newTestApp()

	// hotel_nights omitted: the tag check skips the zero value, so the
	// request-level Validate must catch it.
	status := postJSON(t, app, "/medical-bookings", `{
		"customer_name": "Li Wei",
		"customer_email": "li@example.com",
		"customer_country": "CN",
		"needs_accommodation": true
	}`)
	if status != fiber.StatusBadRequest {
		t.Errorf("expected 400, got %d", status)
	}
}

func TestStoreMedical_MissingIdentityRejected(t *testing.T) {
	app := newTestApp()

	status := postJSON(t, app, "/medical-bookings", `{
		"customer_email": "li@example.com",
		"customer_country": "CN"
	}`)
	if status != fiber.StatusBadRequest {
		t.Errorf("expected 400, got %d", status)
	}
}

func TestStoreTour_ValidRequestCreated(t *testing.T) {
	app := newTestApp()

	status := postJSON(t, app, "/bookings", `{
		"customer_name": "Tanaka Yuki",
		"customer_email": "tanaka@example.com",
		"customer_country": "JP",
		"num_people": 2,
		"package_tier": "standard"
	}`)
	if status != fiber.StatusCreated {
		t.Errorf("expected 201, got %d", status)
	}
}

func TestStoreTour_MissingPartySizeRejected(t *testing.T) {
	app := newTestApp()

	status := postJSON(t, app, "/bookings", `{
		"customer_name": "Tanaka Yuki",
		"customer_email": "tanaka@example.com",
		"customer_country": "JP"
	}`)
	if status != fiber.StatusBadRequest {
		t.Errorf("expected 400, got %d", status)
	}
}
