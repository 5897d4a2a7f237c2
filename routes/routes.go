package routes

import (
	bookingCtl "tourism-booking/controllers/booking"
	catalogCtl "tourism-booking/controllers/catalog"
	ingestCtl "tourism-booking/controllers/ingest"
	restaurantCtl "tourism-booking/controllers/restaurant"
	"tourism-booking/database"
	"tourism-booking/logger"
	"tourism-booking/middleware"
	bookingService "tourism-booking/services/booking"
	ingestService "tourism-booking/services/ingest"
	"tourism-booking/services/pricing"
	"tourism-booking/services/validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	asyncLogger := logger.NewAsyncLogger(db)
	store := database.NewStore(db)
	policy := validation.PolicyFromEnv()

	pricer := pricing.NewAggregator(store, policy)
	workflow := bookingService.NewWorkflow(store, pricer)
	ingestor := ingestService.NewIngestor(store, policy)

	bookingController := bookingCtl.NewBookingController(db, workflow)
	catalogController := catalogCtl.NewCatalogController(db)
	ingestController := ingestCtl.NewIngestController(db, ingestor)
	restaurantController := restaurantCtl.NewRestaurantController(db)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	app.Use(middleware.RequestLogger(asyncLogger))

	// Index route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	api := app.Group("/api")

	api.Get("/health-packages", catalogController.HealthPackages)
	api.Get("/health-packages/:id", catalogController.Show)
	api.Get("/wellness-programs", catalogController.WellnessPrograms)
	api.Get("/wellness-programs/:id", catalogController.Show)
	api.Get("/packages", catalogController.TourPackages)
	api.Get("/packages/:id", catalogController.Show)

	api.Get("/restaurants", restaurantController.Index)
	api.Get("/restaurants/featured", restaurantController.Featured)
	api.Get("/restaurants/:id", restaurantController.Show)

	api.Post("/bookings", bookingController.StoreTour)
	api.Post("/medical-bookings", bookingController.StoreMedical)

	/*=============================================================================
	| Admin Routes
	===============================================================================*/
	admin := api.Group("/admin")

	admin.Post("/restaurants/upload", ingestController.Upload)
	admin.Get("/restaurants", ingestController.Index)
	admin.Get("/catalog", catalogController.AdminIndex)

	admin.Get("/bookings", bookingController.Index)
	admin.Get("/medical-bookings", bookingController.MedicalIndex)
	admin.Patch("/bookings/:id/status", bookingController.UpdateTourStatus)
	admin.Patch("/medical-bookings/:id/status", bookingController.UpdateMedicalStatus)
}
