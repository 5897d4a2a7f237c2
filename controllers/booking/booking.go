package booking

import (
	"errors"
	"fmt"

	"tourism-booking/logger"
	bookingModel "tourism-booking/models/booking"
	bookingService "tourism-booking/services/booking"
	"tourism-booking/types"
	bookingTypes "tourism-booking/types/booking"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validate = validator.New()

// BookingController handles booking-related HTTP requests
type BookingController struct {
	DB       *gorm.DB
	Workflow *bookingService.Workflow
}

// NewBookingController creates a new booking controller
func NewBookingController(db *gorm.DB, workflow *bookingService.Workflow) *BookingController {
	return &BookingController{
		DB:       db,
		Workflow: workflow,
	}
}

// StoreMedical creates a new medical booking
func (bc *BookingController) StoreMedical(c *fiber.Ctx) error {
	var req bookingTypes.MedicalBookingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	created, err := bc.Workflow.CreateMedical(&req)
	if err != nil {
		return bc.storeError(c, "medical", err)
	}

	logger.Success(fmt.Sprintf("Medical booking created successfully with ID: %s", created.ID))
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Booking created successfully",
		Data:    created,
	})
}

// StoreTour creates a new tour booking
func (bc *BookingController) StoreTour(c *fiber.Ctx) error {
	var req bookingTypes.TourBookingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	created, err := bc.Workflow.CreateTour(&req)
	if err != nil {
		return bc.storeError(c, "tour", err)
	}

	logger.Success(fmt.Sprintf("Tour booking created successfully with ID: %s", created.ID))
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Booking created successfully",
		Data:    created,
	})
}

func (bc *BookingController) storeError(c *fiber.Ctx, kind string, err error) error {
	if errors.Is(err, bookingService.ErrMissingIdentity) || errors.Is(err, bookingService.ErrInvalidNights) {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}
	logger.Error(fmt.Sprintf("Failed to create %s booking", kind), err)
	return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
		Status:  fiber.StatusInternalServerError,
		Message: "Failed to save booking",
	})
}

// Index lists all tour bookings, newest first
func (bc *BookingController) Index(c *fiber.Ctx) error {
	var bookings []bookingModel.TourBooking
	if err := bc.DB.Order("created_at DESC").Find(&bookings).Error; err != nil {
		logger.Error("Failed to fetch tour bookings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch bookings",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Bookings retrieved successfully",
		Data:    bookings,
	})
}

// MedicalIndex lists all medical bookings, newest first
func (bc *BookingController) MedicalIndex(c *fiber.Ctx) error {
	var bookings []bookingModel.Booking
	if err := bc.DB.Order("created_at DESC").Find(&bookings).Error; err != nil {
		logger.Error("Failed to fetch medical bookings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch bookings",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Bookings retrieved successfully",
		Data:    bookings,
	})
}

// UpdateMedicalStatus applies an operator status transition to a medical booking
func (bc *BookingController) UpdateMedicalStatus(c *fiber.Ctx) error {
	var req bookingTypes.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	var booking bookingModel.Booking
	if err := bc.DB.First(&booking, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Booking not found",
			})
		}
		logger.Error("Failed to find booking", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	next := bookingModel.MedicalStatus(req.Status)
	if err := bookingService.TransitionMedical(booking.Status, next); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(types.ApiResponse{
			Status:  fiber.StatusUnprocessableEntity,
			Message: err.Error(),
			Data:    fiber.Map{"allowed": booking.Status.NextStatuses()},
		})
	}

	booking.Status = next
	if err := bc.DB.Save(&booking).Error; err != nil {
		logger.Error("Failed to update booking status", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update booking status",
		})
	}
	bc.appendStatusEvent(booking.ID, "medical", string(next))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking status updated successfully",
		Data:    booking,
	})
}

// UpdateTourStatus applies an operator status transition to a tour booking
func (bc *BookingController) UpdateTourStatus(c *fiber.Ctx) error {
	var req bookingTypes.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	var booking bookingModel.TourBooking
	if err := bc.DB.First(&booking, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Booking not found",
			})
		}
		logger.Error("Failed to find booking", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	next := bookingModel.TourStatus(req.Status)
	if err := bookingService.TransitionTour(booking.Status, next); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(types.ApiResponse{
			Status:  fiber.StatusUnprocessableEntity,
			Message: err.Error(),
			Data:    fiber.Map{"allowed": booking.Status.NextStatuses()},
		})
	}

	booking.Status = next
	if err := bc.DB.Save(&booking).Error; err != nil {
		logger.Error("Failed to update booking status", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update booking status",
		})
	}
	bc.appendStatusEvent(booking.ID, "tour", string(next))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking status updated successfully",
		Data:    booking,
	})
}

func (bc *BookingController) appendStatusEvent(bookingID, kind, status string) {
	event := bookingModel.StatusEvent{
		BookingID: bookingID,
		Kind:      kind,
		Status:    status,
		CreatedBy: "admin",
	}
	if err := bc.DB.Create(&event).Error; err != nil {
		logger.Warning(fmt.Sprintf("Failed to append status event for booking %s: %v", bookingID, err))
	}
}
