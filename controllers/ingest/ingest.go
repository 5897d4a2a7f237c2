package ingest

import (
	"io"

	"tourism-booking/logger"
	restaurantModel "tourism-booking/models/restaurant"
	ingestService "tourism-booking/services/ingest"
	"tourism-booking/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// IngestController handles bulk listing uploads
type IngestController struct {
	DB       *gorm.DB
	Ingestor *ingestService.Ingestor
}

// NewIngestController creates a new ingest controller
func NewIngestController(db *gorm.DB, ingestor *ingestService.Ingestor) *IngestController {
	return &IngestController{
		DB:       db,
		Ingestor: ingestor,
	}
}

// Upload ingests an operator CSV file. The batch always completes: per-row
// failures are counted, never fatal, and the response carries both counters.
func (ic *IngestController) Upload(c *fiber.Ctx) error {
	blob, err := ic.readBlob(c)
	if err != nil {
		logger.Error("Failed to read upload", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "CSV file is required",
		})
	}

	result := ic.Ingestor.Ingest(blob)
	logger.Success(result.Message)

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: result.Message,
		Data:    result,
	})
}

// readBlob accepts either a multipart "csv_file" field or a raw text body.
func (ic *IngestController) readBlob(c *fiber.Ctx) (string, error) {
	fileHeader, err := c.FormFile("csv_file")
	if err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return "", err
		}
		defer file.Close()

		content, err := io.ReadAll(file)
		if err != nil {
			return "", err
		}
		return string(content), nil
	}

	if len(c.Body()) == 0 {
		return "", fiber.ErrBadRequest
	}
	return string(c.Body()), nil
}

// Index lists all imported restaurants, newest first
func (ic *IngestController) Index(c *fiber.Ctx) error {
	var restaurants []restaurantModel.Restaurant
	if err := ic.DB.Order("created_at DESC").Find(&restaurants).Error; err != nil {
		logger.Error("Failed to fetch restaurants", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch restaurants",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Restaurants retrieved successfully",
		Data:    restaurants,
	})
}
