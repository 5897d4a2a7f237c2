package restaurant

import (
	"errors"

	"tourism-booking/logger"
	"tourism-booking/models/language"
	restaurantModel "tourism-booking/models/restaurant"
	"tourism-booking/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RestaurantController handles public restaurant read endpoints
type RestaurantController struct {
	DB *gorm.DB
}

// NewRestaurantController creates a new restaurant controller
func NewRestaurantController(db *gorm.DB) *RestaurantController {
	return &RestaurantController{DB: db}
}

type restaurantView struct {
	restaurantModel.Restaurant
	DisplayName string `json:"display_name"`
}

func localize(restaurants []restaurantModel.Restaurant, lang language.Language) []restaurantView {
	views := make([]restaurantView, 0, len(restaurants))
	for _, r := range restaurants {
		views = append(views, restaurantView{Restaurant: r, DisplayName: r.Name(lang)})
	}
	return views
}

// Index lists open restaurants, optionally filtered by region and sector
func (rc *RestaurantController) Index(c *fiber.Ctx) error {
	lang := language.Parse(c.Query("lang"))

	query := rc.DB.Where("status = ?", restaurantModel.ListingStatusOpen)
	if region := c.Query("region"); region != "" {
		query = query.Where("region = ?", region)
	}
	if sector := c.Query("sector"); sector != "" {
		query = query.Where("sector = ?", sector)
	}

	var restaurants []restaurantModel.Restaurant
	if err := query.Order("created_at DESC").Find(&restaurants).Error; err != nil {
		logger.Error("Failed to fetch restaurants", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch restaurants",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Restaurants retrieved successfully",
		Data:    localize(restaurants, lang),
	})
}

// Featured lists up to six certified open restaurants for the homepage
func (rc *RestaurantController) Featured(c *fiber.Ctx) error {
	lang := language.Parse(c.Query("lang"))

	var restaurants []restaurantModel.Restaurant
	err := rc.DB.
		Where("status = ? AND gov_certified = ?", restaurantModel.ListingStatusOpen, true).
		Order("created_at DESC").
		Limit(6).
		Find(&restaurants).Error
	if err != nil {
		logger.Error("Failed to fetch featured restaurants", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch restaurants",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Restaurants retrieved successfully",
		Data:    localize(restaurants, lang),
	})
}

// Show returns a single restaurant by id
func (rc *RestaurantController) Show(c *fiber.Ctx) error {
	lang := language.Parse(c.Query("lang"))

	var restaurant restaurantModel.Restaurant
	if err := rc.DB.First(&restaurant, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Restaurant not found",
			})
		}
		logger.Error("Failed to fetch restaurant", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch restaurant",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Restaurant retrieved successfully",
		Data:    restaurantView{Restaurant: restaurant, DisplayName: restaurant.Name(lang)},
	})
}
