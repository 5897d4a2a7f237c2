package catalog

import (
	"errors"

	"tourism-booking/logger"
	catalogModel "tourism-booking/models/catalog"
	"tourism-booking/models/language"
	"tourism-booking/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CatalogController handles catalog read endpoints
type CatalogController struct {
	DB *gorm.DB
}

// NewCatalogController creates a new catalog controller
func NewCatalogController(db *gorm.DB) *CatalogController {
	return &CatalogController{DB: db}
}

type itemView struct {
	catalogModel.Item
	DisplayName string `json:"display_name"`
}

// list returns on-sale items of one kind, localized for the lang query param.
func (cc *CatalogController) list(c *fiber.Ctx, kind catalogModel.ItemKind) error {
	lang := language.Parse(c.Query("lang"))

	var items []catalogModel.Item
	err := cc.DB.
		Where("kind = ? AND status = ?", kind, catalogModel.ItemStatusOnSale).
		Order("price_krw ASC").
		Find(&items).Error
	if err != nil {
		logger.Error("Failed to fetch catalog items", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch catalog items",
		})
	}

	views := make([]itemView, 0, len(items))
	for _, item := range items {
		views = append(views, itemView{Item: item, DisplayName: item.Name(lang)})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Catalog items retrieved successfully",
		Data:    views,
	})
}

// HealthPackages lists on-sale health checkup packages
func (cc *CatalogController) HealthPackages(c *fiber.Ctx) error {
	return cc.list(c, catalogModel.KindHealthPackage)
}

// WellnessPrograms lists on-sale wellness programs
func (cc *CatalogController) WellnessPrograms(c *fiber.Ctx) error {
	return cc.list(c, catalogModel.KindWellnessProgram)
}

// TourPackages lists on-sale tour packages
func (cc *CatalogController) TourPackages(c *fiber.Ctx) error {
	return cc.list(c, catalogModel.KindTourPackage)
}

// Show returns a single catalog item by id
func (cc *CatalogController) Show(c *fiber.Ctx) error {
	lang := language.Parse(c.Query("lang"))

	var item catalogModel.Item
	if err := cc.DB.First(&item, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Catalog item not found",
			})
		}
		logger.Error("Failed to fetch catalog item", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch catalog item",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Catalog item retrieved successfully",
		Data:    itemView{Item: item, DisplayName: item.Name(lang)},
	})
}

// AdminIndex lists all catalog items regardless of status
func (cc *CatalogController) AdminIndex(c *fiber.Ctx) error {
	var items []catalogModel.Item
	if err := cc.DB.Order("created_at DESC").Find(&items).Error; err != nil {
		logger.Error("Failed to fetch catalog items", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch catalog items",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Catalog items retrieved successfully",
		Data:    items,
	})
}
