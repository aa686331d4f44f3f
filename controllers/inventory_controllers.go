package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/flavourhaven/hotel-restaurant-app/models"
	"github.com/flavourhaven/hotel-restaurant-app/utils"
)

type InventoryController struct {
	DB *gorm.DB
}

func NewInventoryController(db *gorm.DB) *InventoryController {
	return &InventoryController{DB: db}
}

// GetAllItems lists stock, optionally filtered by name search or the
// low-stock predicate (quantity <= reorder level).
func (ic *InventoryController) GetAllItems(c *gin.Context) {
	query := ic.DB.Model(&models.InventoryItem{})

	if search := c.Query("search"); search != "" {
		query = query.Where("item_name LIKE ?", "%"+search+"%")
	}
	if c.Query("low_stock") == "true" {
		query = query.Where("quantity <= reorder_level")
	}

	var items []models.InventoryItem
	if err := query.Order("item_name asc").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of inventory items", items)
}

func (ic *InventoryController) GetItemByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("item_id"))

	var item models.InventoryItem
	if err := ic.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Inventory item detail", item)
}

func (ic *InventoryController) CreateItem(c *gin.Context) {
	var req struct {
		ItemName     string  `json:"item_name" binding:"required"`
		Quantity     float64 `json:"quantity" binding:"gte=0"`
		Unit         string  `json:"unit" binding:"omitempty,oneof=kg litre pieces packets dozen"`
		ReorderLevel float64 `json:"reorder_level"`
		CostPerUnit  float64 `json:"cost_per_unit"`
		Supplier     string  `json:"supplier"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item := models.InventoryItem{
		ItemName:      req.ItemName,
		Quantity:      req.Quantity,
		Unit:          req.Unit,
		ReorderLevel:  req.ReorderLevel,
		CostPerUnit:   req.CostPerUnit,
		Supplier:      req.Supplier,
		LastRestocked: time.Now(),
	}
	if item.Unit == "" {
		item.Unit = models.UnitKg
	}
	if item.ReorderLevel == 0 {
		item.ReorderLevel = 10
	}

	if err := ic.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Inventory item created", item)
}

// UpdateItem edits stock fields. Any write that touches quantity stamps
// lastRestocked, even when the quantity goes down.
func (ic *InventoryController) UpdateItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("item_id"))

	var item models.InventoryItem
	if err := ic.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		ItemName     *string  `json:"item_name"`
		Quantity     *float64 `json:"quantity" binding:"omitempty,gte=0"`
		Unit         *string  `json:"unit" binding:"omitempty,oneof=kg litre pieces packets dozen"`
		ReorderLevel *float64 `json:"reorder_level"`
		CostPerUnit  *float64 `json:"cost_per_unit"`
		Supplier     *string  `json:"supplier"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.ItemName != nil {
		item.ItemName = *req.ItemName
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
		item.LastRestocked = time.Now()
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.ReorderLevel != nil {
		item.ReorderLevel = *req.ReorderLevel
	}
	if req.CostPerUnit != nil {
		item.CostPerUnit = *req.CostPerUnit
	}
	if req.Supplier != nil {
		item.Supplier = *req.Supplier
	}

	if err := ic.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Inventory item updated", item)
}

func (ic *InventoryController) DeleteItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("item_id"))

	var item models.InventoryItem
	if err := ic.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	if err := ic.DB.Delete(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Inventory item deleted", gin.H{"item_id": id})
}
