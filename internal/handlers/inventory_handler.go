package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "sitedesk/internal/errors"
	"sitedesk/internal/insights"
	"sitedesk/internal/models"
	"sitedesk/internal/services"
)

// InventoryHandler serves site stock.
type InventoryHandler struct {
	inventoryService services.InventoryServicer
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(inventoryService services.InventoryServicer) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// inventoryItemView decorates an item with its derived display fields.
type inventoryItemView struct {
	models.InventoryItem
	IsLowStock bool    `json:"is_low_stock"`
	StockGauge float64 `json:"stock_gauge"`
}

func newItemView(item models.InventoryItem) inventoryItemView {
	return inventoryItemView{
		InventoryItem: item,
		IsLowStock:    item.IsLowStock(),
		StockGauge:    insights.StockGauge(&item),
	}
}

// GetItems handles listing stock with derived low-stock flags and gauges.
// @Summary     Get inventory
// @Tags        inventory
// @Produce     json
// @Success     200 {object} map[string]interface{}
// @Router      /inventory [get]
func (h *InventoryHandler) GetItems(c *gin.Context) {
	items, err := h.inventoryService.GetItems()
	if err != nil {
		respondWithError(c, err)
		return
	}

	views := make([]inventoryItemView, 0, len(items))
	for _, item := range items {
		views = append(views, newItemView(item))
	}

	c.JSON(http.StatusOK, gin.H{
		"items":           views,
		"low_stock_count": len(insights.LowStock(items)),
	})
}

// AddItemRequest represents the request payload for registering stock.
type AddItemRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=200"`
	Category    string  `json:"category" binding:"required,inventory_category"`
	Quantity    float64 `json:"quantity" binding:"min=0"`
	Unit        string  `json:"unit" binding:"max=50"`
	MinQuantity float64 `json:"min_quantity" binding:"min=0"`
	LastUpdated string  `json:"last_updated" binding:"omitempty,project_date"`
	Location    string  `json:"location" binding:"max=200"`
}

// AddItem handles registering a new inventory item.
// @Summary     Add an inventory item
// @Tags        inventory
// @Accept      json
// @Produce     json
// @Param       request body AddItemRequest true "Item details"
// @Success     201 {object} models.InventoryItem
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /inventory [post]
func (h *InventoryHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	item, err := h.inventoryService.AddItem(
		req.Name,
		models.InventoryCategory(req.Category),
		req.Quantity,
		req.Unit,
		req.MinQuantity,
		req.LastUpdated,
		req.Location,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"item": newItemView(*item)})
}

// StockAdjustmentRequest represents a receive or consume payload.
type StockAdjustmentRequest struct {
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
	Date     string  `json:"date" binding:"required,project_date"`
}

// ReceiveStock handles a stock delivery.
// @Summary     Receive stock
// @Tags        inventory
// @Accept      json
// @Produce     json
// @Param       id      path string                 true "Item ID"
// @Param       request body StockAdjustmentRequest true "Delivery details"
// @Success     200 {object} models.InventoryItem
// @Failure     404 {object} ErrorResponse "Item not found"
// @Router      /inventory/{id}/receive [post]
func (h *InventoryHandler) ReceiveStock(c *gin.Context) {
	var req StockAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	item, err := h.inventoryService.ReceiveStock(c.Param("id"), req.Quantity, req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": newItemView(*item)})
}

// ConsumeStock handles stock being used on site.
// @Summary     Consume stock
// @Tags        inventory
// @Accept      json
// @Produce     json
// @Param       id      path string                 true "Item ID"
// @Param       request body StockAdjustmentRequest true "Consumption details"
// @Success     200 {object} models.InventoryItem
// @Failure     400 {object} ErrorResponse "Insufficient stock"
// @Failure     404 {object} ErrorResponse "Item not found"
// @Router      /inventory/{id}/consume [post]
func (h *InventoryHandler) ConsumeStock(c *gin.Context) {
	var req StockAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	item, err := h.inventoryService.ConsumeStock(c.Param("id"), req.Quantity, req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": newItemView(*item)})
}

// GetLowStock handles the low-stock alert view.
// @Summary     Get low-stock items
// @Tags        inventory
// @Produce     json
// @Success     200 {object} map[string]interface{}
// @Router      /inventory/low-stock [get]
func (h *InventoryHandler) GetLowStock(c *gin.Context) {
	items, err := h.inventoryService.GetItems()
	if err != nil {
		respondWithError(c, err)
		return
	}

	flagged := insights.LowStock(items)
	views := make([]inventoryItemView, 0, len(flagged))
	for _, item := range flagged {
		views = append(views, newItemView(item))
	}
	c.JSON(http.StatusOK, gin.H{"items": views, "count": len(views)})
}
