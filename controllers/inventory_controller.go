package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/entity"
	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/pkg/resp"
	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/services"
	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/utils"
	"github.com/gin-gonic/gin"
)

type CreateInventoryItemRequest struct {
	Name           string     `json:"name" binding:"required"`
	Category       string     `json:"category" binding:"required"`
	CurrentStock   int        `json:"currentStock" binding:"min=0"`
	MinimumStock   int        `json:"minimumStock" binding:"min=0"`
	Unit           string     `json:"unit" binding:"required"`
	UnitPrice      string     `json:"unitPrice" binding:"required"`
	Supplier       string     `json:"supplier"`
	ExpirationDate *time.Time `json:"expirationDate"`
}

type UpdateInventoryItemRequest struct {
	Name           *string    `json:"name"`
	Category       *string    `json:"category"`
	CurrentStock   *int       `json:"currentStock"`
	MinimumStock   *int       `json:"minimumStock"`
	Unit           *string    `json:"unit"`
	UnitPrice      *string    `json:"unitPrice"`
	Supplier       *string    `json:"supplier"`
	ExpirationDate *time.Time `json:"expirationDate"`
}

func (r *UpdateInventoryItemRequest) updates() map[string]any {
	updates := map[string]any{}
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Category != nil {
		updates["category"] = *r.Category
	}
	if r.CurrentStock != nil {
		updates["current_stock"] = *r.CurrentStock
	}
	if r.MinimumStock != nil {
		updates["minimum_stock"] = *r.MinimumStock
	}
	if r.Unit != nil {
		updates["unit"] = *r.Unit
	}
	if r.UnitPrice != nil {
		updates["unit_price"] = *r.UnitPrice
	}
	if r.Supplier != nil {
		updates["supplier"] = *r.Supplier
	}
	if r.ExpirationDate != nil {
		updates["expiration_date"] = *r.ExpirationDate
	}
	return updates
}

type RestockRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

type InventoryController struct {
	Service *services.InventoryService
}

func NewInventoryController(s *services.InventoryService) *InventoryController {
	return &InventoryController{Service: s}
}

// GET /api/inventory
func (ctl *InventoryController) List(c *gin.Context) {
	items, err := ctl.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /api/inventory
func (ctl *InventoryController) Create(c *gin.Context) {
	var req CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid inventory data")
		return
	}

	item := entity.InventoryItem{
		Name:           req.Name,
		Category:       req.Category,
		CurrentStock:   req.CurrentStock,
		MinimumStock:   req.MinimumStock,
		Unit:           req.Unit,
		UnitPrice:      req.UnitPrice,
		Supplier:       req.Supplier,
		ExpirationDate: req.ExpirationDate,
	}
	if err := ctl.Service.Create(&item); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, item)
}

// PATCH /api/inventory/:id
func (ctl *InventoryController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid inventory id")
		return
	}

	var req UpdateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid inventory data")
		return
	}

	item, err := ctl.Service.Update(uint(id), req.updates())
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "inventory item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /api/inventory/:id
func (ctl *InventoryController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid inventory id")
		return
	}

	if err := ctl.Service.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "inventory item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.NoContent(c)
}

// GET /api/inventory/:id/movements
func (ctl *InventoryController) Movements(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid inventory id")
		return
	}

	movements, err := ctl.Service.Movements(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "inventory item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, movements)
}

// POST /api/inventory/:id/restock
func (ctl *InventoryController) Restock(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid inventory id")
		return
	}

	var req RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid restock data")
		return
	}

	item, err := ctl.Service.Restock(uint(id), req.Quantity, utils.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "inventory item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}
