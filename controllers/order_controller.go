package controllers

import (
	"errors"
	"strconv"

	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/pkg/resp"
	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/services"
	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/utils"
	"github.com/gin-gonic/gin"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending preparing served completed cancelled"`
}

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Service: s}
}

// POST /api/orders
func (ctl *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderInput
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid order data")
		return
	}

	order, err := ctl.Service.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, order)
}

// GET /api/orders/my
func (ctl *OrderController) ListMine(c *gin.Context) {
	orders, err := ctl.Service.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /api/orders
func (ctl *OrderController) List(c *gin.Context) {
	orders, err := ctl.Service.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// PATCH /api/orders/:id/status
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid status")
		return
	}

	order, err := ctl.Service.UpdateStatus(uint(id), req.Status)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}
