package controllers

import (
	"errors"
	"strconv"

	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/entity"
	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/pkg/resp"
	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/services"
	"github.com/gin-gonic/gin"
)

type CreateTableRequest struct {
	Number   int    `json:"number" binding:"required,min=1"`
	Capacity int    `json:"capacity" binding:"required,min=1"`
	Status   string `json:"status" binding:"omitempty,oneof=available occupied reserved unavailable"`
	Location string `json:"location"`
}

type UpdateTableStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=available occupied reserved unavailable"`
}

type TableController struct {
	Service *services.TableService
}

func NewTableController(s *services.TableService) *TableController {
	return &TableController{Service: s}
}

// GET /api/tables
func (ctl *TableController) List(c *gin.Context) {
	tables, err := ctl.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, tables)
}

// GET /api/customer/tables
func (ctl *TableController) ListAvailable(c *gin.Context) {
	tables, err := ctl.Service.ListAvailable()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, tables)
}

// POST /api/tables
func (ctl *TableController) Create(c *gin.Context) {
	var req CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid table data")
		return
	}

	table := entity.Table{
		Number:   req.Number,
		Capacity: req.Capacity,
		Status:   req.Status,
		Location: req.Location,
	}
	if table.Status == "" {
		table.Status = entity.TableAvailable
	}

	if err := ctl.Service.Create(&table); err != nil {
		if errors.Is(err, services.ErrTableNumberTaken) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, table)
}

// PATCH /api/tables/:id/status
func (ctl *TableController) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid table id")
		return
	}

	var req UpdateTableStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid status")
		return
	}

	table, err := ctl.Service.UpdateStatus(uint(id), req.Status)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "table not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, table)
}
