package controllers

import (
	"errors"
	"strconv"

	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/entity"
	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/pkg/resp"
	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/repository"
	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/services"
	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/utils"
	"github.com/gin-gonic/gin"
)

type CreateReservationRequest struct {
	CustomerName    string `json:"customerName" binding:"required"`
	CustomerEmail   string `json:"customerEmail" binding:"required,email"`
	CustomerPhone   string `json:"customerPhone"`
	TableID         *uint  `json:"tableId"`
	Date            string `json:"date" binding:"required,datetime=2006-01-02"`
	Time            string `json:"time" binding:"required,datetime=15:04"`
	Guests          int    `json:"guests" binding:"required,min=1"`
	Status          string `json:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	SpecialRequests string `json:"specialRequests"`
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled completed"`
}

type ReservationController struct {
	Service *services.ReservationService
}

func NewReservationController(s *services.ReservationService) *ReservationController {
	return &ReservationController{Service: s}
}

// GET /api/reservations?date=&status=&tableId=
func (ctl *ReservationController) List(c *gin.Context) {
	filter := repository.ReservationFilter{
		Date: c.Query("date"),
	}
	// "all" comes from the status dropdown and means no filter
	if status := c.Query("status"); status != "" && status != "all" {
		filter.Status = status
	}
	if raw := c.Query("tableId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			resp.BadRequest(c, "invalid tableId")
			return
		}
		tableID := uint(id)
		filter.TableID = &tableID
	}

	reservations, err := ctl.Service.List(filter)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, reservations)
}

// POST /api/reservations
func (ctl *ReservationController) Create(c *gin.Context) {
	ctl.create(c, nil)
}

// GET /api/customer/reservations
func (ctl *ReservationController) ListMine(c *gin.Context) {
	reservations, err := ctl.Service.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, reservations)
}

// POST /api/customer/reservations
func (ctl *ReservationController) CreateMine(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	ctl.create(c, &userID)
}

func (ctl *ReservationController) create(c *gin.Context, userID *uint) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid reservation data")
		return
	}

	reservation := entity.Reservation{
		UserID:          userID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		TableID:         req.TableID,
		Date:            req.Date,
		Time:            req.Time,
		Guests:          req.Guests,
		Status:          req.Status,
		SpecialRequests: req.SpecialRequests,
	}

	if err := ctl.Service.Create(&reservation); err != nil {
		if errors.Is(err, services.ErrTableMissing) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, reservation)
}

// PATCH /api/reservations/:id/status
func (ctl *ReservationController) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid reservation id")
		return
	}

	var req UpdateReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid status")
		return
	}

	reservation, err := ctl.Service.UpdateStatus(uint(id), req.Status)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "reservation not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, reservation)
}

// DELETE /api/reservations/:id
func (ctl *ReservationController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid reservation id")
		return
	}

	if err := ctl.Service.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "reservation not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.NoContent(c)
}
