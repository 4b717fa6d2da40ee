package handler

import (
	propertyapp "github.com/arenda/backend/internal/application/property"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReservationHandler handles reservation-related API endpoints
type ReservationHandler struct {
	BaseHandler
	reservationService *propertyapp.ReservationService
}

// NewReservationHandler creates a new ReservationHandler
func NewReservationHandler(reservationService *propertyapp.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationService: reservationService}
}

// Create places a hold on a premise until the given deadline
func (h *ReservationHandler) Create(c *gin.Context) {
	var req propertyapp.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	reservation, err := h.reservationService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, reservation)
}

// GetByID retrieves a reservation by its ID
func (h *ReservationHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid reservation ID format")
		return
	}

	reservation, err := h.reservationService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, reservation)
}

// List returns reservations matching the filter
func (h *ReservationHandler) List(c *gin.Context) {
	var filter propertyapp.ReservationListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	reservations, err := h.reservationService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, reservations)
}

// Cancel releases a hold; the premise frees up unless another hold or an
// occupying lease remains
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid reservation ID format")
		return
	}

	reservation, err := h.reservationService.Cancel(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, reservation)
}

// Expire sweeps reservations past their deadline
func (h *ReservationHandler) Expire(c *gin.Context) {
	result, err := h.reservationService.ExpireNow(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
