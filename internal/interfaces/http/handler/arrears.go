package handler

import (
	"errors"
	"io"

	arrearsapp "github.com/arenda/backend/internal/application/arrears"
	"github.com/gin-gonic/gin"
)

// ArrearsHandler handles debt aging and penalty API endpoints
type ArrearsHandler struct {
	BaseHandler
	arrearsService *arrearsapp.ArrearsService
}

// NewArrearsHandler creates a new ArrearsHandler
func NewArrearsHandler(arrearsService *arrearsapp.ArrearsService) *ArrearsHandler {
	return &ArrearsHandler{arrearsService: arrearsService}
}

// Aging returns outstanding debt per tenant, bucketed by days overdue
func (h *ArrearsHandler) Aging(c *gin.Context) {
	var req arrearsapp.AgingRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}

	report, err := h.arrearsService.ComputeAging(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, report)
}

// PreviewPenalties computes late-payment penalties without recording them
func (h *ArrearsHandler) PreviewPenalties(c *gin.Context) {
	req, err := bindPenaltyRunRequest(c)
	if err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.arrearsService.PreviewPenalties(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// RunPenalties computes and records late-payment penalties. A rerun replaces
// figures for the same lease and window.
func (h *ArrearsHandler) RunPenalties(c *gin.Context) {
	req, err := bindPenaltyRunRequest(c)
	if err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.arrearsService.RunPenalties(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// bindPenaltyRunRequest reads the optional run body; an empty body means
// "as of now"
func bindPenaltyRunRequest(c *gin.Context) (arrearsapp.PenaltyRunRequest, error) {
	var req arrearsapp.PenaltyRunRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, nil
}

// ListPenalties returns recorded penalties matching the filter
func (h *ArrearsHandler) ListPenalties(c *gin.Context) {
	var filter arrearsapp.PenaltyListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	penalties, err := h.arrearsService.ListPenalties(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, penalties)
}
