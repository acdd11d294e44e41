package handler

import (
	"serializable-txn/internal/adapter/http/dto"
	"serializable-txn/internal/core/ports"
	"serializable-txn/pkg/apperror"
	"serializable-txn/pkg/response"

	"github.com/gin-gonic/gin"
)

// CounterHandler handles counter endpoints.
type CounterHandler struct {
	counterSvc ports.CounterService
}

// NewCounterHandler creates a new CounterHandler.
func NewCounterHandler(counterSvc ports.CounterService) *CounterHandler {
	return &CounterHandler{counterSvc: counterSvc}
}

// Get handles GET /api/v1/counters/:name.
func (h *CounterHandler) Get(c *gin.Context) {
	counter, err := h.counterSvc.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.CounterResponse{Name: counter.Name, Value: counter.Value})
}

// Increment handles POST /api/v1/counters/:name/increment.
func (h *CounterHandler) Increment(c *gin.Context) {
	var req dto.IncrementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	counter, err := h.counterSvc.Increment(c.Request.Context(), c.Param("name"), req.Delta)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.CounterResponse{Name: counter.Name, Value: counter.Value})
}
