package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	request "construction_console/internal/adapter/http/dto/request"
	response "construction_console/internal/adapter/http/dto/response"
	"construction_console/internal/domain/entities"
	"construction_console/internal/usecase"
	"construction_console/pkg"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
	errInvalidStatusFilter    = pkg.NewDomainErrorSimple("INVALID_STATUS", "Status must be Pending, Converted or Rejected", http.StatusBadRequest)
)

// EstimateHandler handles HTTP requests for estimates and their revisions.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// ListEstimates returns estimates newest first, optionally filtered by status and phone.
func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	filter := usecase.EstimateFilter{
		Status: entities.EstimateStatus(strings.TrimSpace(c.Query("status"))),
		Phone:  strings.TrimSpace(c.Query("phone")),
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		respondError(c, errInvalidStatusFilter)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimates(h.usecase.List(c.Request.Context(), filter)))
}

func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	e, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(e))
}

// CreateEstimate saves a new estimate. The customer list and catalog are reconciled
// with it before the estimate itself is written.
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidEstimatePayload)
		return
	}

	saved, err := h.usecase.Save(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSavedEstimate(saved))
}

// SaveEstimate stores the estimate under the id of the path. An unknown id is created,
// which is how revision drafts are saved.
func (h *EstimateHandler) SaveEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidEstimatePayload)
		return
	}
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		respondError(c, mapEstimateError(usecase.ErrInvalidEstimateID))
		return
	}

	saved, err := h.usecase.Save(c.Request.Context(), payload.ToEntity(id))
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	status := http.StatusOK
	if saved.Created {
		status = http.StatusCreated
	}
	c.JSON(status, response.FromSavedEstimate(saved))
}

// PriceEstimate previews the totals of the posted lines.
func (h *EstimateHandler) PriceEstimate(c *gin.Context) {
	var payload request.PriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidEstimatePayload)
		return
	}
	_, result := h.usecase.Price(payload.ToEntity())
	c.JSON(http.StatusOK, response.FromPricing(result))
}

func (h *EstimateHandler) UpdateStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidEstimatePayload)
		return
	}

	e, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), payload.Status)
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(e))
}

// ReviseEstimate returns an unsaved draft of the next revision.
func (h *EstimateHandler) ReviseEstimate(c *gin.Context) {
	draft, err := h.usecase.Revise(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(draft))
}

func (h *EstimateHandler) ListRevisions(c *gin.Context) {
	chain, err := h.usecase.Revisions(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimates(chain))
}

func (h *EstimateHandler) DeleteEstimate(c *gin.Context) {
	if !confirmed(c) {
		respondError(c, errConfirmationRequired)
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return errInvalidStatusFilter
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
