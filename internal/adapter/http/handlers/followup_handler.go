package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "construction_console/internal/adapter/http/dto/request"
	response "construction_console/internal/adapter/http/dto/response"
	"construction_console/internal/usecase"
	"construction_console/pkg"
)

var errInvalidFollowUpPayload = pkg.NewDomainErrorSimple("INVALID_FOLLOWUP_INPUT", "Invalid follow-up payload", http.StatusBadRequest)

type FollowUpHandler struct {
	usecase usecase.IFollowUpUseCase
}

func NewFollowUpHandler(uc usecase.IFollowUpUseCase) *FollowUpHandler {
	return &FollowUpHandler{usecase: uc}
}

// ListFollowUps returns follow-ups in schedule order.
func (h *FollowUpHandler) ListFollowUps(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromFollowUps(h.usecase.List(c.Request.Context())))
}

func (h *FollowUpHandler) GetFollowUp(c *gin.Context) {
	f, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapFollowUpError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFollowUp(f))
}

func (h *FollowUpHandler) CreateFollowUp(c *gin.Context) {
	var payload request.FollowUpRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidFollowUpPayload)
		return
	}
	f, err := h.usecase.Create(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		respondError(c, mapFollowUpError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromFollowUp(f))
}

func (h *FollowUpHandler) UpdateFollowUp(c *gin.Context) {
	var payload request.FollowUpRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidFollowUpPayload)
		return
	}
	f, err := h.usecase.Update(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		respondError(c, mapFollowUpError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFollowUp(f))
}

func (h *FollowUpHandler) ToggleFollowUp(c *gin.Context) {
	f, err := h.usecase.Toggle(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapFollowUpError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFollowUp(f))
}

func (h *FollowUpHandler) DeleteFollowUp(c *gin.Context) {
	if !confirmed(c) {
		respondError(c, errConfirmationRequired)
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapFollowUpError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapFollowUpError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidFollowUpID),
		errors.Is(err, usecase.ErrInvalidFollowUpDate),
		errors.Is(err, usecase.ErrInvalidFollowUpTime),
		errors.Is(err, usecase.ErrInvalidFollowUpReason),
		errors.Is(err, usecase.ErrInvalidFollowUpStatus):
		return pkg.NewDomainError("INVALID_FOLLOWUP_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFollowUpCustomerAbsent):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrFollowUpNotFound):
		return pkg.NewDomainErrorSimple("FOLLOWUP_NOT_FOUND", "Follow-up not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
