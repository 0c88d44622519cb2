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

var errInvalidItemPayload = pkg.NewDomainErrorSimple("INVALID_ITEM_INPUT", "Invalid item payload", http.StatusBadRequest)

// ItemHandler serves the catalog of goods and services.
type ItemHandler struct {
	usecase usecase.IItemUseCase
}

func NewItemHandler(uc usecase.IItemUseCase) *ItemHandler {
	return &ItemHandler{usecase: uc}
}

func (h *ItemHandler) ListItems(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromItems(h.usecase.List(c.Request.Context())))
}

func (h *ItemHandler) GetItem(c *gin.Context) {
	item, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapItemError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromItem(item))
}

func (h *ItemHandler) CreateItem(c *gin.Context) {
	var payload request.ItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidItemPayload)
		return
	}
	item, err := h.usecase.Create(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		respondError(c, mapItemError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromItem(item))
}

func (h *ItemHandler) UpdateItem(c *gin.Context) {
	var payload request.ItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidItemPayload)
		return
	}
	item, err := h.usecase.Update(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		respondError(c, mapItemError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromItem(item))
}

func (h *ItemHandler) DeleteItem(c *gin.Context) {
	if !confirmed(c) {
		respondError(c, errConfirmationRequired)
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapItemError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapItemError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidItemID),
		errors.Is(err, usecase.ErrInvalidItemName),
		errors.Is(err, usecase.ErrInvalidGSTRate),
		errors.Is(err, usecase.ErrInvalidSaleRate):
		return pkg.NewDomainError("INVALID_ITEM_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Item not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
