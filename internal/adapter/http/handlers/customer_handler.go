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

var errInvalidCustomerPayload = pkg.NewDomainErrorSimple("INVALID_CUSTOMER_INPUT", "Invalid customer payload", http.StatusBadRequest)

type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

// ListCustomers returns every customer, or the ones matching ?q= by name or phone.
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	ctx := c.Request.Context()
	if q, ok := c.GetQuery("q"); ok {
		c.JSON(http.StatusOK, response.FromCustomers(h.usecase.Search(ctx, q)))
		return
	}
	c.JSON(http.StatusOK, response.FromCustomers(h.usecase.List(ctx)))
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

func (h *CustomerHandler) GetCustomerByPhone(c *gin.Context) {
	customer, err := h.usecase.FindByPhone(c.Request.Context(), c.Param("phone"))
	if err != nil {
		respondError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

// Autofill returns the estimate form fields for a known phone number.
func (h *CustomerHandler) Autofill(c *gin.Context) {
	details, ok := h.usecase.Autofill(c.Request.Context(), c.Param("phone"))
	if !ok {
		respondError(c, mapCustomerError(usecase.ErrCustomerNotFound))
		return
	}
	c.JSON(http.StatusOK, response.FromCustomerDetails(details))
}

func (h *CustomerHandler) ListCustomerEstimates(c *gin.Context) {
	estimates, err := h.usecase.Estimates(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimates(estimates))
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidCustomerPayload)
		return
	}
	customer, err := h.usecase.Create(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		respondError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromCustomer(customer))
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidCustomerPayload)
		return
	}
	customer, err := h.usecase.Update(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		respondError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	if !confirmed(c) {
		respondError(c, errConfirmationRequired)
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapCustomerError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCustomerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerID),
		errors.Is(err, usecase.ErrInvalidCustomerName),
		errors.Is(err, usecase.ErrInvalidCustomerPhone):
		return pkg.NewDomainError("INVALID_CUSTOMER_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
