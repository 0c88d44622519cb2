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

var errInvalidCompanyPayload = pkg.NewDomainErrorSimple("INVALID_COMPANY_INPUT", "Invalid company payload", http.StatusBadRequest)

// CompanyHandler serves the letterhead details and logo printed on estimates.
type CompanyHandler struct {
	usecase usecase.ICompanyUseCase
}

func NewCompanyHandler(uc usecase.ICompanyUseCase) *CompanyHandler {
	return &CompanyHandler{usecase: uc}
}

func (h *CompanyHandler) GetInfo(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCompanyInfo(h.usecase.GetInfo(c.Request.Context())))
}

func (h *CompanyHandler) UpdateInfo(c *gin.Context) {
	var payload request.CompanyInfoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidCompanyPayload)
		return
	}
	info, err := h.usecase.UpdateInfo(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, mapCompanyError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCompanyInfo(info))
}

func (h *CompanyHandler) GetLogo(c *gin.Context) {
	logo, err := h.usecase.GetLogo(c.Request.Context())
	if err != nil {
		respondError(c, mapCompanyError(err))
		return
	}
	c.JSON(http.StatusOK, response.LogoResponse{DataURL: logo})
}

func (h *CompanyHandler) UpdateLogo(c *gin.Context) {
	var payload request.LogoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidCompanyPayload)
		return
	}
	if err := h.usecase.UpdateLogo(c.Request.Context(), payload.DataURL); err != nil {
		respondError(c, mapCompanyError(err))
		return
	}
	c.JSON(http.StatusOK, response.LogoResponse{DataURL: payload.DataURL})
}

func (h *CompanyHandler) DeleteLogo(c *gin.Context) {
	if !confirmed(c) {
		respondError(c, errConfirmationRequired)
		return
	}
	if err := h.usecase.DeleteLogo(c.Request.Context()); err != nil {
		respondError(c, mapCompanyError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCompanyError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLogo):
		return pkg.NewDomainErrorSimple("INVALID_LOGO", "Logo must be a base64 image data URL", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLogoTooLarge):
		return pkg.NewDomainErrorSimple("LOGO_TOO_LARGE", err.Error(), http.StatusRequestEntityTooLarge)
	case errors.Is(err, usecase.ErrLogoNotFound):
		return pkg.NewDomainErrorSimple("LOGO_NOT_FOUND", "Logo not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
