package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	response "construction_console/internal/adapter/http/dto/response"
	"construction_console/internal/usecase"
	"construction_console/pkg"
)

// SuggestionHandler serves catalog item suggestions for a project scope.
type SuggestionHandler struct {
	usecase usecase.ISuggestionUseCase
}

func NewSuggestionHandler(uc usecase.ISuggestionUseCase) *SuggestionHandler {
	return &SuggestionHandler{usecase: uc}
}

// SuggestItems answers with an empty list when no suggestions are available.
func (h *SuggestionHandler) SuggestItems(c *gin.Context) {
	items, err := h.usecase.Suggest(c.Request.Context(), c.Query("scope"))
	if err != nil {
		respondError(c, mapSuggestionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromItems(items))
}

func mapSuggestionError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrInvalidScope) {
		return pkg.NewDomainError("INVALID_SCOPE", err.Error(), err, http.StatusBadRequest)
	}
	return internalError(err)
}
