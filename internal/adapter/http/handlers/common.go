package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"construction_console/internal/config"
	"construction_console/pkg"
)

var errConfirmationRequired = pkg.NewDomainErrorSimple("CONFIRMATION_REQUIRED", "Deletion must be confirmed with confirm=true", http.StatusPreconditionRequired)

func respondError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError && appErr.Err != nil {
		config.LogError(config.GetLogger(), "http", c.HandlerName(), c.Request.Method+" "+c.FullPath(), nil, appErr.Err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// confirmed reports whether a destructive request carries confirm=true.
func confirmed(c *gin.Context) bool {
	ok, _ := strconv.ParseBool(c.Query("confirm"))
	return ok
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
