package routes

import (
	"github.com/gin-gonic/gin"

	"construction_console/internal/adapter/http/handlers"
)

const (
	PathItems     = "/items"
	PathCustomers = "/customers"
	PathFollowUps = "/followups"
)

func addCatalogRoutes(rg *gin.RouterGroup, itemHandler *handlers.ItemHandler, suggestionHandler *handlers.SuggestionHandler, customerHandler *handlers.CustomerHandler, followUpHandler *handlers.FollowUpHandler) {
	items := rg.Group(PathItems)
	{
		items.GET("", itemHandler.ListItems)
		items.POST("", itemHandler.CreateItem)
		items.POST("/suggestions", suggestionHandler.SuggestItems)
		items.GET("/:id", itemHandler.GetItem)
		items.PUT("/:id", itemHandler.UpdateItem)
		items.DELETE("/:id", itemHandler.DeleteItem)
	}

	customers := rg.Group(PathCustomers)
	{
		customers.GET("", customerHandler.ListCustomers)
		customers.POST("", customerHandler.CreateCustomer)
		customers.GET("/phone/:phone", customerHandler.GetCustomerByPhone)
		customers.GET("/phone/:phone/autofill", customerHandler.Autofill)
		customers.GET("/:id", customerHandler.GetCustomer)
		customers.PUT("/:id", customerHandler.UpdateCustomer)
		customers.DELETE("/:id", customerHandler.DeleteCustomer)
		customers.GET("/:id/estimates", customerHandler.ListCustomerEstimates)
	}

	followUps := rg.Group(PathFollowUps)
	{
		followUps.GET("", followUpHandler.ListFollowUps)
		followUps.POST("", followUpHandler.CreateFollowUp)
		followUps.GET("/:id", followUpHandler.GetFollowUp)
		followUps.PUT("/:id", followUpHandler.UpdateFollowUp)
		followUps.PATCH("/:id/toggle", followUpHandler.ToggleFollowUp)
		followUps.DELETE("/:id", followUpHandler.DeleteFollowUp)
	}
}
