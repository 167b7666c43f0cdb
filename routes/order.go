package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/Suggarr/OnlineStore-sub000/controllers/order"
	"github.com/Suggarr/OnlineStore-sub000/middleware"
)

// SetupOrderRoutes registers the authenticated order endpoints. Orders are
// created from the caller's cart and are read-only afterwards.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orderGroup := r.Group("/api/orders")
	orderGroup.Use(middleware.ValidateToken)
	{
		orderGroup.POST("", orderControllers.CreateOrder(db))
		orderGroup.GET("", orderControllers.GetOrders(db))
		orderGroup.GET("/:id", orderControllers.GetOrderByID(db))
	}
}
