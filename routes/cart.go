package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/Suggarr/OnlineStore-sub000/controllers/cart"
	"github.com/Suggarr/OnlineStore-sub000/middleware"
)

// SetupCartRoutes registers the authenticated cart endpoints.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cartGroup := r.Group("/api/cartitems")
	cartGroup.Use(middleware.ValidateToken)
	{
		cartGroup.GET("", cartControllers.GetUserCart(db))
		cartGroup.POST("", cartControllers.AddCartItem(db))
		cartGroup.PATCH("/:id", cartControllers.UpdateCartItemQuantity(db))
		cartGroup.DELETE("/:id", cartControllers.DeleteCartItem(db))
		cartGroup.DELETE("", cartControllers.ClearUserCart(db))
	}
}
