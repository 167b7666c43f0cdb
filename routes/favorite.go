package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	favoriteControllers "github.com/Suggarr/OnlineStore-sub000/controllers/favorite"
	"github.com/Suggarr/OnlineStore-sub000/middleware"
)

// SetupFavoriteRoutes registers the authenticated favorites endpoints.
func SetupFavoriteRoutes(r *gin.Engine, db *gorm.DB) {
	favGroup := r.Group("/api/favorites")
	favGroup.Use(middleware.ValidateToken)
	{
		favGroup.GET("", favoriteControllers.GetFavorites(db))
		favGroup.POST("/:id/toggle", favoriteControllers.ToggleFavorite(db))
	}
}
