package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	userControllers "github.com/Suggarr/OnlineStore-sub000/controllers/user"
	"github.com/Suggarr/OnlineStore-sub000/middleware"
	"github.com/Suggarr/OnlineStore-sub000/models"
)

// SetupUserRoutes registers account-management endpoints. Role changes and
// deletes pass through the superadmin guard before the handler runs.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/api/users")
	userGroup.Use(middleware.ValidateToken)
	{
		userGroup.GET("", middleware.RequireRole(models.RoleAdmin), userControllers.GetUsers(db))
		userGroup.GET("/:id", userControllers.GetUser(db))
		userGroup.PUT("/:id", userControllers.UpdateUser(db))
		userGroup.PATCH("/:id/password", userControllers.ChangePassword(db))
		userGroup.PUT("/:id/role",
			middleware.RequireRole(models.RoleAdmin),
			middleware.SuperAdminGuard(db),
			userControllers.ChangeRole(db))
		userGroup.DELETE("/:id",
			middleware.SuperAdminGuard(db),
			userControllers.DeleteUser(db))
	}
}
