package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Suggarr/OnlineStore-sub000/auth"
	"github.com/Suggarr/OnlineStore-sub000/middleware"
)

// SetupAuthRoutes registers the anonymous register/login endpoints and the
// authenticated logout.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", auth.Register(db))
		authGroup.POST("/login", auth.Login(db))
		authGroup.POST("/logout", middleware.ValidateToken, auth.Logout())
	}
}
