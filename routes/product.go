package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/Suggarr/OnlineStore-sub000/controllers/product"
	"github.com/Suggarr/OnlineStore-sub000/middleware"
	"github.com/Suggarr/OnlineStore-sub000/models"
)

// SetupProductRoutes registers product and category endpoints. Reads are
// public; mutation requires at least the admin role.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/api/products")
	{
		products.GET("", productcontroller.GetProducts(db))
		products.GET("/:id", productcontroller.GetProductByID(db))
	}

	adminProducts := r.Group("/api/products")
	adminProducts.Use(middleware.ValidateToken, middleware.RequireRole(models.RoleAdmin))
	{
		adminProducts.POST("", productcontroller.CreateProduct(db))
		adminProducts.PUT("/:id", productcontroller.UpdateProduct(db))
		adminProducts.DELETE("/:id", productcontroller.DeleteProduct(db))
	}

	categories := r.Group("/api/categories")
	{
		categories.GET("", productcontroller.GetCategories(db))
		categories.GET("/:id", productcontroller.GetCategoryByID(db))
	}

	adminCategories := r.Group("/api/categories")
	adminCategories.Use(middleware.ValidateToken, middleware.RequireRole(models.RoleAdmin))
	{
		adminCategories.POST("", productcontroller.CreateCategory(db))
		adminCategories.PUT("/:id", productcontroller.UpdateCategory(db))
		adminCategories.DELETE("/:id", productcontroller.DeleteCategory(db))
	}
}
