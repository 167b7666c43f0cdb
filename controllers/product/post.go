package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Suggarr/OnlineStore-sub000/services"
)

type ProductInput struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Image       string          `json:"image"`
	CategoryID  uint            `json:"category_id" binding:"required"`
}

// CreateProduct creates a new product in an existing category.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := services.CreateProduct(db, input.Name, input.Description,
			input.Image, input.Price, input.CategoryID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidPrice):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be positive"})
			case errors.Is(err, services.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			}
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
