package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Suggarr/OnlineStore-sub000/models"
)

func GetCart(db *gorm.DB, userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := db.Where("user_id = ?", userID).Order("added_at").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// AddToCart inserts a cart line with a product snapshot, or increments the
// quantity of an existing line for the same product. The per-request quantity
// range is enforced by the request DTO; repeated adds accumulate without cap.
func AddToCart(db *gorm.DB, userID string, productID uint, quantity int) (*models.CartItem, error) {
	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %w", ErrNotFound)
		}
		return nil, err
	}

	var item models.CartItem
	err := db.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
	if err == nil {
		item.Quantity += quantity
		item.AddedAt = time.Now()
		if err := db.Save(&item).Error; err != nil {
			return nil, err
		}
		return &item, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	item = models.CartItem{
		UserID:       userID,
		ProductID:    product.ID,
		ProductName:  product.Name,
		ProductPrice: product.Price,
		ProductImage: product.Image,
		Quantity:     quantity,
		AddedAt:      time.Now(),
	}
	if err := db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// SetCartItemQuantity replaces the quantity of one of the caller's lines.
func SetCartItemQuantity(db *gorm.DB, userID string, itemID uint, quantity int) (*models.CartItem, error) {
	var item models.CartItem
	err := db.Where("id = ? AND user_id = ?", itemID, userID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart item %w", ErrNotFound)
		}
		return nil, err
	}
	item.Quantity = quantity
	if err := db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func RemoveCartItem(db *gorm.DB, userID string, itemID uint) error {
	result := db.Where("id = ? AND user_id = ?", itemID, userID).Delete(&models.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("cart item %w", ErrNotFound)
	}
	return nil
}

func ClearCart(db *gorm.DB, userID string) error {
	return db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
