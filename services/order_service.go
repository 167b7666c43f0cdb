package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Suggarr/OnlineStore-sub000/models"
)

// CreateOrder snapshots the caller's cart into an immutable order and clears
// the cart. Both steps happen in one transaction: either the order exists and
// the cart is empty, or nothing changed.
func CreateOrder(db *gorm.DB, userID string) (*models.Order, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var cartItems []models.CartItem
	if err := tx.Where("user_id = ?", userID).Order("added_at").Find(&cartItems).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if len(cartItems) == 0 {
		tx.Rollback()
		return nil, ErrCartEmpty
	}

	order := models.Order{UserID: userID}
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	orderItems := make([]models.OrderItem, 0, len(cartItems))
	for _, ci := range cartItems {
		orderItems = append(orderItems, models.OrderItem{
			OrderID:      order.ID,
			ProductID:    ci.ProductID,
			ProductName:  ci.ProductName,
			ProductPrice: ci.ProductPrice,
			ProductImage: ci.ProductImage,
			Quantity:     ci.Quantity,
		})
	}
	if err := tx.CreateInBatches(&orderItems, len(orderItems)).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	order.Items = orderItems
	return &order, nil
}

func ListOrders(db *gorm.DB, userID string) ([]models.Order, error) {
	var orders []models.Order
	err := db.Preload("Items").Where("user_id = ?", userID).
		Order("created_at DESC").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder is scoped to the owner; someone else's order reads as absent.
func GetOrder(db *gorm.DB, userID string, orderID uint) (*models.Order, error) {
	var order models.Order
	err := db.Preload("Items").Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %w", ErrNotFound)
		}
		return nil, err
	}
	return &order, nil
}
