package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Suggarr/OnlineStore-sub000/models"
)

func GetProduct(db *gorm.DB, id uint) (*models.Product, error) {
	var product models.Product
	if err := db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %w", ErrNotFound)
		}
		return nil, err
	}
	return &product, nil
}

// ListProducts returns all products, optionally filtered by category.
// categoryID == 0 means no filter.
func ListProducts(db *gorm.DB, categoryID uint) ([]models.Product, error) {
	query := db.Order("id")
	if categoryID != 0 {
		query = query.Where("category_id = ?", categoryID)
	}
	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func CreateProduct(db *gorm.DB, name, description, image string, price decimal.Decimal, categoryID uint) (*models.Product, error) {
	if !price.IsPositive() {
		return nil, ErrInvalidPrice
	}
	var category models.Category
	if err := db.First(&category, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category %w", ErrNotFound)
		}
		return nil, err
	}

	product := models.Product{
		Name:        name,
		Description: description,
		Price:       price,
		Image:       image,
		CategoryID:  categoryID,
	}
	if err := db.Create(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func UpdateProduct(db *gorm.DB, id uint, name, description, image string, price decimal.Decimal, categoryID uint) (*models.Product, error) {
	if !price.IsPositive() {
		return nil, ErrInvalidPrice
	}
	product, err := GetProduct(db, id)
	if err != nil {
		return nil, err
	}
	if categoryID != product.CategoryID {
		var category models.Category
		if err := db.First(&category, categoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("category %w", ErrNotFound)
			}
			return nil, err
		}
	}

	product.Name = name
	product.Description = description
	product.Price = price
	product.Image = image
	product.CategoryID = categoryID
	if err := db.Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes the product and the favorites pointing at it. Cart
// and order lines keep their snapshots.
func DeleteProduct(db *gorm.DB, id uint) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := tx.Where("product_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	result := tx.Delete(&models.Product{}, id)
	if result.Error != nil {
		tx.Rollback()
		return result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return fmt.Errorf("product %w", ErrNotFound)
	}
	return tx.Commit().Error
}
