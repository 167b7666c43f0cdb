package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Suggarr/OnlineStore-sub000/models"
)

func GetCategory(db *gorm.DB, id uint) (*models.Category, error) {
	var category models.Category
	if err := db.Preload("Products").First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category %w", ErrNotFound)
		}
		return nil, err
	}
	return &category, nil
}

func ListCategories(db *gorm.DB) ([]models.Category, error) {
	var categories []models.Category
	if err := db.Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func CreateCategory(db *gorm.DB, name, description, image string) (*models.Category, error) {
	var existing models.Category
	err := db.Where("name = ?", name).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("category name %w", ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := models.Category{Name: name, Description: description, Image: image}
	if err := db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func UpdateCategory(db *gorm.DB, id uint, name, description, image string) (*models.Category, error) {
	var category models.Category
	if err := db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category %w", ErrNotFound)
		}
		return nil, err
	}

	var clash models.Category
	err := db.Where("id <> ? AND name = ?", id, name).First(&clash).Error
	if err == nil {
		return nil, fmt.Errorf("category name %w", ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category.Name = name
	category.Description = description
	category.Image = image
	if err := db.Save(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes the category together with its products and those
// products' favorites.
func DeleteCategory(db *gorm.DB, id uint) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	productIDs := tx.Model(&models.Product{}).Select("id").Where("category_id = ?", id)
	if err := tx.Where("product_id IN (?)", productIDs).Delete(&models.Favorite{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("category_id = ?", id).Delete(&models.Product{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	result := tx.Delete(&models.Category{}, id)
	if result.Error != nil {
		tx.Rollback()
		return result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return fmt.Errorf("category %w", ErrNotFound)
	}
	return tx.Commit().Error
}
