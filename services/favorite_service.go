package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Suggarr/OnlineStore-sub000/models"
)

// ToggleFavorite flips the bookmark state for (user, product) and reports the
// resulting state: true when the favorite now exists, false when it was
// removed.
func ToggleFavorite(db *gorm.DB, userID string, productID uint) (bool, error) {
	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, fmt.Errorf("product %w", ErrNotFound)
		}
		return false, err
	}

	var fav models.Favorite
	err := db.Where("user_id = ? AND product_id = ?", userID, productID).First(&fav).Error
	if err == nil {
		if err := db.Delete(&fav).Error; err != nil {
			return false, err
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	fav = models.Favorite{UserID: userID, ProductID: productID}
	if err := db.Create(&fav).Error; err != nil {
		return false, err
	}
	return true, nil
}

func ListFavorites(db *gorm.DB, userID string) ([]models.Favorite, error) {
	var favs []models.Favorite
	if err := db.Where("user_id = ?", userID).Order("created_at").Find(&favs).Error; err != nil {
		return nil, err
	}
	return favs, nil
}
