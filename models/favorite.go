package models

import "time"

type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"uniqueIndex:idx_favorite_user_product;not null" json:"user_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_favorite_user_product;not null" json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
}
