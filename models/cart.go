package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one line of a user's cart. A user's cart is simply the set of
// their CartItem rows; product name/price/image are captured at add-time so
// the line survives later product edits.
type CartItem struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	UserID       string          `gorm:"index;not null" json:"user_id"`
	ProductID    uint            `gorm:"index;not null" json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductPrice decimal.Decimal `gorm:"type:numeric" json:"product_price"`
	ProductImage string          `json:"product_image"`
	Quantity     int             `gorm:"not null" json:"quantity"`
	AddedAt      time.Time       `json:"added_at"`
}
