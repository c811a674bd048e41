package entity

import (
	"time"
)

// Cart is keyed by an opaque client-generated token. Created lazily on
// first read or write, never expired.
type Cart struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`

	Items []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (Cart) TableName() string { return "carts" }
