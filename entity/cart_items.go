package entity

import (
	"github.com/shopspring/decimal"
)

type CartItem struct {
	ID     uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	CartID string `json:"-" gorm:"index"`

	PizzaID  string          `json:"pizzaId" gorm:"column:pizza_id"`
	Name     string          `json:"name"`
	Size     string          `json:"size"`
	Quantity int             `json:"quantity"`
	Crust    string          `json:"crust"`
	Price    decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	Toppings []string        `json:"toppings" gorm:"serializer:json"`
}

func (CartItem) TableName() string { return "cart_items" }
