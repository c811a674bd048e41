package entity

import (
	"github.com/shopspring/decimal"
)

// Pizza is one sellable (type, size) combination with its price.
type Pizza struct {
	ID          string          `json:"id" gorm:"column:pizza_id;primaryKey"`
	PizzaTypeID string          `json:"pizzaTypeId" gorm:"column:pizza_type_id;index"`
	Size        string          `json:"size"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
}

func (Pizza) TableName() string { return "pizzas" }
