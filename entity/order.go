package entity

// Order is the immutable header written at checkout. Date and time are kept
// as separate columns to match the catalog schema.
type Order struct {
	ID   uint   `json:"order_id" gorm:"column:order_id;primaryKey;autoIncrement"`
	Date string `json:"date"`
	Time string `json:"time"`

	Details []OrderDetail `json:"-" gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string { return "orders" }

type OrderDetail struct {
	OrderID  uint   `json:"order_id" gorm:"column:order_id;primaryKey"`
	PizzaID  string `json:"pizza_id" gorm:"column:pizza_id;primaryKey"`
	Quantity int    `json:"quantity"`
}

func (OrderDetail) TableName() string { return "order_details" }
