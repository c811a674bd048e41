package entity

// PizzaType is one catalog product. The ingredients column doubles as the
// product description on the API.
type PizzaType struct {
	ID          string `json:"id" gorm:"column:pizza_type_id;primaryKey"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Ingredients string `json:"description" gorm:"column:ingredients"`

	Pizzas []Pizza `json:"-" gorm:"foreignKey:PizzaTypeID"`
}

func (PizzaType) TableName() string { return "pizza_types" }
