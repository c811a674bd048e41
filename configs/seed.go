package configs

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cykj40/padre-ginos-fem-sub000/entity"
)

type seedPizza struct {
	id          string
	name        string
	category    string
	ingredients string
	prices      [3]string // S, M, L
}

var seedCatalog = []seedPizza{
	{"pepperoni", "The Pepperoni Pizza", "Classic", "Pepperoni, Mozzarella Cheese, Tomato Sauce", [3]string{"9.75", "12.50", "15.25"}},
	{"margherita", "The Margherita Pizza", "Classic", "Tomatoes, Basil, Fresh Mozzarella, Garlic", [3]string{"9.25", "11.75", "14.50"}},
	{"bbq_ckn", "The Barbecue Chicken Pizza", "Chicken", "Barbecued Chicken, Red Peppers, Green Peppers, Red Onions, Barbecue Sauce", [3]string{"12.75", "16.75", "20.75"}},
	{"hawaiian", "The Hawaiian Pizza", "Classic", "Sliced Ham, Pineapple, Mozzarella Cheese", [3]string{"10.50", "13.25", "16.50"}},
	{"five_cheese", "The Five Cheese Pizza", "Veggie", "Mozzarella Cheese, Provolone Cheese, Smoked Gouda Cheese, Romano Cheese, Blue Cheese, Garlic", [3]string{"12.00", "15.50", "18.50"}},
	{"veggie_veg", "The Vegetables + Vegetables Pizza", "Veggie", "Mushrooms, Tomatoes, Red Peppers, Green Peppers, Red Onions, Zucchini, Spinach, Garlic", [3]string{"9.75", "12.75", "15.75"}},
	{"ital_supr", "The Italian Supreme Pizza", "Supreme", "Calabrese Salami, Capocollo, Tomatoes, Red Onions, Green Olives, Garlic", [3]string{"12.50", "16.50", "20.75"}},
	{"spicy_ital", "The Spicy Italian Pizza", "Supreme", "Capocollo, Tomatoes, Goat Cheese, Artichokes, Peperoncini Verdi, Garlic", [3]string{"12.50", "16.50", "20.75"}},
}

// SeedCatalog fills the catalog once; an already-populated store is left
// untouched.
func SeedCatalog() error {
	db := CatalogDB()

	var count int64
	if err := db.Model(&entity.PizzaType{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	sizes := []string{"S", "M", "L"}
	for _, sp := range seedCatalog {
		pt := entity.PizzaType{ID: sp.id, Name: sp.name, Category: sp.category, Ingredients: sp.ingredients}
		if err := db.FirstOrCreate(&pt, entity.PizzaType{ID: sp.id}).Error; err != nil {
			return err
		}
		for i, size := range sizes {
			price, err := decimal.NewFromString(sp.prices[i])
			if err != nil {
				return fmt.Errorf("seed price %q: %w", sp.prices[i], err)
			}
			p := entity.Pizza{
				ID:          fmt.Sprintf("%s_%s", sp.id, strings.ToLower(size)),
				PizzaTypeID: sp.id,
				Size:        size,
				Price:       price,
			}
			if err := db.FirstOrCreate(&p, entity.Pizza{ID: p.ID}).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
