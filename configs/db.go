package configs

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/cykj40/padre-ginos-fem-sub000/entity"
)

var (
	catalogDB *gorm.DB
	cartDB    *gorm.DB
)

func CatalogDB() *gorm.DB { return catalogDB }

func CartDB() *gorm.DB { return cartDB }

// ConnectDatabases opens the two stores: the catalog (pizza types, priced
// size rows, placed orders) and the cart store.
func ConnectDatabases(cfg *Config) error {
	db, err := gorm.Open(sqlite.Open(cfg.CatalogDBSource), &gorm.Config{})
	if err != nil {
		return err
	}
	catalogDB = db

	db, err = gorm.Open(sqlite.Open(cfg.CartDBSource), &gorm.Config{})
	if err != nil {
		return err
	}
	cartDB = db

	return nil
}

func SetupDatabase() error {
	if err := catalogDB.AutoMigrate(
		&entity.PizzaType{}, &entity.Pizza{},
		&entity.Order{}, &entity.OrderDetail{},
	); err != nil {
		return err
	}
	return cartDB.AutoMigrate(&entity.Cart{}, &entity.CartItem{})
}
