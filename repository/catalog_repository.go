package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/cykj40/padre-ginos-fem-sub000/entity"
	"github.com/cykj40/padre-ginos-fem-sub000/pkg/apperr"
)

// CatalogRepository is read-only access to the product reference data.
type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository { return &CatalogRepository{DB: db} }

func (r *CatalogRepository) ListPizzaTypes(ctx context.Context) ([]entity.PizzaType, error) {
	var types []entity.PizzaType
	err := r.DB.WithContext(ctx).Order("pizza_type_id").Find(&types).Error
	if err != nil {
		return nil, apperr.Storage("catalog.types", err)
	}
	return types, nil
}

func (r *CatalogRepository) ListPizzas(ctx context.Context) ([]entity.Pizza, error) {
	var pizzas []entity.Pizza
	err := r.DB.WithContext(ctx).Order("pizza_id").Find(&pizzas).Error
	if err != nil {
		return nil, apperr.Storage("catalog.pizzas", err)
	}
	return pizzas, nil
}

// FindPizza resolves one priced (type, size) row; size matches
// case-insensitively.
func (r *CatalogRepository) FindPizza(ctx context.Context, pizzaTypeID, size string) (entity.Pizza, error) {
	var p entity.Pizza
	err := r.DB.WithContext(ctx).
		Where("pizza_type_id = ? AND LOWER(size) = LOWER(?)", pizzaTypeID, size).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.Pizza{}, apperr.Validationf("no pizza %q in size %q", pizzaTypeID, size)
	}
	if err != nil {
		return entity.Pizza{}, apperr.Storage("catalog.find", err)
	}
	return p, nil
}
