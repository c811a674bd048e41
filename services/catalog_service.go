package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cykj40/padre-ginos-fem-sub000/pkg/apperr"
	"github.com/cykj40/padre-ginos-fem-sub000/repository"
)

type CatalogService struct {
	Repo *repository.CatalogRepository
}

func NewCatalogService(repo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{Repo: repo}
}

// Product is one catalog entry with its size-to-price map, e.g.
// {"S": 9.75, "M": 12.50, "L": 15.25}.
type Product struct {
	ID          string                     `json:"id"`
	Name        string                     `json:"name"`
	Category    string                     `json:"category"`
	Description string                     `json:"description"`
	Sizes       map[string]decimal.Decimal `json:"sizes"`
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]Product, error) {
	types, err := s.Repo.ListPizzaTypes(ctx)
	if err != nil {
		return nil, err
	}
	pizzas, err := s.Repo.ListPizzas(ctx)
	if err != nil {
		return nil, err
	}

	sizesByType := make(map[string]map[string]decimal.Decimal, len(types))
	for _, p := range pizzas {
		m, ok := sizesByType[p.PizzaTypeID]
		if !ok {
			m = map[string]decimal.Decimal{}
			sizesByType[p.PizzaTypeID] = m
		}
		m[p.Size] = p.Price
	}

	products := make([]Product, 0, len(types))
	for _, t := range types {
		sizes := sizesByType[t.ID]
		if sizes == nil {
			sizes = map[string]decimal.Decimal{}
		}
		products = append(products, Product{
			ID:          t.ID,
			Name:        t.Name,
			Category:    t.Category,
			Description: t.Ingredients,
			Sizes:       sizes,
		})
	}
	return products, nil
}

// ProductOfTheDay picks the featured product as a pure function of the
// calendar date: (UTC days since the Unix epoch) mod product count. Same
// answer for every request within one day, no stored state.
func (s *CatalogService) ProductOfTheDay(ctx context.Context, now time.Time) (*Product, error) {
	products, err := s.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, apperr.NotFoundf("catalog is empty")
	}
	dayIndex := int(now.UTC().Unix() / 86400)
	p := products[dayIndex%len(products)]
	return &p, nil
}
