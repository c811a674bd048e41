package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/cykj40/padre-ginos-fem-sub000/entity"
	"github.com/cykj40/padre-ginos-fem-sub000/pkg/apperr"
	"github.com/cykj40/padre-ginos-fem-sub000/repository"
)

type OrderService struct {
	DB      *gorm.DB
	Repo    *repository.OrderRepository
	Catalog *repository.CatalogRepository

	// Now is swappable in tests; defaults to time.Now.
	Now func() time.Time
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, catalog *repository.CatalogRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, Catalog: catalog, Now: time.Now}
}

// OrderLineIn mirrors one element of the checkout body
// {cart: [{pizza: {id}, size, quantity}]}.
type OrderLineIn struct {
	Pizza struct {
		ID string `json:"id"`
	} `json:"pizza"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

// PlaceOrder snapshots the submitted cart into an immutable order. Lines
// are merged by (pizza id, lowercased size) with summed quantities; the
// wire format carries no crust or toppings, so variants of the same pizza
// and size collapse into one line. Header and details are written in one
// transaction; nothing is visible on failure.
func (s *OrderService) PlaceOrder(ctx context.Context, lines []OrderLineIn) (uint, error) {
	if len(lines) == 0 {
		return 0, apperr.Validationf("cart is empty")
	}

	type merged struct {
		pizzaID  string
		size     string
		quantity int
	}
	byKey := map[string]*merged{}
	var order []string
	for _, in := range lines {
		if in.Pizza.ID == "" || in.Size == "" {
			return 0, apperr.Validationf("each cart item requires pizza.id and size")
		}
		qty := in.Quantity
		if qty == 0 {
			qty = 1
		}
		if qty < 1 {
			return 0, apperr.Validationf("quantity must be at least 1")
		}
		key := fmt.Sprintf("%s|%s", in.Pizza.ID, strings.ToLower(in.Size))
		if m, ok := byKey[key]; ok {
			m.quantity += qty
			continue
		}
		byKey[key] = &merged{pizzaID: in.Pizza.ID, size: in.Size, quantity: qty}
		order = append(order, key)
	}

	// Re-price every merged line from the catalog before opening the
	// transaction.
	details := make([]entity.OrderDetail, 0, len(order))
	for _, key := range order {
		m := byKey[key]
		p, err := s.Catalog.FindPizza(ctx, m.pizzaID, m.size)
		if err != nil {
			return 0, err
		}
		details = append(details, entity.OrderDetail{PizzaID: p.ID, Quantity: m.quantity})
	}

	now := s.Now()
	header := entity.Order{
		Date: now.Format("2006-01-02"),
		Time: now.Format("15:04:05"),
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &header); err != nil {
			return err
		}
		for i := range details {
			details[i].OrderID = header.ID
			if err := s.Repo.CreateOrderDetail(tx, &details[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, apperr.Storage("order.place", err)
	}
	return header.ID, nil
}

func (s *OrderService) ListOrders(ctx context.Context) ([]entity.Order, error) {
	return s.Repo.ListOrders(ctx)
}

type OrderLine struct {
	repository.OrderLineRow
	Total decimal.Decimal `json:"total"`
}

type OrderDetailOut struct {
	ID    uint            `json:"order_id"`
	Date  string          `json:"date"`
	Time  string          `json:"time"`
	Items []OrderLine     `json:"items"`
	Total decimal.Decimal `json:"total"`
}

func (s *OrderService) OrderDetail(ctx context.Context, id uint) (*OrderDetailOut, error) {
	header, err := s.Repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	rows, err := s.Repo.GetOrderLines(ctx, header.ID)
	if err != nil {
		return nil, err
	}

	out := &OrderDetailOut{
		ID:    header.ID,
		Date:  header.Date,
		Time:  header.Time,
		Items: make([]OrderLine, 0, len(rows)),
		Total: decimal.Zero,
	}
	for _, row := range rows {
		lineTotal := row.Price.Mul(decimal.NewFromInt(int64(row.Quantity))).Round(2)
		out.Items = append(out.Items, OrderLine{OrderLineRow: row, Total: lineTotal})
		out.Total = out.Total.Add(lineTotal)
	}
	return out, nil
}
