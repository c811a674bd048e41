package repository

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/cykj40/padre-ginos-fem-sub000/entity"
	"github.com/cykj40/padre-ginos-fem-sub000/pkg/apperr"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderDetail(tx *gorm.DB, d *entity.OrderDetail) error {
	return tx.Create(d).Error
}

func (r *OrderRepository) ListOrders(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.WithContext(ctx).Order("order_id DESC").Find(&orders).Error
	if err != nil {
		return nil, apperr.Storage("order.list", err)
	}
	return orders, nil
}

func (r *OrderRepository) GetOrder(ctx context.Context, id uint) (entity.Order, error) {
	var o entity.Order
	err := r.DB.WithContext(ctx).Where("order_id = ?", id).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.Order{}, apperr.NotFoundf("order %d not found", id)
	}
	if err != nil {
		return entity.Order{}, apperr.Storage("order.get", err)
	}
	return o, nil
}

// OrderLineRow is one denormalized order line as stored at checkout time.
type OrderLineRow struct {
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Size        string          `json:"size"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

func (r *OrderRepository) GetOrderLines(ctx context.Context, id uint) ([]OrderLineRow, error) {
	var rows []OrderLineRow
	err := r.DB.WithContext(ctx).
		Table("order_details").
		Select("pizza_types.name, pizza_types.category, pizza_types.ingredients AS description, pizzas.size, order_details.quantity, pizzas.price").
		Joins("JOIN pizzas ON pizzas.pizza_id = order_details.pizza_id").
		Joins("JOIN pizza_types ON pizza_types.pizza_type_id = pizzas.pizza_type_id").
		Where("order_details.order_id = ?", id).
		Order("order_details.pizza_id").
		Scan(&rows).Error
	if err != nil {
		return nil, apperr.Storage("order.lines", err)
	}
	return rows, nil
}

func (r *OrderRepository) CountOrders(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&entity.Order{}).Count(&n).Error
	if err != nil {
		return 0, apperr.Storage("order.count", err)
	}
	return n, nil
}
