package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/cykj40/padre-ginos-fem-sub000/entity"
	"github.com/cykj40/padre-ginos-fem-sub000/pkg/apperr"
	"github.com/cykj40/padre-ginos-fem-sub000/repository"
)

// CartService is the single point of mutation for carts. The injected store
// decides where the data lands; behind a FailoverCartStore mutations appear
// to always succeed even when the remote store is down.
type CartService struct {
	Store repository.CartStore
}

func NewCartService(store repository.CartStore) *CartService {
	return &CartService{Store: store}
}

// ItemSpec is the add-to-cart input. The price is the client-computed line
// price; order placement re-prices from the catalog, so the cart never acts
// as a pricing authority.
type ItemSpec struct {
	PizzaID  string          `json:"pizzaId"`
	Name     string          `json:"name"`
	Size     string          `json:"size"`
	Quantity int             `json:"quantity"`
	Crust    string          `json:"crust"`
	Price    decimal.Decimal `json:"price"`
	Toppings []string        `json:"toppings"`
}

// CartView is a cart with its derived total, recomputed on every call.
type CartView struct {
	ID    string            `json:"id"`
	Items []entity.CartItem `json:"items"`
	Total decimal.Decimal   `json:"total"`
}

func (s *CartService) GetCart(ctx context.Context, cartID string) (*CartView, error) {
	if cartID == "" {
		return nil, apperr.Validationf("cartId is required")
	}
	cart, err := s.Store.GetCart(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return view(cart), nil
}

func (s *CartService) AddItem(ctx context.Context, cartID string, spec ItemSpec) (*CartView, error) {
	if cartID == "" {
		return nil, apperr.Validationf("cartId is required")
	}
	if spec.PizzaID == "" || spec.Name == "" || spec.Size == "" {
		return nil, apperr.Validationf("pizzaId, name and size are required")
	}
	if spec.Quantity < 1 {
		return nil, apperr.Validationf("quantity must be at least 1")
	}
	if spec.Price.IsNegative() {
		return nil, apperr.Validationf("price must not be negative")
	}

	cart, err := s.Store.AddItem(ctx, cartID, entity.CartItem{
		PizzaID:  spec.PizzaID,
		Name:     spec.Name,
		Size:     spec.Size,
		Quantity: spec.Quantity,
		Crust:    spec.Crust,
		Price:    spec.Price.Round(2),
		Toppings: spec.Toppings,
	})
	if err != nil {
		return nil, err
	}
	return view(cart), nil
}

func (s *CartService) UpdateItem(ctx context.Context, cartID string, itemID uint, patch repository.ItemPatch) (*CartView, error) {
	if cartID == "" {
		return nil, apperr.Validationf("cartId is required")
	}
	if patch.Quantity != nil && *patch.Quantity < 1 {
		return nil, apperr.Validationf("quantity must be at least 1")
	}
	if patch.Price != nil && patch.Price.IsNegative() {
		return nil, apperr.Validationf("price must not be negative")
	}

	cart, err := s.Store.UpdateItem(ctx, cartID, itemID, patch)
	if err != nil {
		return nil, err
	}
	return view(cart), nil
}

func (s *CartService) RemoveItem(ctx context.Context, cartID string, itemID uint) (*CartView, error) {
	if cartID == "" {
		return nil, apperr.Validationf("cartId is required")
	}
	cart, err := s.Store.RemoveItem(ctx, cartID, itemID)
	if err != nil {
		return nil, err
	}
	return view(cart), nil
}

func (s *CartService) ClearCart(ctx context.Context, cartID string) (*CartView, error) {
	if cartID == "" {
		return nil, apperr.Validationf("cartId is required")
	}
	cart, err := s.Store.ClearCart(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return view(cart), nil
}

func view(cart entity.Cart) *CartView {
	total := decimal.Zero
	for _, it := range cart.Items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	items := cart.Items
	if items == nil {
		items = []entity.CartItem{}
	}
	return &CartView{ID: cart.ID, Items: items, Total: total.Round(2)}
}
