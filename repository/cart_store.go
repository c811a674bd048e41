package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/cykj40/padre-ginos-fem-sub000/entity"
)

// CartStore is the single mutation surface for carts. A missing cart is an
// empty cart: every operation creates it implicitly rather than failing.
//
// Implementations: GormCartStore (remote), MemoryCartStore (in-process
// fallback), FailoverCartStore (remote first, degrades to memory).
type CartStore interface {
	GetCart(ctx context.Context, cartID string) (entity.Cart, error)
	AddItem(ctx context.Context, cartID string, item entity.CartItem) (entity.Cart, error)
	// UpdateItem applies only the fields set on patch; it fails with a
	// NotFoundError when the item is absent.
	UpdateItem(ctx context.Context, cartID string, itemID uint, patch ItemPatch) (entity.Cart, error)
	// RemoveItem is idempotent: removing an absent item returns the cart
	// unchanged.
	RemoveItem(ctx context.Context, cartID string, itemID uint) (entity.Cart, error)
	ClearCart(ctx context.Context, cartID string) (entity.Cart, error)
}

// ItemPatch carries a partial cart-item update; nil fields keep their prior
// value.
type ItemPatch struct {
	Quantity *int             `json:"quantity"`
	Size     *string          `json:"size"`
	Crust    *string          `json:"crust"`
	Price    *decimal.Decimal `json:"price"`
	Toppings *[]string        `json:"toppings"`
}

// applyPatch mutates the item in place. A quantity change without an
// explicit price preserves the implied unit price:
// new price = round(old price / old quantity * new quantity, 2).
func applyPatch(it *entity.CartItem, p ItemPatch) {
	if p.Quantity != nil {
		q := *p.Quantity
		if p.Price == nil && it.Quantity > 0 {
			unit := it.Price.Div(decimal.NewFromInt(int64(it.Quantity)))
			it.Price = unit.Mul(decimal.NewFromInt(int64(q))).Round(2)
		}
		it.Quantity = q
	}
	if p.Price != nil {
		it.Price = p.Price.Round(2)
	}
	if p.Size != nil {
		it.Size = *p.Size
	}
	if p.Crust != nil {
		it.Crust = *p.Crust
	}
	if p.Toppings != nil {
		it.Toppings = append([]string(nil), (*p.Toppings)...)
	}
}
