package repository_test

import (
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/cykj40/padre-ginos-fem-sub000/entity"
	"github.com/cykj40/padre-ginos-fem-sub000/pkg/apperr"
	"github.com/cykj40/padre-ginos-fem-sub000/repository"
)

func newCartDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.Cart{}, &entity.CartItem{}))
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func randomItem() entity.CartItem {
	return entity.CartItem{
		PizzaID:  gofakeit.Word(),
		Name:     gofakeit.ProductName(),
		Size:     "M",
		Quantity: 2,
		Crust:    "thin",
		Price:    decimal.RequireFromString("12.50"),
		Toppings: []string{"olives", "basil"},
	}
}

// Both implementations must expose identical behavior; the failover layer
// depends on being able to replay any operation on either one.
func cartStores(t *testing.T) map[string]repository.CartStore {
	return map[string]repository.CartStore{
		"gorm":   repository.NewGormCartStore(newCartDB(t)),
		"memory": repository.NewMemoryCartStore(),
	}
}

func TestCartStore_GetCart_ImplicitlyCreates(t *testing.T) {
	for name, store := range cartStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := t.Context()
			cartID := uuid.NewString()

			cart, err := store.GetCart(ctx, cartID)
			require.NoError(t, err)
			require.Equal(t, cartID, cart.ID)
			require.Empty(t, cart.Items)

			// Reading again yields the same cart, not a second one.
			again, err := store.GetCart(ctx, cartID)
			require.NoError(t, err)
			require.Equal(t, cart.ID, again.ID)
		})
	}
}

func TestCartStore_AddItem(t *testing.T) {
	for name, store := range cartStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := t.Context()
			cartID := uuid.NewString()

			cart, err := store.AddItem(ctx, cartID, randomItem())
			require.NoError(t, err)
			require.Len(t, cart.Items, 1)
			require.NotZero(t, cart.Items[0].ID)
			require.Equal(t, 2, cart.Items[0].Quantity)
			require.Equal(t, []string{"olives", "basil"}, cart.Items[0].Toppings)

			cart, err = store.AddItem(ctx, cartID, randomItem())
			require.NoError(t, err)
			require.Len(t, cart.Items, 2)
			require.NotEqual(t, cart.Items[0].ID, cart.Items[1].ID)
		})
	}
}

func TestCartStore_UpdateItem(t *testing.T) {
	for name, store := range cartStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := t.Context()
			cartID := uuid.NewString()

			cart, err := store.AddItem(ctx, cartID, randomItem())
			require.NoError(t, err)
			itemID := cart.Items[0].ID

			// Quantity-only update preserves the implied unit price:
			// 12.50 for qty 2 -> 6.25 a unit -> 18.75 for qty 3.
			qty := 3
			cart, err = store.UpdateItem(ctx, cartID, itemID, repository.ItemPatch{Quantity: &qty})
			require.NoError(t, err)
			require.Equal(t, 3, cart.Items[0].Quantity)
			require.True(t, cart.Items[0].Price.Equal(decimal.RequireFromString("18.75")),
				"got %s", cart.Items[0].Price)

			// Explicit price wins over recomputation.
			qty = 1
			price := decimal.RequireFromString("4.00")
			cart, err = store.UpdateItem(ctx, cartID, itemID, repository.ItemPatch{Quantity: &qty, Price: &price})
			require.NoError(t, err)
			require.True(t, cart.Items[0].Price.Equal(price))

			// Untouched fields keep their prior values.
			size := "L"
			cart, err = store.UpdateItem(ctx, cartID, itemID, repository.ItemPatch{Size: &size})
			require.NoError(t, err)
			require.Equal(t, "L", cart.Items[0].Size)
			require.Equal(t, 1, cart.Items[0].Quantity)
			require.Equal(t, "thin", cart.Items[0].Crust)

			_, err = store.UpdateItem(ctx, cartID, 99999, repository.ItemPatch{Size: &size})
			require.True(t, apperr.IsNotFound(err), "got %v", err)
		})
	}
}

func TestCartStore_RemoveItem_Idempotent(t *testing.T) {
	for name, store := range cartStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := t.Context()
			cartID := uuid.NewString()

			cart, err := store.AddItem(ctx, cartID, randomItem())
			require.NoError(t, err)
			itemID := cart.Items[0].ID

			cart, err = store.RemoveItem(ctx, cartID, itemID)
			require.NoError(t, err)
			require.Empty(t, cart.Items)

			// Removing again is a no-op, not an error.
			cart, err = store.RemoveItem(ctx, cartID, itemID)
			require.NoError(t, err)
			require.Empty(t, cart.Items)
		})
	}
}

func TestCartStore_ClearCart(t *testing.T) {
	for name, store := range cartStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := t.Context()
			cartID := uuid.NewString()

			_, err := store.AddItem(ctx, cartID, randomItem())
			require.NoError(t, err)
			_, err = store.AddItem(ctx, cartID, randomItem())
			require.NoError(t, err)

			cart, err := store.ClearCart(ctx, cartID)
			require.NoError(t, err)
			require.Empty(t, cart.Items)

			cart, err = store.ClearCart(ctx, cartID)
			require.NoError(t, err)
			require.Empty(t, cart.Items)
		})
	}
}

func TestCartStore_CartsAreIsolated(t *testing.T) {
	for name, store := range cartStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := t.Context()
			a, b := uuid.NewString(), uuid.NewString()

			_, err := store.AddItem(ctx, a, randomItem())
			require.NoError(t, err)

			cart, err := store.GetCart(ctx, b)
			require.NoError(t, err)
			require.Empty(t, cart.Items)
		})
	}
}
