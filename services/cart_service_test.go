package services_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/cykj40/padre-ginos-fem-sub000/entity"
	"github.com/cykj40/padre-ginos-fem-sub000/pkg/apperr"
	"github.com/cykj40/padre-ginos-fem-sub000/repository"
	"github.com/cykj40/padre-ginos-fem-sub000/services"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// unreachableStore stands in for a remote cart store that is down.
type unreachableStore struct{}

func (u unreachableStore) err() error { return apperr.Storage("remote", context.DeadlineExceeded) }

func (u unreachableStore) GetCart(context.Context, string) (entity.Cart, error) {
	return entity.Cart{}, u.err()
}
func (u unreachableStore) AddItem(context.Context, string, entity.CartItem) (entity.Cart, error) {
	return entity.Cart{}, u.err()
}
func (u unreachableStore) UpdateItem(context.Context, string, uint, repository.ItemPatch) (entity.Cart, error) {
	return entity.Cart{}, u.err()
}
func (u unreachableStore) RemoveItem(context.Context, string, uint) (entity.Cart, error) {
	return entity.Cart{}, u.err()
}
func (u unreachableStore) ClearCart(context.Context, string) (entity.Cart, error) {
	return entity.Cart{}, u.err()
}

func newCartService() *services.CartService {
	return services.NewCartService(repository.NewMemoryCartStore())
}

func pepperoniSpec() services.ItemSpec {
	return services.ItemSpec{
		PizzaID:  "pepperoni",
		Name:     "The Pepperoni Pizza",
		Size:     "M",
		Quantity: 2,
		Crust:    "thin",
		Price:    decimal.RequireFromString("12.50"),
		Toppings: []string{"extra cheese"},
	}
}

func TestCartService_AddThenGet(t *testing.T) {
	ctx := t.Context()
	svc := newCartService()
	cartID := uuid.NewString()

	before, err := svc.GetCart(ctx, cartID)
	require.NoError(t, err)
	require.True(t, before.Total.IsZero())

	cart, err := svc.AddItem(ctx, cartID, pepperoniSpec())
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)

	// Total grows by exactly price*quantity: 12.50 * 2.
	require.True(t, cart.Total.Equal(decimal.RequireFromString("25.00")),
		"got %s", cart.Total)

	got, err := svc.GetCart(ctx, cartID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	require.True(t, got.Total.Equal(cart.Total))
}

func TestCartService_AddValidation(t *testing.T) {
	ctx := t.Context()
	svc := newCartService()
	cartID := uuid.NewString()

	tests := []struct {
		name   string
		mutate func(*services.ItemSpec)
	}{
		{"missing pizzaId", func(s *services.ItemSpec) { s.PizzaID = "" }},
		{"missing name", func(s *services.ItemSpec) { s.Name = "" }},
		{"missing size", func(s *services.ItemSpec) { s.Size = "" }},
		{"zero quantity", func(s *services.ItemSpec) { s.Quantity = 0 }},
		{"negative quantity", func(s *services.ItemSpec) { s.Quantity = -1 }},
		{"negative price", func(s *services.ItemSpec) { s.Price = decimal.RequireFromString("-1") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := pepperoniSpec()
			tt.mutate(&spec)
			_, err := svc.AddItem(ctx, cartID, spec)
			require.True(t, apperr.IsValidation(err), "got %v", err)
		})
	}

	// Nothing leaked into the cart.
	cart, err := svc.GetCart(ctx, cartID)
	require.NoError(t, err)
	require.Empty(t, cart.Items)
}

func TestCartService_TotalTracksEveryMutation(t *testing.T) {
	ctx := t.Context()
	svc := newCartService()
	cartID := uuid.NewString()

	cart, err := svc.AddItem(ctx, cartID, pepperoniSpec()) // 25.00
	require.NoError(t, err)
	spec := pepperoniSpec()
	spec.Size = "L"
	spec.Quantity = 1
	spec.Price = decimal.RequireFromString("15.25")
	cart, err = svc.AddItem(ctx, cartID, spec) // + 15.25
	require.NoError(t, err)
	require.True(t, cart.Total.Equal(decimal.RequireFromString("40.25")), "got %s", cart.Total)

	// total == sum(price * quantity) holds after removal too.
	cart, err = svc.RemoveItem(ctx, cartID, cart.Items[0].ID)
	require.NoError(t, err)
	require.True(t, cart.Total.Equal(decimal.RequireFromString("15.25")), "got %s", cart.Total)

	sum := decimal.Zero
	for _, it := range cart.Items {
		sum = sum.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	require.True(t, cart.Total.Equal(sum))
}

func TestCartService_UpdatePreservesUnitPrice(t *testing.T) {
	ctx := t.Context()
	svc := newCartService()
	cartID := uuid.NewString()

	spec := pepperoniSpec()
	spec.Quantity = 3
	spec.Price = decimal.RequireFromString("10.00")
	cart, err := svc.AddItem(ctx, cartID, spec)
	require.NoError(t, err)

	// 10.00 / 3 * 7 rounded to cents.
	qty := 7
	cart, err = svc.UpdateItem(ctx, cartID, cart.Items[0].ID, repository.ItemPatch{Quantity: &qty})
	require.NoError(t, err)
	require.True(t, cart.Items[0].Price.Equal(decimal.RequireFromString("23.33")),
		"got %s", cart.Items[0].Price)
	require.True(t, cart.Total.Equal(decimal.RequireFromString("163.31")), "got %s", cart.Total)
}

func TestCartService_UpdateMissingItem(t *testing.T) {
	ctx := t.Context()
	svc := newCartService()

	qty := 2
	_, err := svc.UpdateItem(ctx, uuid.NewString(), 7, repository.ItemPatch{Quantity: &qty})
	require.True(t, apperr.IsNotFound(err), "got %v", err)
}

func TestCartService_RemoveMissingItemIsNoOp(t *testing.T) {
	ctx := t.Context()
	svc := newCartService()
	cartID := uuid.NewString()

	cart, err := svc.AddItem(ctx, cartID, pepperoniSpec())
	require.NoError(t, err)
	total := cart.Total

	cart, err = svc.RemoveItem(ctx, cartID, 99999)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.True(t, cart.Total.Equal(total))
}

func TestCartService_ClearIsIdempotent(t *testing.T) {
	ctx := t.Context()
	svc := newCartService()
	cartID := uuid.NewString()

	_, err := svc.AddItem(ctx, cartID, pepperoniSpec())
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		cart, err := svc.ClearCart(ctx, cartID)
		require.NoError(t, err)
		assert.Empty(t, cart.Items)
		assert.True(t, cart.Total.IsZero())
	}
}

func TestCartService_EmptyCartID(t *testing.T) {
	ctx := t.Context()
	svc := newCartService()

	_, err := svc.GetCart(ctx, "")
	require.True(t, apperr.IsValidation(err))
	_, err = svc.AddItem(ctx, "", pepperoniSpec())
	require.True(t, apperr.IsValidation(err))
}

// Simulated storage outage: the service keeps returning usable carts from
// the fallback store and never surfaces the failure.
func TestCartService_SurvivesStorageOutage(t *testing.T) {
	ctx := t.Context()

	local := repository.NewMemoryCartStore()
	store := repository.NewFailoverCartStore(unreachableStore{}, local, slog.Default(), time.Second)
	svc := services.NewCartService(store)
	cartID := uuid.NewString()

	cart, err := svc.AddItem(ctx, cartID, pepperoniSpec())
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.True(t, store.Degraded())

	got, err := svc.GetCart(ctx, cartID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	require.True(t, got.Total.Equal(cart.Total))
}
