package repository

import (
	"context"
	"sync"
	"time"

	"github.com/cykj40/padre-ginos-fem-sub000/entity"
	"github.com/cykj40/padre-ginos-fem-sub000/pkg/apperr"
)

// MemoryCartStore keeps carts in a process-local map. It backs the degraded
// mode of the failover store and never fails with a StorageError. Carts are
// kept for the process lifetime; there is no expiry.
type MemoryCartStore struct {
	mu         sync.Mutex
	carts      map[string]*entity.Cart
	nextItemID uint
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: make(map[string]*entity.Cart)}
}

var _ CartStore = (*MemoryCartStore)(nil)

func (s *MemoryCartStore) GetCart(_ context.Context, cartID string) (entity.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyCart(s.ensure(cartID)), nil
}

func (s *MemoryCartStore) AddItem(_ context.Context, cartID string, item entity.CartItem) (entity.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.ensure(cartID)
	s.nextItemID++
	item.ID = s.nextItemID
	item.CartID = cartID
	item.Toppings = append([]string(nil), item.Toppings...)
	c.Items = append(c.Items, item)
	return copyCart(c), nil
}

func (s *MemoryCartStore) UpdateItem(_ context.Context, cartID string, itemID uint, patch ItemPatch) (entity.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.ensure(cartID)
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			applyPatch(&c.Items[i], patch)
			return copyCart(c), nil
		}
	}
	return entity.Cart{}, apperr.NotFoundf("cart item %d not found", itemID)
}

func (s *MemoryCartStore) RemoveItem(_ context.Context, cartID string, itemID uint) (entity.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.ensure(cartID)
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			break
		}
	}
	return copyCart(c), nil
}

func (s *MemoryCartStore) ClearCart(_ context.Context, cartID string) (entity.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.ensure(cartID)
	c.Items = nil
	return copyCart(c), nil
}

// ensure must be called with the lock held.
func (s *MemoryCartStore) ensure(cartID string) *entity.Cart {
	c, ok := s.carts[cartID]
	if !ok {
		c = &entity.Cart{ID: cartID, CreatedAt: time.Now()}
		s.carts[cartID] = c
	}
	return c
}

func copyCart(c *entity.Cart) entity.Cart {
	out := entity.Cart{ID: c.ID, CreatedAt: c.CreatedAt, Items: make([]entity.CartItem, len(c.Items))}
	for i, it := range c.Items {
		it.Toppings = append([]string(nil), it.Toppings...)
		out.Items[i] = it
	}
	return out
}
