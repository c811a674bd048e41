package repository

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cykj40/padre-ginos-fem-sub000/entity"
	"github.com/cykj40/padre-ginos-fem-sub000/pkg/apperr"
)

// FailoverCartStore tries the remote store first and replays the same
// operation on the local store when the remote fails. Once degraded, calls
// go straight to the local store until Reset is called; there is no
// automatic recovery probe. Validation and not-found errors pass through
// without tripping the breaker.
type FailoverCartStore struct {
	remote  CartStore
	local   CartStore
	log     *slog.Logger
	timeout time.Duration

	mu       sync.Mutex
	degraded bool
}

func NewFailoverCartStore(remote, local CartStore, log *slog.Logger, timeout time.Duration) *FailoverCartStore {
	return &FailoverCartStore{remote: remote, local: local, log: log, timeout: timeout}
}

var _ CartStore = (*FailoverCartStore)(nil)

func (s *FailoverCartStore) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded
}

// Reset rearms the remote store. Manual only: local cart state is not
// migrated back.
func (s *FailoverCartStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.degraded {
		s.degraded = false
		s.log.Info("cart store reset to remote")
	}
}

func (s *FailoverCartStore) GetCart(ctx context.Context, cartID string) (entity.Cart, error) {
	return s.do(ctx, "get", func(ctx context.Context, cs CartStore) (entity.Cart, error) {
		return cs.GetCart(ctx, cartID)
	})
}

func (s *FailoverCartStore) AddItem(ctx context.Context, cartID string, item entity.CartItem) (entity.Cart, error) {
	return s.do(ctx, "add", func(ctx context.Context, cs CartStore) (entity.Cart, error) {
		return cs.AddItem(ctx, cartID, item)
	})
}

func (s *FailoverCartStore) UpdateItem(ctx context.Context, cartID string, itemID uint, patch ItemPatch) (entity.Cart, error) {
	return s.do(ctx, "update", func(ctx context.Context, cs CartStore) (entity.Cart, error) {
		return cs.UpdateItem(ctx, cartID, itemID, patch)
	})
}

func (s *FailoverCartStore) RemoveItem(ctx context.Context, cartID string, itemID uint) (entity.Cart, error) {
	return s.do(ctx, "remove", func(ctx context.Context, cs CartStore) (entity.Cart, error) {
		return cs.RemoveItem(ctx, cartID, itemID)
	})
}

func (s *FailoverCartStore) ClearCart(ctx context.Context, cartID string) (entity.Cart, error) {
	return s.do(ctx, "clear", func(ctx context.Context, cs CartStore) (entity.Cart, error) {
		return cs.ClearCart(ctx, cartID)
	})
}

func (s *FailoverCartStore) do(ctx context.Context, op string, call func(context.Context, CartStore) (entity.Cart, error)) (entity.Cart, error) {
	if s.Degraded() {
		return call(ctx, s.local)
	}

	rctx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		rctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	cart, err := call(rctx, s.remote)
	if err == nil || apperr.IsValidation(err) || apperr.IsNotFound(err) {
		return cart, err
	}

	s.trip(op, err)
	return call(ctx, s.local)
}

func (s *FailoverCartStore) trip(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.degraded {
		s.degraded = true
		s.log.Error("remote cart store failed, degrading to in-memory store",
			"op", op, "error", err)
	}
}
