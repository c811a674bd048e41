package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/cykj40/padre-ginos-fem-sub000/entity"
	"github.com/cykj40/padre-ginos-fem-sub000/pkg/apperr"
)

// GormCartStore is the remote cart store. Every storage failure comes back
// as a StorageError so the failover layer can trip on it.
type GormCartStore struct {
	DB *gorm.DB
}

func NewGormCartStore(db *gorm.DB) *GormCartStore { return &GormCartStore{DB: db} }

var _ CartStore = (*GormCartStore)(nil)

func (s *GormCartStore) GetCart(ctx context.Context, cartID string) (entity.Cart, error) {
	if err := s.ensureCart(ctx, cartID); err != nil {
		return entity.Cart{}, err
	}
	return s.readCart(ctx, cartID)
}

func (s *GormCartStore) AddItem(ctx context.Context, cartID string, item entity.CartItem) (entity.Cart, error) {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := getOrCreateCart(tx, cartID); err != nil {
			return err
		}
		item.ID = 0
		item.CartID = cartID
		return tx.Create(&item).Error
	})
	if err != nil {
		return entity.Cart{}, apperr.Storage("cart.add", err)
	}
	return s.readCart(ctx, cartID)
}

func (s *GormCartStore) UpdateItem(ctx context.Context, cartID string, itemID uint, patch ItemPatch) (entity.Cart, error) {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var it entity.CartItem
		err := tx.Where("id = ? AND cart_id = ?", itemID, cartID).First(&it).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("cart item %d not found", itemID)
		}
		if err != nil {
			return apperr.Storage("cart.update", err)
		}
		applyPatch(&it, patch)
		if err := tx.Save(&it).Error; err != nil {
			return apperr.Storage("cart.update", err)
		}
		return nil
	})
	if err != nil {
		if apperr.IsNotFound(err) || apperr.IsStorage(err) {
			return entity.Cart{}, err
		}
		return entity.Cart{}, apperr.Storage("cart.update", err)
	}
	return s.readCart(ctx, cartID)
}

func (s *GormCartStore) RemoveItem(ctx context.Context, cartID string, itemID uint) (entity.Cart, error) {
	err := s.DB.WithContext(ctx).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		Delete(&entity.CartItem{}).Error
	if err != nil {
		return entity.Cart{}, apperr.Storage("cart.remove", err)
	}
	return s.GetCart(ctx, cartID)
}

func (s *GormCartStore) ClearCart(ctx context.Context, cartID string) (entity.Cart, error) {
	err := s.DB.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&entity.CartItem{}).Error
	if err != nil {
		return entity.Cart{}, apperr.Storage("cart.clear", err)
	}
	return s.GetCart(ctx, cartID)
}

func (s *GormCartStore) ensureCart(ctx context.Context, cartID string) error {
	if err := getOrCreateCart(s.DB.WithContext(ctx), cartID); err != nil {
		return apperr.Storage("cart.get", err)
	}
	return nil
}

func getOrCreateCart(tx *gorm.DB, cartID string) error {
	var c entity.Cart
	err := tx.Where("id = ?", cartID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tx.Create(&entity.Cart{ID: cartID, CreatedAt: time.Now()}).Error
	}
	return err
}

func (s *GormCartStore) readCart(ctx context.Context, cartID string) (entity.Cart, error) {
	var c entity.Cart
	err := s.DB.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("cart_items.id") }).
		Where("id = ?", cartID).
		First(&c).Error
	if err != nil {
		return entity.Cart{}, apperr.Storage("cart.read", err)
	}
	return c, nil
}
