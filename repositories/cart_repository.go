package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"shoe-store/models"
)

// CartRepository owns the JSON encoding of the cart collection on top of an
// injectable key-value backend. Whatever it wrote last is what it expects to
// read back; stored data is not defensively repaired.
type CartRepository struct {
	kv KVStore
}

func NewCartRepository(kv KVStore) *CartRepository {
	return &CartRepository{kv: kv}
}

func (r *CartRepository) Load(ctx context.Context, key string) ([]models.CartLineItem, bool, error) {
	raw, found, err := r.kv.Get(ctx, key)
	if err != nil {
		return nil, false, fmt.Errorf("load cart: %w", err)
	}
	if !found {
		return nil, false, nil
	}

	var items []models.CartLineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, false, fmt.Errorf("decode cart: %w", err)
	}
	if items == nil {
		items = []models.CartLineItem{}
	}
	return items, true, nil
}

func (r *CartRepository) Save(ctx context.Context, key string, items []models.CartLineItem) error {
	if items == nil {
		items = []models.CartLineItem{}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := r.kv.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (r *CartRepository) Delete(ctx context.Context, key string) error {
	return r.kv.Delete(ctx, key)
}
