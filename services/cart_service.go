package services

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"shoe-store/models"
	"shoe-store/repositories"
)

// CartService is the sole owner of the persisted cart collection. Every read
// and write goes through here, and every successful mutation notifies the
// subscribers registered for that cart key.
//
// Concurrent mutation of the same key from two clients is last-write-wins at
// the granularity of a full collection rewrite; the change notification lets
// other views re-read promptly but does not close that race.
type CartService struct {
	repo *repositories.CartRepository

	mu     sync.Mutex
	subs   map[string]map[int]func(count int)
	nextID int
}

func NewCartService(repo *repositories.CartRepository) *CartService {
	return &CartService{
		repo: repo,
		subs: map[string]map[int]func(int){},
	}
}

// GetCart returns the current collection. A missing collection is initialized
// to empty and persisted before returning; absence is never an error.
func (s *CartService) GetCart(ctx context.Context, key string) ([]models.CartLineItem, error) {
	items, found, err := s.repo.Load(ctx, key)
	if err != nil {
		return nil, err
	}
	if !found {
		items = []models.CartLineItem{}
		if err := s.repo.Save(ctx, key, items); err != nil {
			return nil, err
		}
	}
	return items, nil
}

// AddToCart merges a quantity delta into the line identified by the product
// and its effective size: the product's own size when set, otherwise the size
// argument. A new line is only created for a positive delta; an existing line
// whose quantity would drop to zero or below is removed. Metadata of an
// existing line is never refreshed from the incoming product.
func (s *CartService) AddToCart(ctx context.Context, key string, product models.CartProduct, delta int, size *float64) error {
	cart, err := s.GetCart(ctx, key)
	if err != nil {
		return err
	}

	effectiveSize := product.Size
	if effectiveSize == nil {
		effectiveSize = size
	}
	lineKey := models.KeyFor(product.ProductID, effectiveSize)

	index := -1
	for i, item := range cart {
		if item.Key() == lineKey {
			index = i
			break
		}
	}

	if index == -1 {
		if delta > 0 {
			cart = append(cart, models.CartLineItem{
				ProductID: product.ProductID,
				Name:      product.Name,
				AltNames:  product.AltNames,
				Image:     product.PrimaryImage(),
				Price:     product.Price,
				Quantity:  delta,
				Size:      effectiveSize,
			})
		}
	} else {
		newQty := cart[index].Quantity + delta
		if newQty <= 0 {
			cart = append(cart[:index], cart[index+1:]...)
		} else {
			cart[index].Quantity = newQty
		}
	}

	if err := s.repo.Save(ctx, key, cart); err != nil {
		return err
	}

	s.notify(key, cart)
	return nil
}

// Clear resets the collection to empty, as happens after a successful order.
func (s *CartService) Clear(ctx context.Context, key string) error {
	empty := []models.CartLineItem{}
	if err := s.repo.Save(ctx, key, empty); err != nil {
		return err
	}
	s.notify(key, empty)
	return nil
}

// GetTotal recomputes the cart total from the persisted state on every call.
func (s *CartService) GetTotal(ctx context.Context, key string) (decimal.Decimal, error) {
	cart, err := s.GetCart(ctx, key)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, item := range cart {
		total = total.Add(item.Subtotal())
	}
	return total, nil
}

func (s *CartService) GetCartItemCount(ctx context.Context, key string) (int, error) {
	cart, err := s.GetCart(ctx, key)
	if err != nil {
		return 0, err
	}
	return countItems(cart), nil
}

// Subscribe registers a change listener for one cart key. The listener
// receives the item count after each mutation. The returned function removes
// the listener; calling it more than once is harmless.
func (s *CartService) Subscribe(key string, fn func(count int)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.subs[key] == nil {
		s.subs[key] = map[int]func(int){}
	}
	id := s.nextID
	s.nextID++
	s.subs[key][id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs[key], id)
		if len(s.subs[key]) == 0 {
			delete(s.subs, key)
		}
	}
}

func (s *CartService) notify(key string, cart []models.CartLineItem) {
	count := countItems(cart)

	s.mu.Lock()
	listeners := make([]func(int), 0, len(s.subs[key]))
	for _, fn := range s.subs[key] {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(count)
	}
}

func countItems(cart []models.CartLineItem) int {
	count := 0
	for _, item := range cart {
		count += item.Quantity
	}
	return count
}
