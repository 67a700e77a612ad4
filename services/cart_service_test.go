package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoe-store/models"
	"shoe-store/repositories"
)

func newTestCartService() (*CartService, *repositories.CartRepository) {
	repo := repositories.NewCartRepository(repositories.NewMemoryStore())
	return NewCartService(repo), repo
}

func sizePtr(v float64) *float64 {
	return &v
}

func testProduct(id string, price int64) models.CartProduct {
	return models.CartProduct{
		ProductID: id,
		Name:      "Trail Runner",
		AltNames:  []string{"TR-1"},
		Images:    []string{"https://cdn.example.com/tr1-front.jpg", "https://cdn.example.com/tr1-side.jpg"},
		Price:     decimal.NewFromInt(price),
	}
}

func TestGetCartInitializesMissingState(t *testing.T) {
	svc, repo := newTestCartService()
	ctx := context.Background()

	cart, err := svc.GetCart(ctx, "cart:s1")
	require.NoError(t, err)
	assert.Empty(t, cart)

	// The empty collection must have been persisted, not just returned.
	_, found, err := repo.Load(ctx, "cart:s1")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestAddToCartCreatesSingleLine(t *testing.T) {
	svc, _ := newTestCartService()
	ctx := context.Background()

	err := svc.AddToCart(ctx, "cart:s1", testProduct("P1", 100), 2, sizePtr(9))
	require.NoError(t, err)

	cart, err := svc.GetCart(ctx, "cart:s1")
	require.NoError(t, err)
	require.Len(t, cart, 1)

	line := cart[0]
	assert.Equal(t, "P1", line.ProductID)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, "https://cdn.example.com/tr1-front.jpg", line.Image)
	require.NotNil(t, line.Size)
	assert.Equal(t, 9.0, *line.Size)
	assert.True(t, line.Price.Equal(decimal.NewFromInt(100)))
}

func TestAddToCartFallsBackToSingleImage(t *testing.T) {
	svc, _ := newTestCartService()
	ctx := context.Background()

	product := models.CartProduct{
		ProductID: "P2",
		Name:      "Court Classic",
		Image:     "https://cdn.example.com/cc.jpg",
		Price:     decimal.NewFromInt(50),
	}
	require.NoError(t, svc.AddToCart(ctx, "cart:s1", product, 1, nil))

	cart, err := svc.GetCart(ctx, "cart:s1")
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, "https://cdn.example.com/cc.jpg", cart[0].Image)
}

func TestAddToCartMergesWithoutDuplicating(t *testing.T) {
	svc, _ := newTestCartService()
	ctx := context.Background()

	require.NoError(t, svc.AddToCart(ctx, "cart:s1", testProduct("P1", 100), 2, sizePtr(9)))

	// A second add of the same (product, size) with fresher catalog data must
	// only bump the quantity, never duplicate the line or refresh metadata.
	fresher := testProduct("P1", 120)
	fresher.Name = "Trail Runner v2"
	require.NoError(t, svc.AddToCart(ctx, "cart:s1", fresher, 3, sizePtr(9)))

	cart, err := svc.GetCart(ctx, "cart:s1")
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, 5, cart[0].Quantity)
	assert.Equal(t, "Trail Runner", cart[0].Name)
	assert.True(t, cart[0].Price.Equal(decimal.NewFromInt(100)))
}

func TestAddToCartDistinctSizesAreDistinctLines(t *testing.T) {
	svc, _ := newTestCartService()
	ctx := context.Background()

	require.NoError(t, svc.AddToCart(ctx, "cart:s1", testProduct("P1", 100), 1, sizePtr(9)))
	require.NoError(t, svc.AddToCart(ctx, "cart:s1", testProduct("P1", 100), 1, sizePtr(10)))
	require.NoError(t, svc.AddToCart(ctx, "cart:s1", testProduct("P1", 100), 1, nil))

	cart, err := svc.GetCart(ctx, "cart:s1")
	require.NoError(t, err)
	assert.Len(t, cart, 3)
}

func TestAddToCartUsesProductOwnSizeFirst(t *testing.T) {
	svc, _ := newTestCartService()
	ctx := context.Background()

	product := testProduct("P1", 100)
	product.Size = sizePtr(8)
	require.NoError(t, svc.AddToCart(ctx, "cart:s1", product, 1, sizePtr(11)))

	cart, err := svc.GetCart(ctx, "cart:s1")
	require.NoError(t, err)
	require.Len(t, cart, 1)
	require.NotNil(t, cart[0].Size)
	assert.Equal(t, 8.0, *cart[0].Size)
}

func TestDecrementToZeroRemovesLine(t *testing.T) {
	svc, _ := newTestCartService()
	ctx := context.Background()

	require.NoError(t, svc.AddToCart(ctx, "cart:s1", testProduct("P1", 100), 2, sizePtr(9)))
	require.NoError(t, svc.AddToCart(ctx, "cart:s1", testProduct("P1", 100), -2, sizePtr(9)))

	cart, err := svc.GetCart(ctx, "cart:s1")
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestZeroSumDeltaSequenceLeavesNoLine(t *testing.T) {
	svc, _ := newTestCartService()
	ctx := context.Background()

	for _, delta := range []int{3, -1, 2, -4} {
		require.NoError(t, svc.AddToCart(ctx, "cart:s1", testProduct("P1", 100), delta, sizePtr(9)))
	}

	cart, err := svc.GetCart(ctx, "cart:s1")
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestNegativeDeltaOnAbsentLineIsANoOp(t *testing.T) {
	svc, _ := newTestCartService()
	ctx := context.Background()

	require.NoError(t, svc.AddToCart(ctx, "cart:s1", testProduct("P1", 100), -1, sizePtr(9)))

	cart, err := svc.GetCart(ctx, "cart:s1")
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestTotalsAndCountsMatchCartContents(t *testing.T) {
	svc, _ := newTestCartService()
	ctx := context.Background()

	require.NoError(t, svc.AddToCart(ctx, "cart:s1", testProduct("P1", 100), 2, sizePtr(9)))
	require.NoError(t, svc.AddToCart(ctx, "cart:s1", testProduct("P2", 250), 3, sizePtr(10)))

	total, err := svc.GetTotal(ctx, "cart:s1")
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(2*100+3*250)), "got total %s", total)

	count, err := svc.GetCartItemCount(ctx, "cart:s1")
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	// Both are recomputed from the persisted state, so they must agree with a
	// manual walk over GetCart.
	cart, err := svc.GetCart(ctx, "cart:s1")
	require.NoError(t, err)
	manualTotal := decimal.Zero
	manualCount := 0
	for _, item := range cart {
		manualTotal = manualTotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		manualCount += item.Quantity
	}
	assert.True(t, total.Equal(manualTotal))
	assert.Equal(t, manualCount, count)
}

func TestEveryMutationNotifiesSubscribersOnce(t *testing.T) {
	svc, _ := newTestCartService()
	ctx := context.Background()

	var counts []int
	unsubscribe := svc.Subscribe("cart:s1", func(count int) {
		counts = append(counts, count)
	})
	defer unsubscribe()

	require.NoError(t, svc.AddToCart(ctx, "cart:s1", testProduct("P1", 100), 2, sizePtr(9)))
	require.NoError(t, svc.AddToCart(ctx, "cart:s1", testProduct("P1", 100), 1, sizePtr(9)))
	require.NoError(t, svc.Clear(ctx, "cart:s1"))

	assert.Equal(t, []int{2, 3, 0}, counts)
}

func TestNotificationsAreScopedToTheirCartKey(t *testing.T) {
	svc, _ := newTestCartService()
	ctx := context.Background()

	notified := 0
	unsubscribe := svc.Subscribe("cart:other", func(int) { notified++ })
	defer unsubscribe()

	require.NoError(t, svc.AddToCart(ctx, "cart:s1", testProduct("P1", 100), 1, sizePtr(9)))
	assert.Zero(t, notified)
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	svc, _ := newTestCartService()
	ctx := context.Background()

	notified := 0
	unsubscribe := svc.Subscribe("cart:s1", func(int) { notified++ })

	require.NoError(t, svc.AddToCart(ctx, "cart:s1", testProduct("P1", 100), 1, sizePtr(9)))
	unsubscribe()
	unsubscribe() // double teardown must be harmless
	require.NoError(t, svc.AddToCart(ctx, "cart:s1", testProduct("P1", 100), 1, sizePtr(9)))

	assert.Equal(t, 1, notified)
}
