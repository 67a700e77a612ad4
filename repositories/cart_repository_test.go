package repositories

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoe-store/models"
)

func TestCartRepositoryRoundTrip(t *testing.T) {
	repo := NewCartRepository(NewMemoryStore())
	ctx := context.Background()

	size := 9.5
	items := []models.CartLineItem{
		{
			ProductID: "P1",
			Name:      "Trail Runner",
			Image:     "https://cdn.example.com/tr1.jpg",
			Price:     decimal.RequireFromString("129.99"),
			Quantity:  2,
			Size:      &size,
		},
		{
			ProductID: "P2",
			Name:      "Court Classic",
			Price:     decimal.NewFromInt(80),
			Quantity:  1,
		},
	}

	require.NoError(t, repo.Save(ctx, "cart:s1", items))

	got, found, err := repo.Load(ctx, "cart:s1")
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, got, 2)
	assert.Equal(t, "P1", got[0].ProductID)
	assert.True(t, got[0].Price.Equal(decimal.RequireFromString("129.99")))
	require.NotNil(t, got[0].Size)
	assert.Equal(t, 9.5, *got[0].Size)
	assert.Nil(t, got[1].Size)
}

func TestCartRepositoryMissingKey(t *testing.T) {
	repo := NewCartRepository(NewMemoryStore())

	items, found, err := repo.Load(context.Background(), "cart:nope")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, items)
}

func TestCartRepositorySavesNilAsEmptyCollection(t *testing.T) {
	kv := NewMemoryStore()
	repo := NewCartRepository(kv)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "cart:s1", nil))

	raw, found, err := kv.Get(ctx, "cart:s1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "[]", raw)

	items, found, err := repo.Load(ctx, "cart:s1")
	require.NoError(t, err)
	assert.True(t, found)
	require.NotNil(t, items)
	assert.Empty(t, items)
}

func TestCartRepositoryDelete(t *testing.T) {
	repo := NewCartRepository(NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "cart:s1", []models.CartLineItem{{ProductID: "P1", Quantity: 1}}))
	require.NoError(t, repo.Delete(ctx, "cart:s1"))

	_, found, err := repo.Load(ctx, "cart:s1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCartRepositoryCorruptPayload(t *testing.T) {
	kv := NewMemoryStore()
	repo := NewCartRepository(kv)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "cart:s1", "{not json"))

	_, _, err := repo.Load(ctx, "cart:s1")
	assert.Error(t, err)
}

func TestMemoryStoreDeleteIsIdempotent(t *testing.T) {
	kv := NewMemoryStore()
	ctx := context.Background()

	assert.NoError(t, kv.Delete(ctx, "absent"))

	require.NoError(t, kv.Set(ctx, "k", "v"))
	require.NoError(t, kv.Delete(ctx, "k"))
	assert.NoError(t, kv.Delete(ctx, "k"))

	_, found, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}
