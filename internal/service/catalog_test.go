package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumiere-beauty/storefront-api/internal/dto"
	"github.com/lumiere-beauty/storefront-api/internal/repository"
)

func TestResolveCartComputesAuthoritativeSnapshot(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Rose Serum", "10.00", 5)

	catalog := NewCatalogService(repository.NewProductRepository(db))

	snapshot, err := catalog.ResolveCart(context.Background(), []dto.CartItem{
		{ProductID: product.ID, Qty: 2},
	})
	require.NoError(t, err)
	require.Len(t, snapshot.Lines, 1)

	line := snapshot.Lines[0]
	assert.Equal(t, 2, line.Qty)
	assert.True(t, line.UnitPrice.Equal(mustDecimal(t, "10.00")), "unit price %s", line.UnitPrice)
	assert.True(t, line.LineTotal.Equal(mustDecimal(t, "20.00")), "line total %s", line.LineTotal)
	assert.True(t, snapshot.Subtotal.Equal(mustDecimal(t, "20.00")), "subtotal %s", snapshot.Subtotal)
}

func TestResolveCartClampsQuantityToOne(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Clay Mask", "8.50", 3)

	catalog := NewCatalogService(repository.NewProductRepository(db))

	snapshot, err := catalog.ResolveCart(context.Background(), []dto.CartItem{
		{ProductID: product.ID, Qty: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, snapshot.Lines[0].Qty)
	assert.True(t, snapshot.Subtotal.Equal(mustDecimal(t, "8.50")))
}

func TestResolveCartRejectsUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "Rose Serum", "10.00", 5)

	catalog := NewCatalogService(repository.NewProductRepository(db))

	_, err := catalog.ResolveCart(context.Background(), []dto.CartItem{
		{ProductID: 999, Qty: 1},
	})
	assert.ErrorIs(t, err, ErrUnavailableProduct)
}

func TestResolveCartRejectsInactiveProduct(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Discontinued Oil", "12.00", 5)
	require.NoError(t, db.Model(product).Update("is_active", false).Error)

	catalog := NewCatalogService(repository.NewProductRepository(db))

	_, err := catalog.ResolveCart(context.Background(), []dto.CartItem{
		{ProductID: product.ID, Qty: 1},
	})
	assert.ErrorIs(t, err, ErrUnavailableProduct)
}

func TestResolveCartRejectsWholeBatchOnInsufficientStock(t *testing.T) {
	db := newTestDB(t)
	ok := seedProduct(t, db, "Rose Serum", "10.00", 5)
	low := seedProduct(t, db, "Night Cream", "22.00", 1)

	catalog := NewCatalogService(repository.NewProductRepository(db))

	_, err := catalog.ResolveCart(context.Background(), []dto.CartItem{
		{ProductID: ok.ID, Qty: 2},
		{ProductID: low.ID, Qty: 3},
	})

	var stockErr *InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, "Night Cream", stockErr.Product)
	assert.Equal(t, 3, stockErr.Requested)
}
