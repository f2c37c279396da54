package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lumiere-beauty/storefront-api/internal/dto"
	"github.com/lumiere-beauty/storefront-api/internal/model"
	"github.com/lumiere-beauty/storefront-api/internal/repository"
)

// CartLine is one resolved cart entry. UnitPrice and LineTotal come from the
// products table at resolution time; client-supplied prices never enter here.
type CartLine struct {
	Product   *model.Product
	Qty       int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// CartSnapshot is the authoritative price/stock view a checkout is built
// from.
type CartSnapshot struct {
	Lines    []CartLine
	Subtotal decimal.Decimal
}

// CatalogService resolves carts against live catalog data. Read-only; safe
// to call repeatedly and concurrently.
type CatalogService interface {
	ResolveCart(ctx context.Context, items []dto.CartItem) (*CartSnapshot, error)
}

type catalogServiceImpl struct {
	productRepo repository.ProductRepository
}

func NewCatalogService(productRepo repository.ProductRepository) CatalogService {
	return &catalogServiceImpl{productRepo: productRepo}
}

func (s *catalogServiceImpl) ResolveCart(ctx context.Context, items []dto.CartItem) (*CartSnapshot, error) {
	if len(items) == 0 {
		return nil, ErrUnavailableProduct
	}

	productIDs := make([]uint, 0, len(items))
	seen := make(map[uint]bool, len(items))
	for _, item := range items {
		if !seen[item.ProductID] {
			seen[item.ProductID] = true
			productIDs = append(productIDs, item.ProductID)
		}
	}

	products, err := s.productRepo.FindActiveByIDs(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("fetch cart products: %w", err)
	}
	// Anything missing here is either unknown or inactive; reject the whole
	// batch, no partial acceptance.
	if len(products) != len(productIDs) {
		return nil, ErrUnavailableProduct
	}

	byID := make(map[uint]*model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	snapshot := &CartSnapshot{
		Lines:    make([]CartLine, 0, len(items)),
		Subtotal: decimal.Zero,
	}
	for _, item := range items {
		qty := item.Qty
		if qty < 1 {
			qty = 1
		}
		product := byID[item.ProductID]
		if product.Stock < qty {
			return nil, &InsufficientStockError{Product: product.Name, Requested: qty}
		}
		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(qty)))
		snapshot.Lines = append(snapshot.Lines, CartLine{
			Product:   product,
			Qty:       qty,
			UnitPrice: product.Price,
			LineTotal: lineTotal,
		})
		snapshot.Subtotal = snapshot.Subtotal.Add(lineTotal)
	}

	return snapshot, nil
}
