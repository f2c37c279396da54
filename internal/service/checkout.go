package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/lumiere-beauty/storefront-api/internal/client"
	"github.com/lumiere-beauty/storefront-api/internal/dto"
	"github.com/lumiere-beauty/storefront-api/internal/events"
	"github.com/lumiere-beauty/storefront-api/internal/model"
	"github.com/lumiere-beauty/storefront-api/internal/repository"
)

const orderCurrency = "usd"

// CheckoutService owns Order/OrderLine creation. The cash path deducts
// stock in the same transaction; the card path defers deduction to payment
// verification.
type CheckoutService interface {
	PlaceCashOrder(ctx context.Context, user *model.User, req *dto.CheckoutRequest) (uint, error)
	OpenCardOrder(ctx context.Context, user *model.User, req *dto.CheckoutRequest) (*dto.CardCheckoutResponse, error)
	ListOrders(ctx context.Context, userID uint) ([]*model.Order, error)
}

type checkoutServiceImpl struct {
	db             *gorm.DB
	catalog        CatalogService
	orderRepo      repository.OrderRepository
	productRepo    repository.ProductRepository
	checkoutClient client.CheckoutClient
	producer       events.Producer
	logger         *zap.Logger
}

func NewCheckoutService(
	db *gorm.DB,
	catalog CatalogService,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	checkoutClient client.CheckoutClient,
	producer events.Producer,
	logger *zap.Logger,
) CheckoutService {
	return &checkoutServiceImpl{
		db:             db,
		catalog:        catalog,
		orderRepo:      orderRepo,
		productRepo:    productRepo,
		checkoutClient: checkoutClient,
		producer:       producer,
		logger:         logger,
	}
}

func (s *checkoutServiceImpl) PlaceCashOrder(ctx context.Context, user *model.User, req *dto.CheckoutRequest) (uint, error) {
	snapshot, err := s.catalog.ResolveCart(ctx, req.Items)
	if err != nil {
		return 0, err
	}

	order := s.newOrder(user, req, snapshot)
	order.PaymentMethod = model.PaymentMethodCOD
	order.PaymentStatus = model.PaymentStatusUnpaid

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.Create(ctx, tx, order); err != nil {
			return fmt.Errorf("store order: %w", err)
		}
		if err := s.orderRepo.CreateLines(ctx, tx, buildLines(order.ID, snapshot)); err != nil {
			return fmt.Errorf("store order lines: %w", err)
		}
		// Cash settles immediately, so stock comes out of the same unit of
		// work. A conditional update losing the race rolls back everything.
		for _, line := range snapshot.Lines {
			if err := s.productRepo.DeductStock(ctx, tx, line.Product.ID, line.Qty); err != nil {
				return fmt.Errorf("deduct stock for product %d: %w", line.Product.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.publishCreated(order)
	return order.ID, nil
}

func (s *checkoutServiceImpl) OpenCardOrder(ctx context.Context, user *model.User, req *dto.CheckoutRequest) (*dto.CardCheckoutResponse, error) {
	snapshot, err := s.catalog.ResolveCart(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	order := s.newOrder(user, req, snapshot)
	order.PaymentMethod = model.PaymentMethodCard
	order.PaymentStatus = model.PaymentStatusPending

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.Create(ctx, tx, order); err != nil {
			return fmt.Errorf("store order: %w", err)
		}
		// No stock movement here; that happens once, at verification.
		return s.orderRepo.CreateLines(ctx, tx, buildLines(order.ID, snapshot))
	})
	if err != nil {
		return nil, err
	}

	session, err := s.checkoutClient.CreateSession(ctx, sessionParams(user, order, snapshot))
	if err != nil {
		// The order row stays pending/pending with no session reference.
		// Inert: no stock was touched, nothing to unwind.
		s.logger.Warn("checkout session creation failed after order commit",
			zap.Uint("order_id", order.ID),
			zap.Error(err))
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	if err := s.orderRepo.SetCheckoutSession(ctx, order.ID, session.ID); err != nil {
		return nil, fmt.Errorf("store checkout session reference: %w", err)
	}

	s.publishCreated(order)
	return &dto.CardCheckoutResponse{
		URL:       session.URL,
		SessionID: session.ID,
		OrderID:   order.ID,
	}, nil
}

func (s *checkoutServiceImpl) ListOrders(ctx context.Context, userID uint) ([]*model.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}

func (s *checkoutServiceImpl) newOrder(user *model.User, req *dto.CheckoutRequest, snapshot *CartSnapshot) *model.Order {
	phone := req.Phone
	if phone == "" {
		phone = user.Phone
	}
	address := req.ShippingAddress
	if address == nil {
		address = map[string]string{}
	}
	return &model.Order{
		UserID:          user.ID,
		Email:           user.Email,
		Phone:           phone,
		ShippingAddress: address,
		Subtotal:        snapshot.Subtotal,
		Total:           snapshot.Subtotal, // shipping/tax not modelled yet
		Currency:        orderCurrency,
		Status:          model.OrderStatusPending,
	}
}

func buildLines(orderID uint, snapshot *CartSnapshot) []*model.OrderLine {
	lines := make([]*model.OrderLine, len(snapshot.Lines))
	for i, line := range snapshot.Lines {
		lines[i] = &model.OrderLine{
			OrderID:   orderID,
			ProductID: line.Product.ID,
			Qty:       line.Qty,
			UnitPrice: line.UnitPrice,
			LineTotal: line.LineTotal,
		}
	}
	return lines
}

func sessionParams(user *model.User, order *model.Order, snapshot *CartSnapshot) *client.CreateSessionParams {
	items := make([]client.SessionLineItem, len(snapshot.Lines))
	for i, line := range snapshot.Lines {
		items[i] = client.SessionLineItem{
			Name:       line.Product.Name,
			Currency:   orderCurrency,
			UnitAmount: line.UnitPrice.Mul(decimal.NewFromInt(100)).IntPart(),
			Quantity:   line.Qty,
		}
	}
	return &client.CreateSessionParams{
		CustomerEmail: user.Email,
		LineItems:     items,
		Metadata: map[string]string{
			"orderId": strconv.FormatUint(uint64(order.ID), 10),
			"userId":  strconv.FormatUint(uint64(user.ID), 10),
		},
	}
}

func (s *checkoutServiceImpl) publishCreated(order *model.Order) {
	if err := s.producer.PublishOrderCreated(order); err != nil {
		s.logger.Error("publish order.created",
			zap.Uint("order_id", order.ID),
			zap.Error(err))
	}
}
