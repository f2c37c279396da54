package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/lumiere-beauty/storefront-api/internal/client"
	"github.com/lumiere-beauty/storefront-api/internal/dto"
	"github.com/lumiere-beauty/storefront-api/internal/events"
	"github.com/lumiere-beauty/storefront-api/internal/model"
	"github.com/lumiere-beauty/storefront-api/internal/repository"
)

// The provider reports a settled checkout session with this payment status.
const sessionStatusPaid = "paid"

// PaymentService verifies hosted checkout sessions and transitions orders.
// Verification is idempotent: the inventory_deducted guard makes the stock
// deduction happen exactly once no matter how often the user retries.
type PaymentService interface {
	Verify(ctx context.Context, user *model.User, sessionID string) (*dto.VerifyResponse, error)
}

type paymentServiceImpl struct {
	db             *gorm.DB
	checkoutClient client.CheckoutClient
	orderRepo      repository.OrderRepository
	productRepo    repository.ProductRepository
	producer       events.Producer
	logger         *zap.Logger
}

func NewPaymentService(
	db *gorm.DB,
	checkoutClient client.CheckoutClient,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	producer events.Producer,
	logger *zap.Logger,
) PaymentService {
	return &paymentServiceImpl{
		db:             db,
		checkoutClient: checkoutClient,
		orderRepo:      orderRepo,
		productRepo:    productRepo,
		producer:       producer,
		logger:         logger,
	}
}

func (s *paymentServiceImpl) Verify(ctx context.Context, user *model.User, sessionID string) (*dto.VerifyResponse, error) {
	session, err := s.checkoutClient.RetrieveSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	orderID, err := orderIDFromSession(session)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.FindForUser(ctx, orderID, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrForbidden
		}
		return nil, fmt.Errorf("load order: %w", err)
	}

	if session.PaymentStatus != sessionStatusPaid {
		// Abandoned or mid-flow; expected, not a fault.
		return &dto.VerifyResponse{OK: false, PaymentStatus: session.PaymentStatus}, nil
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.MarkPaid(ctx, tx, order.ID, session.PaymentIntentID); err != nil {
			return fmt.Errorf("mark order paid: %w", err)
		}

		if order.InventoryDeducted {
			return nil
		}

		lines, err := s.orderRepo.GetLines(ctx, tx, order.ID)
		if err != nil {
			return fmt.Errorf("load order lines: %w", err)
		}
		// Floored rather than re-validated: the cart-time stock check
		// already happened, this is reconciliation.
		for _, line := range lines {
			if err := s.productRepo.DeductStockFloored(ctx, tx, line.ProductID, line.Qty); err != nil {
				return fmt.Errorf("deduct stock for product %d: %w", line.ProductID, err)
			}
		}
		return s.orderRepo.MarkInventoryDeducted(ctx, tx, order.ID)
	})
	if err != nil {
		return nil, err
	}

	if !order.InventoryDeducted {
		if err := s.producer.PublishOrderPaid(order); err != nil {
			s.logger.Error("publish order.paid",
				zap.Uint("order_id", order.ID),
				zap.Error(err))
		}
	}

	return &dto.VerifyResponse{OK: true, OrderID: order.ID}, nil
}

func orderIDFromSession(session *client.CheckoutSession) (uint, error) {
	raw := session.Metadata["orderId"]
	if raw == "" {
		return 0, ErrOrderNotLinked
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrOrderNotLinked
	}
	return uint(id), nil
}
