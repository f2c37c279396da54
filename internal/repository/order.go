package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/lumiere-beauty/storefront-api/internal/model"
)

type OrderRepository interface {
	Create(ctx context.Context, tx *gorm.DB, order *model.Order) error
	CreateLines(ctx context.Context, tx *gorm.DB, lines []*model.OrderLine) error
	FindForUser(ctx context.Context, orderID, userID uint) (*model.Order, error)
	ListByUser(ctx context.Context, userID uint) ([]*model.Order, error)
	SetCheckoutSession(ctx context.Context, orderID uint, sessionID string) error
	MarkPaid(ctx context.Context, tx *gorm.DB, orderID uint, paymentIntentID string) error
	MarkInventoryDeducted(ctx context.Context, tx *gorm.DB, orderID uint) error
	GetLines(ctx context.Context, tx *gorm.DB, orderID uint) ([]*model.OrderLine, error)
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{db: db}
}

func (r *orderRepoImpl) Create(ctx context.Context, tx *gorm.DB, order *model.Order) error {
	return tx.WithContext(ctx).Create(order).Error
}

func (r *orderRepoImpl) CreateLines(ctx context.Context, tx *gorm.DB, lines []*model.OrderLine) error {
	return tx.WithContext(ctx).Create(&lines).Error
}

func (r *orderRepoImpl) FindForUser(ctx context.Context, orderID, userID uint) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepoImpl) ListByUser(ctx context.Context, userID uint) ([]*model.Order, error) {
	var orders []*model.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepoImpl) SetCheckoutSession(ctx context.Context, orderID uint, sessionID string) error {
	return r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Update("checkout_session_id", sessionID).Error
}

func (r *orderRepoImpl) MarkPaid(ctx context.Context, tx *gorm.DB, orderID uint, paymentIntentID string) error {
	result := tx.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"payment_status":    model.PaymentStatusPaid,
			"status":            model.OrderStatusProcessing,
			"payment_intent_id": paymentIntentID,
			"updated_at":        time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *orderRepoImpl) MarkInventoryDeducted(ctx context.Context, tx *gorm.DB, orderID uint) error {
	return tx.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Update("inventory_deducted", true).Error
}

func (r *orderRepoImpl) GetLines(ctx context.Context, tx *gorm.DB, orderID uint) ([]*model.OrderLine, error) {
	var lines []*model.OrderLine
	err := tx.WithContext(ctx).
		Where("order_id = ?", orderID).
		Find(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}
