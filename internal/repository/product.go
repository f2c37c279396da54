package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/lumiere-beauty/storefront-api/internal/model"
)

// ErrStockConflict means a conditional stock decrement matched no row: the
// product vanished or a concurrent order consumed the stock first.
var ErrStockConflict = errors.New("stock changed concurrently")

type ProductRepository interface {
	List(ctx context.Context) ([]*model.Product, error)
	FindByID(ctx context.Context, id uint) (*model.Product, error)
	FindActiveByIDs(ctx context.Context, ids []uint) ([]*model.Product, error)
	Create(ctx context.Context, product *model.Product) error
	Save(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id uint) error

	// DeductStock decrements stock by qty only while qty is still covered;
	// returns ErrStockConflict otherwise so the enclosing transaction rolls
	// back.
	DeductStock(ctx context.Context, tx *gorm.DB, productID uint, qty int) error

	// DeductStockFloored decrements stock by qty, flooring at zero. Used by
	// deferred (post-payment) deduction where the cart-time check already
	// happened and going negative would be worse than underselling.
	DeductStockFloored(ctx context.Context, tx *gorm.DB, productID uint, qty int) error
}

type productRepoImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepoImpl{db: db}
}

func (r *productRepoImpl) List(ctx context.Context) ([]*model.Product, error) {
	var products []*model.Product
	err := r.db.WithContext(ctx).Order("id").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepoImpl) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepoImpl) FindActiveByIDs(ctx context.Context, ids []uint) ([]*model.Product, error) {
	var products []*model.Product
	err := r.db.WithContext(ctx).
		Where("id IN ? AND is_active = ?", ids, true).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepoImpl) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepoImpl) Save(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepoImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *productRepoImpl) DeductStock(ctx context.Context, tx *gorm.DB, productID uint, qty int) error {
	result := tx.WithContext(ctx).Model(&model.Product{}).
		Where("id = ? AND stock >= ?", productID, qty).
		UpdateColumn("stock", gorm.Expr("stock - ?", qty))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStockConflict
	}
	return nil
}

func (r *productRepoImpl) DeductStockFloored(ctx context.Context, tx *gorm.DB, productID uint, qty int) error {
	return tx.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", productID).
		UpdateColumn("stock", gorm.Expr("CASE WHEN stock >= ? THEN stock - ? ELSE 0 END", qty, qty)).
		Error
}
