package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/lumiere-beauty/storefront-api/internal/model"
)

type StaffRepository interface {
	List(ctx context.Context) ([]*model.Staff, error)
	FindByID(ctx context.Context, id uint) (*model.Staff, error)
	Create(ctx context.Context, staff *model.Staff) error
	Save(ctx context.Context, staff *model.Staff) error
	Delete(ctx context.Context, id uint) error
}

type staffRepoImpl struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) StaffRepository {
	return &staffRepoImpl{db: db}
}

func (r *staffRepoImpl) List(ctx context.Context) ([]*model.Staff, error) {
	var staff []*model.Staff
	err := r.db.WithContext(ctx).Order("id").Find(&staff).Error
	if err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *staffRepoImpl) FindByID(ctx context.Context, id uint) (*model.Staff, error) {
	var staff model.Staff
	err := r.db.WithContext(ctx).First(&staff, id).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepoImpl) Create(ctx context.Context, staff *model.Staff) error {
	return r.db.WithContext(ctx).Create(staff).Error
}

func (r *staffRepoImpl) Save(ctx context.Context, staff *model.Staff) error {
	return r.db.WithContext(ctx).Save(staff).Error
}

func (r *staffRepoImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Staff{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
