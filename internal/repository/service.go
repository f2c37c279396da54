package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/lumiere-beauty/storefront-api/internal/model"
)

type ServiceRepository interface {
	List(ctx context.Context) ([]*model.Service, error)
	FindByID(ctx context.Context, id uint) (*model.Service, error)
	Create(ctx context.Context, service *model.Service) error
	Save(ctx context.Context, service *model.Service) error
	Delete(ctx context.Context, id uint) error
}

type serviceRepoImpl struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepoImpl{db: db}
}

func (r *serviceRepoImpl) List(ctx context.Context) ([]*model.Service, error) {
	var services []*model.Service
	err := r.db.WithContext(ctx).Order("id").Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *serviceRepoImpl) FindByID(ctx context.Context, id uint) (*model.Service, error) {
	var service model.Service
	err := r.db.WithContext(ctx).First(&service, id).Error
	if err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepoImpl) Create(ctx context.Context, service *model.Service) error {
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *serviceRepoImpl) Save(ctx context.Context, service *model.Service) error {
	return r.db.WithContext(ctx).Save(service).Error
}

func (r *serviceRepoImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Service{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
