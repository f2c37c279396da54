package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/lumiere-beauty/storefront-api/internal/model"
)

type ClientRepository interface {
	List(ctx context.Context) ([]*model.Client, error)
	Create(ctx context.Context, client *model.Client) error
	Update(ctx context.Context, client *model.Client) error
	Delete(ctx context.Context, id uint) error
}

type clientRepoImpl struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepoImpl{db: db}
}

func (r *clientRepoImpl) List(ctx context.Context) ([]*model.Client, error) {
	var clients []*model.Client
	err := r.db.WithContext(ctx).Order("id").Find(&clients).Error
	if err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *clientRepoImpl) Create(ctx context.Context, client *model.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *clientRepoImpl) Update(ctx context.Context, client *model.Client) error {
	result := r.db.WithContext(ctx).Model(&model.Client{}).
		Where("id = ?", client.ID).
		Updates(map[string]interface{}{
			"name":           client.Name,
			"email":          client.Email,
			"phone":          client.Phone,
			"bookings":       client.Bookings,
			"loyalty_points": client.LoyaltyPoints,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *clientRepoImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Client{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
