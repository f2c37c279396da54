package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/lumiere-beauty/storefront-api/internal/dto"
	"github.com/lumiere-beauty/storefront-api/internal/model"
	"github.com/lumiere-beauty/storefront-api/internal/repository"
)

// StoreService is plain catalog administration: products, services, staff
// and client records. No invariants beyond uniqueness; writes are gated by
// permission checks in the handlers.
type StoreService interface {
	ListProducts(ctx context.Context) ([]*model.Product, error)
	GetProduct(ctx context.Context, id uint) (*model.Product, error)
	CreateProduct(ctx context.Context, req *dto.ProductRequest) (*model.Product, error)
	UpdateProduct(ctx context.Context, id uint, req *dto.ProductRequest) (*model.Product, error)
	DeleteProduct(ctx context.Context, id uint) error

	ListServices(ctx context.Context) ([]*model.Service, error)
	GetService(ctx context.Context, id uint) (*model.Service, error)
	CreateService(ctx context.Context, req *dto.ServiceRequest) (*model.Service, error)
	UpdateService(ctx context.Context, id uint, req *dto.ServiceRequest) (*model.Service, error)
	DeleteService(ctx context.Context, id uint) error

	ListStaff(ctx context.Context) ([]*model.Staff, error)
	CreateStaff(ctx context.Context, req *dto.StaffRequest) (*model.Staff, error)
	UpdateStaff(ctx context.Context, id uint, req *dto.StaffRequest) (*model.Staff, error)
	DeleteStaff(ctx context.Context, id uint) error

	ListClients(ctx context.Context) ([]*model.Client, error)
	CreateClient(ctx context.Context, req *dto.ClientRequest) (*model.Client, error)
	UpdateClient(ctx context.Context, id uint, req *dto.ClientRequest) (*model.Client, error)
	DeleteClient(ctx context.Context, id uint) error
}

type storeServiceImpl struct {
	productRepo repository.ProductRepository
	serviceRepo repository.ServiceRepository
	staffRepo   repository.StaffRepository
	clientRepo  repository.ClientRepository
}

func NewStoreService(
	productRepo repository.ProductRepository,
	serviceRepo repository.ServiceRepository,
	staffRepo repository.StaffRepository,
	clientRepo repository.ClientRepository,
) StoreService {
	return &storeServiceImpl{
		productRepo: productRepo,
		serviceRepo: serviceRepo,
		staffRepo:   staffRepo,
		clientRepo:  clientRepo,
	}
}

func (s *storeServiceImpl) ListProducts(ctx context.Context) ([]*model.Product, error) {
	return s.productRepo.List(ctx)
}

func (s *storeServiceImpl) GetProduct(ctx context.Context, id uint) (*model.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

func (s *storeServiceImpl) CreateProduct(ctx context.Context, req *dto.ProductRequest) (*model.Product, error) {
	product := &model.Product{IsActive: true}
	applyProduct(product, req)
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *storeServiceImpl) UpdateProduct(ctx context.Context, id uint, req *dto.ProductRequest) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyProduct(product, req)
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *storeServiceImpl) DeleteProduct(ctx context.Context, id uint) error {
	return s.productRepo.Delete(ctx, id)
}

func applyProduct(product *model.Product, req *dto.ProductRequest) {
	product.Name = req.Name
	product.Category = req.Category
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.OriginalPrice != nil {
		product.OriginalPrice = decimal.NullDecimal{Decimal: *req.OriginalPrice, Valid: true}
	}
	product.Stock = req.Stock
	product.Description = req.Description
	product.ImageURL = req.ImageURL
	product.Rating = req.Rating
	product.Reviews = req.Reviews
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
}

func (s *storeServiceImpl) ListServices(ctx context.Context) ([]*model.Service, error) {
	return s.serviceRepo.List(ctx)
}

func (s *storeServiceImpl) GetService(ctx context.Context, id uint) (*model.Service, error) {
	return s.serviceRepo.FindByID(ctx, id)
}

func (s *storeServiceImpl) CreateService(ctx context.Context, req *dto.ServiceRequest) (*model.Service, error) {
	svc := &model.Service{}
	applyService(svc, req)
	if err := s.serviceRepo.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *storeServiceImpl) UpdateService(ctx context.Context, id uint, req *dto.ServiceRequest) (*model.Service, error) {
	svc, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyService(svc, req)
	if err := s.serviceRepo.Save(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *storeServiceImpl) DeleteService(ctx context.Context, id uint) error {
	return s.serviceRepo.Delete(ctx, id)
}

func applyService(svc *model.Service, req *dto.ServiceRequest) {
	svc.Name = req.Name
	svc.Category = req.Category
	svc.Duration = req.Duration
	if req.Price != nil {
		svc.Price = *req.Price
	}
	svc.Description = req.Description
	svc.ImageURL = req.ImageURL
}

func (s *storeServiceImpl) ListStaff(ctx context.Context) ([]*model.Staff, error) {
	return s.staffRepo.List(ctx)
}

func (s *storeServiceImpl) CreateStaff(ctx context.Context, req *dto.StaffRequest) (*model.Staff, error) {
	staff := &model.Staff{
		Name:         req.Name,
		Role:         req.Role,
		Availability: req.Availability,
		ImageURL:     req.ImageURL,
	}
	if err := s.staffRepo.Create(ctx, staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *storeServiceImpl) UpdateStaff(ctx context.Context, id uint, req *dto.StaffRequest) (*model.Staff, error) {
	staff, err := s.staffRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	staff.Name = req.Name
	staff.Role = req.Role
	staff.Availability = req.Availability
	staff.ImageURL = req.ImageURL
	if err := s.staffRepo.Save(ctx, staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *storeServiceImpl) DeleteStaff(ctx context.Context, id uint) error {
	return s.staffRepo.Delete(ctx, id)
}

func (s *storeServiceImpl) ListClients(ctx context.Context) ([]*model.Client, error) {
	return s.clientRepo.List(ctx)
}

func (s *storeServiceImpl) CreateClient(ctx context.Context, req *dto.ClientRequest) (*model.Client, error) {
	c := &model.Client{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Bookings:      req.Bookings,
		LoyaltyPoints: req.LoyaltyPoints,
	}
	if err := s.clientRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *storeServiceImpl) UpdateClient(ctx context.Context, id uint, req *dto.ClientRequest) (*model.Client, error) {
	c := &model.Client{
		ID:            id,
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Bookings:      req.Bookings,
		LoyaltyPoints: req.LoyaltyPoints,
	}
	if err := s.clientRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *storeServiceImpl) DeleteClient(ctx context.Context, id uint) error {
	return s.clientRepo.Delete(ctx, id)
}
