package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"pos_backoffice_v1/internal/api/dto"
	"pos_backoffice_v1/internal/model"
	"pos_backoffice_v1/internal/repository"
)

// ==================== CustomerService 客户服务 ====================

type CustomerService struct {
	customerRepo repository.CustomerRepository
	storeRepo    repository.StoreRepository
	saleRepo     repository.SaleRepository
	expenseRepo  repository.ExpenseRepository
}

func NewCustomerService(
	customerRepo repository.CustomerRepository,
	storeRepo repository.StoreRepository,
	saleRepo repository.SaleRepository,
	expenseRepo repository.ExpenseRepository,
) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		storeRepo:    storeRepo,
		saleRepo:     saleRepo,
		expenseRepo:  expenseRepo,
	}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, userID uuid.UUID, req *dto.CreateCustomerRequest) (*dto.CustomerInfo, error) {
	store, err := s.storeRepo.GetByID(ctx, req.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil || store.UserID != userID {
		return nil, ErrStoreNotFound
	}

	customer := &model.Customer{
		UserID:  userID,
		StoreID: req.StoreID,
		Name:    req.Name,
		Address: req.Address,
		Avatar:  req.Avatar,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return dto.NewCustomerInfo(customer), nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, userID, id uuid.UUID) (*dto.CustomerInfo, error) {
	customer, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return dto.NewCustomerInfo(customer), nil
}

func (s *CustomerService) ListCustomers(ctx context.Context, userID uuid.UUID, filter repository.CustomerFilter) (*dto.ListResponse, error) {
	filter.UserID = userID
	customers, total, err := s.customerRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &dto.ListResponse{List: dto.NewCustomerList(customers), Total: total}, nil
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateCustomerRequest) (*dto.CustomerInfo, error) {
	customer, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		customer.Name = req.Name
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.Avatar != nil {
		customer.Avatar = *req.Avatar
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return dto.NewCustomerInfo(customer), nil
}

// DeleteCustomer 有流水引用的客户不允许删
func (s *CustomerService) DeleteCustomer(ctx context.Context, userID, id uuid.UUID) error {
	customer, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return err
	}

	saleCount, err := s.saleRepo.CountByCustomer(ctx, id)
	if err != nil {
		return err
	}
	expenseCount, err := s.expenseRepo.CountByCustomer(ctx, id)
	if err != nil {
		return err
	}
	if saleCount > 0 || expenseCount > 0 {
		return ErrCustomerHasChildren
	}

	return s.customerRepo.Delete(ctx, customer.ID)
}

func (s *CustomerService) findOwned(ctx context.Context, userID, id uuid.UUID) (*model.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil || customer.UserID != userID {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

// ==================== 错误定义 ====================

var (
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrCustomerHasChildren = errors.New("customer still has sales or expenses")
)
