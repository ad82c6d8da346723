package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"pos_backoffice_v1/internal/api/dto"
	"pos_backoffice_v1/internal/model"
	"pos_backoffice_v1/internal/repository"
)

// ==================== StoreService 门店服务 ====================

type StoreService struct {
	storeRepo    repository.StoreRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	saleRepo     repository.SaleRepository
	expenseRepo  repository.ExpenseRepository
}

func NewStoreService(
	storeRepo repository.StoreRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	saleRepo repository.SaleRepository,
	expenseRepo repository.ExpenseRepository,
) *StoreService {
	return &StoreService{
		storeRepo:    storeRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		saleRepo:     saleRepo,
		expenseRepo:  expenseRepo,
	}
}

// CreateStore 建门店，归属当前登录用户
func (s *StoreService) CreateStore(ctx context.Context, userID uuid.UUID, req *dto.CreateStoreRequest) (*dto.StoreInfo, error) {
	store := &model.Store{
		UserID: userID,
		Name:   req.Name,
	}
	if err := s.storeRepo.Create(ctx, store); err != nil {
		return nil, err
	}
	return dto.NewStoreInfo(store), nil
}

// GetStore 门店详情，只能看自己的
func (s *StoreService) GetStore(ctx context.Context, userID, id uuid.UUID) (*dto.StoreInfo, error) {
	store, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return dto.NewStoreInfo(store), nil
}

// ListStores 当前用户的门店列表
func (s *StoreService) ListStores(ctx context.Context, userID uuid.UUID) ([]*dto.StoreInfo, error) {
	stores, err := s.storeRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.NewStoreList(stores), nil
}

// UpdateStore 改名
func (s *StoreService) UpdateStore(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateStoreRequest) (*dto.StoreInfo, error) {
	store, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	store.Name = req.Name
	if err := s.storeRepo.Update(ctx, store); err != nil {
		return nil, err
	}
	return dto.NewStoreInfo(store), nil
}

// DeleteStore 删除门店，任何子表还有引用就拒绝
func (s *StoreService) DeleteStore(ctx context.Context, userID, id uuid.UUID) error {
	store, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return err
	}

	counts := []func(context.Context, uuid.UUID) (int64, error){
		s.productRepo.CountByStore,
		s.customerRepo.CountByStore,
		s.saleRepo.CountByStore,
		s.expenseRepo.CountByStore,
	}
	for _, count := range counts {
		n, err := count(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrStoreHasChildren
		}
	}

	return s.storeRepo.Delete(ctx, store.ID)
}

func (s *StoreService) findOwned(ctx context.Context, userID, id uuid.UUID) (*model.Store, error) {
	store, err := s.storeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if store == nil || store.UserID != userID {
		// 非本人门店按不存在处理，不泄露他人资源
		return nil, ErrStoreNotFound
	}
	return store, nil
}

// ==================== 错误定义 ====================

var (
	ErrStoreNotFound    = errors.New("store not found")
	ErrStoreHasChildren = errors.New("store still has products, customers, sales or expenses")
)
