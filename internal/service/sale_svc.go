package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"pos_backoffice_v1/internal/api/dto"
	"pos_backoffice_v1/internal/model"
	"pos_backoffice_v1/internal/repository"
)

// ==================== SaleService 销售流水服务 ====================

type SaleService struct {
	saleRepo     repository.SaleRepository
	storeRepo    repository.StoreRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
}

func NewSaleService(
	saleRepo repository.SaleRepository,
	storeRepo repository.StoreRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
) *SaleService {
	return &SaleService{
		saleRepo:     saleRepo,
		storeRepo:    storeRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
	}
}

// CreateSale 记一笔销售
// TotalPrice 不做 单价×数量 的强校验，与历史行为保持一致
func (s *SaleService) CreateSale(ctx context.Context, userID uuid.UUID, req *dto.CreateSaleRequest) (*dto.SaleInfo, error) {
	store, err := s.storeRepo.GetByID(ctx, req.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil || store.UserID != userID {
		return nil, ErrStoreNotFound
	}

	customer, err := s.customerRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil || customer.UserID != userID {
		return nil, ErrCustomerNotFound
	}

	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.UserID != userID {
		return nil, ErrProductNotFound
	}

	sale := &model.Sale{
		CustomerID: req.CustomerID,
		UserID:     userID,
		StoreID:    req.StoreID,
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
		UnitPrice:  req.UnitPrice,
		TotalPrice: req.TotalPrice,
		Status:     model.SaleStatus(req.Status),
	}
	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}
	return dto.NewSaleInfo(sale), nil
}

func (s *SaleService) GetSale(ctx context.Context, userID uuid.UUID, id int64) (*dto.SaleInfo, error) {
	sale, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return dto.NewSaleInfo(sale), nil
}

func (s *SaleService) ListSales(ctx context.Context, userID uuid.UUID, filter repository.SaleFilter) (*dto.ListResponse, error) {
	filter.UserID = userID
	sales, total, err := s.saleRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &dto.ListResponse{List: dto.NewSaleList(sales), Total: total}, nil
}

// UpdateSaleStatus 状态流转 pending/completed/cancelled
func (s *SaleService) UpdateSaleStatus(ctx context.Context, userID uuid.UUID, id int64, req *dto.UpdateSaleStatusRequest) (*dto.SaleInfo, error) {
	sale, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	sale.Status = model.SaleStatus(req.Status)
	if err := s.saleRepo.Update(ctx, sale); err != nil {
		return nil, err
	}
	return dto.NewSaleInfo(sale), nil
}

func (s *SaleService) DeleteSale(ctx context.Context, userID uuid.UUID, id int64) error {
	sale, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return err
	}
	return s.saleRepo.Delete(ctx, sale.ID)
}

func (s *SaleService) findOwned(ctx context.Context, userID uuid.UUID, id int64) (*model.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil || sale.UserID != userID {
		return nil, ErrSaleNotFound
	}
	return sale, nil
}

// ==================== 错误定义 ====================

var ErrSaleNotFound = errors.New("sale not found")
