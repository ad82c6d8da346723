package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"pos_backoffice_v1/internal/api/dto"
	"pos_backoffice_v1/internal/model"
	"pos_backoffice_v1/internal/repository"
)

// ==================== ProductService 商品服务 ====================

type ProductService struct {
	productRepo  repository.ProductRepository
	storeRepo    repository.StoreRepository
	categoryRepo repository.CategoryRepository
	saleRepo     repository.SaleRepository
	expenseRepo  repository.ExpenseRepository
}

func NewProductService(
	productRepo repository.ProductRepository,
	storeRepo repository.StoreRepository,
	categoryRepo repository.CategoryRepository,
	saleRepo repository.SaleRepository,
	expenseRepo repository.ExpenseRepository,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		storeRepo:    storeRepo,
		categoryRepo: categoryRepo,
		saleRepo:     saleRepo,
		expenseRepo:  expenseRepo,
	}
}

// CreateProduct 建商品，先校验门店归属和分类存在
func (s *ProductService) CreateProduct(ctx context.Context, userID uuid.UUID, req *dto.CreateProductRequest) (*dto.ProductInfo, error) {
	store, err := s.storeRepo.GetByID(ctx, req.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil || store.UserID != userID {
		return nil, ErrStoreNotFound
	}

	category, err := s.categoryRepo.GetByID(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	product := &model.Product{
		Name:       req.Name,
		Quantity:   req.Quantity,
		Image:      req.Image,
		Price:      req.Price,
		UserID:     userID,
		StoreID:    req.StoreID,
		CategoryID: req.CategoryID,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return dto.NewProductInfo(product), nil
}

func (s *ProductService) GetProduct(ctx context.Context, userID, id uuid.UUID) (*dto.ProductInfo, error) {
	product, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return dto.NewProductInfo(product), nil
}

// ListProducts 当前用户的商品，支持门店/分类/关键词过滤
func (s *ProductService) ListProducts(ctx context.Context, userID uuid.UUID, filter repository.ProductFilter) (*dto.ListResponse, error) {
	filter.UserID = userID
	products, total, err := s.productRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &dto.ListResponse{List: dto.NewProductList(products), Total: total}, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateProductRequest) (*dto.ProductInfo, error) {
	product, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Quantity != nil {
		product.Quantity = *req.Quantity
	}
	if req.Image != nil {
		product.Image = *req.Image
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.CategoryID != uuid.Nil {
		category, err := s.categoryRepo.GetByID(ctx, req.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, ErrCategoryNotFound
		}
		product.CategoryID = req.CategoryID
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return dto.NewProductInfo(product), nil
}

// DeleteProduct 有流水引用的商品不允许删
func (s *ProductService) DeleteProduct(ctx context.Context, userID, id uuid.UUID) error {
	product, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return err
	}

	saleCount, err := s.saleRepo.CountByProduct(ctx, id)
	if err != nil {
		return err
	}
	expenseCount, err := s.expenseRepo.CountByProduct(ctx, id)
	if err != nil {
		return err
	}
	if saleCount > 0 || expenseCount > 0 {
		return ErrProductHasChildren
	}

	return s.productRepo.Delete(ctx, product.ID)
}

func (s *ProductService) findOwned(ctx context.Context, userID, id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.UserID != userID {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// ==================== 错误定义 ====================

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrProductHasChildren = errors.New("product still has sales or expenses")
)
