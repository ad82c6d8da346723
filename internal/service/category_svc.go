package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"pos_backoffice_v1/internal/api/dto"
	"pos_backoffice_v1/internal/model"
	"pos_backoffice_v1/internal/repository"
)

// ==================== CategoryService 商品分类服务 ====================

type CategoryService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo, productRepo: productRepo}
}

func (s *CategoryService) CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryInfo, error) {
	category := &model.ProductCategory{Name: req.Name}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return dto.NewCategoryInfo(category), nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*dto.CategoryInfo, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return dto.NewCategoryInfo(category), nil
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]*dto.CategoryInfo, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewCategoryList(categories), nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, req *dto.UpdateCategoryRequest) (*dto.CategoryInfo, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	category.Name = req.Name
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return dto.NewCategoryInfo(category), nil
}

// DeleteCategory 还有商品挂在分类下时拒绝删除
func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}

	n, err := s.productRepo.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrCategoryHasProducts
	}

	return s.categoryRepo.Delete(ctx, id)
}

// ==================== 错误定义 ====================

var (
	ErrCategoryNotFound    = errors.New("product category not found")
	ErrCategoryHasProducts = errors.New("category still has products")
)
