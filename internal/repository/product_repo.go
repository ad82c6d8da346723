package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pos_backoffice_v1/internal/model"
)

// ==================== ProductRepository 商品仓库 ====================

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]model.Product, int64, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	CountByStore(ctx context.Context, storeID uuid.UUID) (int64, error)
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
}

// ProductFilter 商品筛选条件
type ProductFilter struct {
	UserID     uuid.UUID
	StoreID    uuid.UUID
	CategoryID uuid.UUID
	Keyword    string
	Page       int
	PageSize   int
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	touchForCreate(product)
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// List 按归属/分类/关键词过滤并分页
func (r *productRepository) List(ctx context.Context, filter ProductFilter) ([]model.Product, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Product{})

	if filter.UserID != uuid.Nil {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.StoreID != uuid.Nil {
		query = query.Where("store_id = ?", filter.StoreID)
	}
	if filter.CategoryID != uuid.Nil {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Keyword != "" {
		query = query.Where("name LIKE ?", "%"+filter.Keyword+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset, limit := normalizePage(filter.Page, filter.PageSize)

	var products []model.Product
	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&products).Error

	return products, total, err
}

func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	touchForUpdate(product)
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Product{}, "id = ?", id).Error
}

func (r *productRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *productRepository) CountByStore(ctx context.Context, storeID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("store_id = ?", storeID).
		Count(&count).Error
	return count, err
}

func (r *productRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}
