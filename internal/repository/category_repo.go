package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pos_backoffice_v1/internal/model"
)

// ==================== CategoryRepository 商品分类仓库 ====================

type CategoryRepository interface {
	Create(ctx context.Context, category *model.ProductCategory) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.ProductCategory, error)
	GetAll(ctx context.Context) ([]model.ProductCategory, error)
	Update(ctx context.Context, category *model.ProductCategory) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *model.ProductCategory) error {
	touchForCreate(category)
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ProductCategory, error) {
	var category model.ProductCategory
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]model.ProductCategory, error) {
	var categories []model.ProductCategory
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) Update(ctx context.Context, category *model.ProductCategory) error {
	touchForUpdate(category)
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ProductCategory{}, "id = ?", id).Error
}
