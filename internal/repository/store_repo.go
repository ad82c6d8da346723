package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pos_backoffice_v1/internal/model"
)

// ==================== StoreRepository 门店仓库 ====================

type StoreRepository interface {
	Create(ctx context.Context, store *model.Store) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Store, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Store, error)
	Update(ctx context.Context, store *model.Store) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type storeRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) Create(ctx context.Context, store *model.Store) error {
	touchForCreate(store)
	return r.db.WithContext(ctx).Create(store).Error
}

func (r *storeRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Store, error) {
	var store model.Store
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&store).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *storeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Store, error) {
	var stores []model.Store
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&stores).Error
	return stores, err
}

func (r *storeRepository) Update(ctx context.Context, store *model.Store) error {
	touchForUpdate(store)
	return r.db.WithContext(ctx).Save(store).Error
}

func (r *storeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Store{}, "id = ?", id).Error
}

// CountByUser 用户名下门店数，删除用户前的 RESTRICT 预检查用
func (r *storeRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Store{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
