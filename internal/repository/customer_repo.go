package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pos_backoffice_v1/internal/model"
)

// ==================== CustomerRepository 客户仓库 ====================

type CustomerRepository interface {
	Create(ctx context.Context, customer *model.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	List(ctx context.Context, filter CustomerFilter) ([]model.Customer, int64, error)
	Update(ctx context.Context, customer *model.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	CountByStore(ctx context.Context, storeID uuid.UUID) (int64, error)
}

// CustomerFilter 客户筛选条件
type CustomerFilter struct {
	UserID   uuid.UUID
	StoreID  uuid.UUID
	Keyword  string
	Page     int
	PageSize int
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *model.Customer) error {
	touchForCreate(customer)
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *customerRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) List(ctx context.Context, filter CustomerFilter) ([]model.Customer, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Customer{})

	if filter.UserID != uuid.Nil {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.StoreID != uuid.Nil {
		query = query.Where("store_id = ?", filter.StoreID)
	}
	if filter.Keyword != "" {
		query = query.Where("name LIKE ?", "%"+filter.Keyword+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset, limit := normalizePage(filter.Page, filter.PageSize)

	var customers []model.Customer
	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&customers).Error

	return customers, total, err
}

func (r *customerRepository) Update(ctx context.Context, customer *model.Customer) error {
	touchForUpdate(customer)
	return r.db.WithContext(ctx).Save(customer).Error
}

func (r *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Customer{}, "id = ?", id).Error
}

func (r *customerRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Customer{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *customerRepository) CountByStore(ctx context.Context, storeID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Customer{}).
		Where("store_id = ?", storeID).
		Count(&count).Error
	return count, err
}
