package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pos_backoffice_v1/internal/model"
)

// ==================== ExpenseRepository 支出流水仓库 ====================

type ExpenseRepository interface {
	Create(ctx context.Context, expense *model.Expense) error
	GetByID(ctx context.Context, id int64) (*model.Expense, error)
	List(ctx context.Context, filter ExpenseFilter) ([]model.Expense, int64, error)
	Update(ctx context.Context, expense *model.Expense) error
	Delete(ctx context.Context, id int64) error
	CountByStore(ctx context.Context, storeID uuid.UUID) (int64, error)
	CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error)
	CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error)
	SummarizeRange(ctx context.Context, from, to time.Time) ([]StoreSummary, error)
}

// ExpenseFilter 支出流水筛选条件
type ExpenseFilter struct {
	StoreID    uuid.UUID
	CustomerID uuid.UUID
	Page       int
	PageSize   int
}

type expenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, expense *model.Expense) error {
	touchForCreate(expense)
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *expenseRepository) GetByID(ctx context.Context, id int64) (*model.Expense, error) {
	var expense model.Expense
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&expense).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *expenseRepository) List(ctx context.Context, filter ExpenseFilter) ([]model.Expense, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Expense{})

	if filter.StoreID != uuid.Nil {
		query = query.Where("store_id = ?", filter.StoreID)
	}
	if filter.CustomerID != uuid.Nil {
		query = query.Where("customer_id = ?", filter.CustomerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset, limit := normalizePage(filter.Page, filter.PageSize)

	var expenses []model.Expense
	err := query.
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&expenses).Error

	return expenses, total, err
}

func (r *expenseRepository) Update(ctx context.Context, expense *model.Expense) error {
	touchForUpdate(expense)
	return r.db.WithContext(ctx).Save(expense).Error
}

func (r *expenseRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Expense{}, "id = ?", id).Error
}

func (r *expenseRepository) CountByStore(ctx context.Context, storeID uuid.UUID) (int64, error) {
	return r.countBy(ctx, "store_id", storeID)
}

func (r *expenseRepository) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	return r.countBy(ctx, "customer_id", customerID)
}

func (r *expenseRepository) CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	return r.countBy(ctx, "product_id", productID)
}

func (r *expenseRepository) countBy(ctx context.Context, column string, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Expense{}).
		Where(column+" = ?", id).
		Count(&count).Error
	return count, err
}

// SummarizeRange 统计时间窗内支出，按门店聚合
func (r *expenseRepository) SummarizeRange(ctx context.Context, from, to time.Time) ([]StoreSummary, error) {
	var summaries []StoreSummary
	err := r.db.WithContext(ctx).
		Model(&model.Expense{}).
		Select("store_id, COUNT(*) AS count, COALESCE(SUM(total_price), 0) AS total").
		Where("created_at >= ? AND created_at < ?", from, to).
		Group("store_id").
		Scan(&summaries).Error
	return summaries, err
}
