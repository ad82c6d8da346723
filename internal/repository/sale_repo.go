package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"pos_backoffice_v1/internal/model"
)

// ==================== SaleRepository 销售流水仓库 ====================

type SaleRepository interface {
	Create(ctx context.Context, sale *model.Sale) error
	GetByID(ctx context.Context, id int64) (*model.Sale, error)
	List(ctx context.Context, filter SaleFilter) ([]model.Sale, int64, error)
	Update(ctx context.Context, sale *model.Sale) error
	Delete(ctx context.Context, id int64) error
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	CountByStore(ctx context.Context, storeID uuid.UUID) (int64, error)
	CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error)
	CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error)
	SummarizeRange(ctx context.Context, from, to time.Time) ([]StoreSummary, error)
}

// SaleFilter 销售流水筛选条件
type SaleFilter struct {
	UserID     uuid.UUID
	StoreID    uuid.UUID
	CustomerID uuid.UUID
	Status     model.SaleStatus
	Page       int
	PageSize   int
}

// StoreSummary 按门店聚合的流水汇总
type StoreSummary struct {
	StoreID uuid.UUID       `gorm:"column:store_id"`
	Count   int64           `gorm:"column:count"`
	Total   decimal.Decimal `gorm:"column:total"`
}

type saleRepository struct {
	db *gorm.DB
}

func NewSaleRepository(db *gorm.DB) SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) Create(ctx context.Context, sale *model.Sale) error {
	touchForCreate(sale)
	return r.db.WithContext(ctx).Create(sale).Error
}

func (r *saleRepository) GetByID(ctx context.Context, id int64) (*model.Sale, error) {
	var sale model.Sale
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&sale).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepository) List(ctx context.Context, filter SaleFilter) ([]model.Sale, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Sale{})

	if filter.UserID != uuid.Nil {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.StoreID != uuid.Nil {
		query = query.Where("store_id = ?", filter.StoreID)
	}
	if filter.CustomerID != uuid.Nil {
		query = query.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset, limit := normalizePage(filter.Page, filter.PageSize)

	var sales []model.Sale
	err := query.
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&sales).Error

	return sales, total, err
}

func (r *saleRepository) Update(ctx context.Context, sale *model.Sale) error {
	touchForUpdate(sale)
	return r.db.WithContext(ctx).Save(sale).Error
}

func (r *saleRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Sale{}, "id = ?", id).Error
}

func (r *saleRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	return r.countBy(ctx, "user_id", userID)
}

func (r *saleRepository) CountByStore(ctx context.Context, storeID uuid.UUID) (int64, error) {
	return r.countBy(ctx, "store_id", storeID)
}

func (r *saleRepository) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	return r.countBy(ctx, "customer_id", customerID)
}

func (r *saleRepository) CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	return r.countBy(ctx, "product_id", productID)
}

func (r *saleRepository) countBy(ctx context.Context, column string, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Sale{}).
		Where(column+" = ?", id).
		Count(&count).Error
	return count, err
}

// SummarizeRange 统计时间窗内已完成销售，按门店聚合
func (r *saleRepository) SummarizeRange(ctx context.Context, from, to time.Time) ([]StoreSummary, error) {
	var summaries []StoreSummary
	err := r.db.WithContext(ctx).
		Model(&model.Sale{}).
		Select("store_id, COUNT(*) AS count, COALESCE(SUM(total_price), 0) AS total").
		Where("status = ?", model.SaleStatusCompleted).
		Where("created_at >= ? AND created_at < ?", from, to).
		Group("store_id").
		Scan(&summaries).Error
	return summaries, err
}
