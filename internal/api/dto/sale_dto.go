package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pos_backoffice_v1/internal/model"
)

// ==================== 销售流水 ====================

// CreateSaleRequest TotalPrice 由调用方给出，单价×数量只是约定
type CreateSaleRequest struct {
	CustomerID uuid.UUID       `json:"customer_id" binding:"required"`
	StoreID    uuid.UUID       `json:"store_id" binding:"required"`
	ProductID  uuid.UUID       `json:"product_id" binding:"required"`
	Quantity   int             `json:"quantity" binding:"required,gt=0"`
	UnitPrice  decimal.Decimal `json:"unit_price" binding:"required"`
	TotalPrice decimal.Decimal `json:"total_price" binding:"required"`
	Status     string          `json:"status" binding:"required,oneof=pending completed cancelled"`
}

type UpdateSaleStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending completed cancelled"`
}

type SaleInfo struct {
	ID         int64           `json:"id"`
	CustomerID uuid.UUID       `json:"customer_id"`
	UserID     uuid.UUID       `json:"user_id"`
	StoreID    uuid.UUID       `json:"store_id"`
	ProductID  uuid.UUID       `json:"product_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func NewSaleInfo(sale *model.Sale) *SaleInfo {
	return &SaleInfo{
		ID:         sale.ID,
		CustomerID: sale.CustomerID,
		UserID:     sale.UserID,
		StoreID:    sale.StoreID,
		ProductID:  sale.ProductID,
		Quantity:   sale.Quantity,
		UnitPrice:  sale.UnitPrice,
		TotalPrice: sale.TotalPrice,
		Status:     string(sale.Status),
		CreatedAt:  sale.CreatedAt,
		UpdatedAt:  sale.UpdatedAt,
	}
}

func NewSaleList(sales []model.Sale) []*SaleInfo {
	list := make([]*SaleInfo, len(sales))
	for i := range sales {
		list[i] = NewSaleInfo(&sales[i])
	}
	return list
}
