package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pos_backoffice_v1/internal/model"
)

// ==================== 支出流水 ====================

type CreateExpenseRequest struct {
	CustomerID uuid.UUID       `json:"customer_id" binding:"required"`
	StoreID    uuid.UUID       `json:"store_id" binding:"required"`
	ProductID  uuid.UUID       `json:"product_id" binding:"required"`
	Quantity   int             `json:"quantity" binding:"required,gt=0"`
	UnitPrice  decimal.Decimal `json:"unit_price" binding:"required"`
	TotalPrice decimal.Decimal `json:"total_price" binding:"required"`
}

type ExpenseInfo struct {
	ID         int64           `json:"id"`
	CustomerID uuid.UUID       `json:"customer_id"`
	StoreID    uuid.UUID       `json:"store_id"`
	ProductID  uuid.UUID       `json:"product_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func NewExpenseInfo(expense *model.Expense) *ExpenseInfo {
	return &ExpenseInfo{
		ID:         expense.ID,
		CustomerID: expense.CustomerID,
		StoreID:    expense.StoreID,
		ProductID:  expense.ProductID,
		Quantity:   expense.Quantity,
		UnitPrice:  expense.UnitPrice,
		TotalPrice: expense.TotalPrice,
		CreatedAt:  expense.CreatedAt,
		UpdatedAt:  expense.UpdatedAt,
	}
}

func NewExpenseList(expenses []model.Expense) []*ExpenseInfo {
	list := make([]*ExpenseInfo, len(expenses))
	for i := range expenses {
		list[i] = NewExpenseInfo(&expenses[i])
	}
	return list
}
