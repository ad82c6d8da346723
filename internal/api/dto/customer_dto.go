package dto

import (
	"time"

	"github.com/google/uuid"

	"pos_backoffice_v1/internal/model"
)

// ==================== 客户 ====================

type CreateCustomerRequest struct {
	Name    string    `json:"name" binding:"required,max=255"`
	Address string    `json:"address" binding:"omitempty,max=500"`
	Avatar  string    `json:"avatar" binding:"omitempty,max=500"`
	StoreID uuid.UUID `json:"store_id" binding:"required"`
}

type UpdateCustomerRequest struct {
	Name    string  `json:"name" binding:"omitempty,max=255"`
	Address *string `json:"address" binding:"omitempty,max=500"`
	Avatar  *string `json:"avatar" binding:"omitempty,max=500"`
}

type CustomerInfo struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	StoreID   uuid.UUID `json:"store_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewCustomerInfo(customer *model.Customer) *CustomerInfo {
	return &CustomerInfo{
		ID:        customer.ID,
		UserID:    customer.UserID,
		StoreID:   customer.StoreID,
		Name:      customer.Name,
		Address:   customer.Address,
		Avatar:    customer.Avatar,
		CreatedAt: customer.CreatedAt,
		UpdatedAt: customer.UpdatedAt,
	}
}

func NewCustomerList(customers []model.Customer) []*CustomerInfo {
	list := make([]*CustomerInfo, len(customers))
	for i := range customers {
		list[i] = NewCustomerInfo(&customers[i])
	}
	return list
}
