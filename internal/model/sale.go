package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleStatus 销售单状态
type SaleStatus string

const (
	SaleStatusPending   SaleStatus = "pending"
	SaleStatusCompleted SaleStatus = "completed"
	SaleStatusCancelled SaleStatus = "cancelled"
)

// Sale 销售流水，串联 Customer / User / Store / Product
// TotalPrice = UnitPrice * Quantity 是约定而非强制校验，入参照抄
type Sale struct {
	BaseModel
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null"`
	Customer   *Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	UserID     uuid.UUID `gorm:"type:uuid;index;not null"`
	User       *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	StoreID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Store      *Store    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	ProductID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Product    *Product  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`

	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Status     SaleStatus      `gorm:"size:50;index;not null"`
}

func (Sale) TableName() string {
	return "sales"
}
