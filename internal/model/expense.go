package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense 支出流水，结构与 Sale 一致但没有状态机，也不挂 User
type Expense struct {
	BaseModel
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null"`
	Customer   *Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	StoreID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Store      *Store    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	ProductID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Product    *Product  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`

	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

func (Expense) TableName() string {
	return "expenses"
}
