package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product 商品
// 价格是定点两位小数 (decimal)，禁止 float，避免合计漂移
type Product struct {
	UUIDModel
	Name     string          `gorm:"size:255;index;not null"`
	Quantity int             `gorm:"not null"` // 库存数量
	Image    string          `gorm:"size:500"`
	Price    decimal.Decimal `gorm:"type:decimal(18,2);not null"`

	// 归属外键
	UserID     uuid.UUID        `gorm:"type:uuid;index;not null"`
	User       *User            `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	StoreID    uuid.UUID        `gorm:"type:uuid;index;not null"`
	Store      *Store           `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CategoryID uuid.UUID        `gorm:"type:uuid;index;not null"`
	Category   *ProductCategory `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`

	Sales    []Sale    `gorm:"foreignKey:ProductID"`
	Expenses []Expense `gorm:"foreignKey:ProductID"`
}

func (Product) TableName() string {
	return "products"
}
