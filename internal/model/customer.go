package model

import "github.com/google/uuid"

// Customer 客户，归属 User + Store
type Customer struct {
	UUIDModel
	UserID  uuid.UUID `gorm:"type:uuid;index;not null"`
	User    *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	StoreID uuid.UUID `gorm:"type:uuid;index;not null"`
	Store   *Store    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Name    string    `gorm:"size:255;index;not null"`
	Address string    `gorm:"size:500"`
	Avatar  string    `gorm:"size:500"`

	Sales    []Sale    `gorm:"foreignKey:CustomerID"`
	Expenses []Expense `gorm:"foreignKey:CustomerID"`
}

func (Customer) TableName() string {
	return "customers"
}
