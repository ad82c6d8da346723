package model

import "github.com/google/uuid"

// Store 门店，归属唯一 User
type Store struct {
	UUIDModel
	UserID uuid.UUID `gorm:"type:uuid;index;not null"`
	User   *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Name   string    `gorm:"size:500;not null"`

	Products  []Product  `gorm:"foreignKey:StoreID"`
	Customers []Customer `gorm:"foreignKey:StoreID"`
	Sales     []Sale     `gorm:"foreignKey:StoreID"`
	Expenses  []Expense  `gorm:"foreignKey:StoreID"`
}

func (Store) TableName() string {
	return "stores"
}
