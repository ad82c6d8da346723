package model

// ProductCategory 商品分类，独立查找表
type ProductCategory struct {
	UUIDModel
	Name string `gorm:"size:255;index;not null"`

	Products []Product `gorm:"foreignKey:CategoryID"`
}

func (ProductCategory) TableName() string {
	return "product_categories"
}
