package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pos_backoffice_v1/internal/model"
)

// ==================== 商品分类 ====================

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

type UpdateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

type CategoryInfo struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewCategoryInfo(category *model.ProductCategory) *CategoryInfo {
	return &CategoryInfo{
		ID:        category.ID,
		Name:      category.Name,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

func NewCategoryList(categories []model.ProductCategory) []*CategoryInfo {
	list := make([]*CategoryInfo, len(categories))
	for i := range categories {
		list[i] = NewCategoryInfo(&categories[i])
	}
	return list
}

// ==================== 商品 ====================

// CreateProductRequest 价格走 decimal，两位小数定点
type CreateProductRequest struct {
	Name       string          `json:"name" binding:"required,max=255"`
	Quantity   int             `json:"quantity" binding:"required,gte=0"`
	Image      string          `json:"image" binding:"omitempty,max=500"`
	Price      decimal.Decimal `json:"price" binding:"required"`
	StoreID    uuid.UUID       `json:"store_id" binding:"required"`
	CategoryID uuid.UUID       `json:"category_id" binding:"required"`
}

type UpdateProductRequest struct {
	Name       string           `json:"name" binding:"omitempty,max=255"`
	Quantity   *int             `json:"quantity" binding:"omitempty,gte=0"`
	Image      *string          `json:"image" binding:"omitempty,max=500"`
	Price      *decimal.Decimal `json:"price"`
	CategoryID uuid.UUID        `json:"category_id"`
}

type ProductInfo struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	Image      string          `json:"image,omitempty"`
	Price      decimal.Decimal `json:"price"`
	UserID     uuid.UUID       `json:"user_id"`
	StoreID    uuid.UUID       `json:"store_id"`
	CategoryID uuid.UUID       `json:"category_id"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func NewProductInfo(product *model.Product) *ProductInfo {
	return &ProductInfo{
		ID:         product.ID,
		Name:       product.Name,
		Quantity:   product.Quantity,
		Image:      product.Image,
		Price:      product.Price,
		UserID:     product.UserID,
		StoreID:    product.StoreID,
		CategoryID: product.CategoryID,
		CreatedAt:  product.CreatedAt,
		UpdatedAt:  product.UpdatedAt,
	}
}

func NewProductList(products []model.Product) []*ProductInfo {
	list := make([]*ProductInfo, len(products))
	for i := range products {
		list[i] = NewProductInfo(&products[i])
	}
	return list
}
