package dto

import (
	"time"

	"github.com/google/uuid"

	"pos_backoffice_v1/internal/model"
)

// ==================== 门店 ====================

type CreateStoreRequest struct {
	Name string `json:"name" binding:"required,max=500"`
}

type UpdateStoreRequest struct {
	Name string `json:"name" binding:"required,max=500"`
}

type StoreInfo struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewStoreInfo(store *model.Store) *StoreInfo {
	return &StoreInfo{
		ID:        store.ID,
		UserID:    store.UserID,
		Name:      store.Name,
		CreatedAt: store.CreatedAt,
		UpdatedAt: store.UpdatedAt,
	}
}

func NewStoreList(stores []model.Store) []*StoreInfo {
	list := make([]*StoreInfo, len(stores))
	for i := range stores {
		list[i] = NewStoreInfo(&stores[i])
	}
	return list
}
