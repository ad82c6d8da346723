package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Timestamped is implemented by every persisted entity. The repository layer
// calls these explicitly on insert/update; CreatedAt is set once, UpdatedAt on
// every write.
type Timestamped interface {
	SetCreatedAt(time.Time)
	SetUpdatedAt(time.Time)
}

// BaseModel 交易流水表基座: 自增 ID (sales, expenses)
type BaseModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *BaseModel) SetCreatedAt(t time.Time) { m.CreatedAt = t }
func (m *BaseModel) SetUpdatedAt(t time.Time) { m.UpdatedAt = t }

// UUIDModel 主数据表基座: UUID 主键 (users, stores, products, ...)
type UUIDModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *UUIDModel) SetCreatedAt(t time.Time) { m.CreatedAt = t }
func (m *UUIDModel) SetUpdatedAt(t time.Time) { m.UpdatedAt = t }

// BeforeCreate assigns the primary key when the caller did not.
func (m *UUIDModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
