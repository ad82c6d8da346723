package repository

import (
	"errors"
	"time"

	"pos_backoffice_v1/internal/model"
)

// ==================== 公共错误 ====================

var (
	// ErrDuplicateEmail 邮箱唯一约束冲突（预检查竞态之外的最后一道防线）
	ErrDuplicateEmail = errors.New("email already exists")
)

// ==================== 时间戳 ====================

// 时间戳由仓库层显式调用 Timestamped 接口维护，
// 不依赖任何运行时字段扫描

func touchForCreate(e model.Timestamped) {
	now := time.Now().UTC()
	e.SetCreatedAt(now)
	e.SetUpdatedAt(now)
}

func touchForUpdate(e model.Timestamped) {
	e.SetUpdatedAt(time.Now().UTC())
}

// ==================== 分页 ====================

// Page 归一化分页参数，page 从 1 开始
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	return (page - 1) * pageSize, pageSize
}
