package dto

// ==================== 用户管理 ====================

// CreateUserRequest 管理端建用户（与注册同规则）
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=255"`
	Avatar   string `json:"avatar" binding:"omitempty,max=500"`
}

// UpdateUserRequest 更新用户资料，空字段不动
type UpdateUserRequest struct {
	Name   string `json:"name" binding:"omitempty,max=255"`
	Avatar string `json:"avatar" binding:"omitempty,max=500"`
}
