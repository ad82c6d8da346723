package dto

import (
	"time"

	"github.com/google/uuid"

	"pos_backoffice_v1/internal/model"
)

// ==================== 登录 ====================

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required"`
}

// ==================== 注册 ====================

// RegisterRequest 注册请求
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=255"`
	Avatar   string `json:"avatar" binding:"omitempty,max=500"`
}

// ==================== 响应 ====================

// AuthResponse 登录/注册响应：身份 + 令牌 + 过期时间
type AuthResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar,omitempty"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UserInfo 当前用户投影，密码永不出现
type UserInfo struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ==================== 转换函数 ====================

// 实体到 DTO 的映射全部手写，不走反射拷贝

func NewAuthResponse(user *model.User, token string, expiresAt time.Time) *AuthResponse {
	return &AuthResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Avatar:    user.Avatar,
		Token:     token,
		ExpiresAt: expiresAt,
	}
}

func NewUserInfo(user *model.User) *UserInfo {
	return &UserInfo{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Avatar:    user.Avatar,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
