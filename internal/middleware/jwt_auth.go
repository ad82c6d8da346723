package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pos_backoffice_v1/internal/token"
)

// ==================== Context Keys ====================

const (
	ContextKeyUserID = "user_id"
	ContextKeyEmail  = "email"
	ContextKeyName   = "name"
	ContextKeyClaims = "claims"
	ContextKeyToken  = "raw_token"
)

// ==================== Gin 中间件 ====================

// JWTAuth JWT 认证中间件
// 签发配置通过 Manager 显式注入，不读全局状态
func JWTAuth(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := BearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Missing or malformed Authorization header",
			})
			c.Abort()
			return
		}

		claims, err := tokens.Verify(raw)
		if err != nil {
			// 过期/伪造/串改统一一种对外口径
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		// 注入用户信息到 Context
		c.Set(ContextKeyUserID, userID)
		c.Set(ContextKeyEmail, claims.Email)
		c.Set(ContextKeyName, claims.Name)
		c.Set(ContextKeyClaims, claims)
		c.Set(ContextKeyToken, raw)

		c.Next()
	}
}

// BearerToken 解析 Authorization: Bearer {token}
func BearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// ==================== 辅助函数 ====================

// GetUserID 从 Context 获取用户 ID
func GetUserID(c *gin.Context) uuid.UUID {
	if id, exists := c.Get(ContextKeyUserID); exists {
		return id.(uuid.UUID)
	}
	return uuid.Nil
}

// GetEmail 从 Context 获取邮箱
func GetEmail(c *gin.Context) string {
	if email, exists := c.Get(ContextKeyEmail); exists {
		return email.(string)
	}
	return ""
}

// GetClaims 从 Context 获取完整 Claims
func GetClaims(c *gin.Context) *token.Claims {
	if claims, exists := c.Get(ContextKeyClaims); exists {
		return claims.(*token.Claims)
	}
	return nil
}
