package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ==================== 配置 ====================

// Config 签发配置，进程启动时装配一次，之后只读
type Config struct {
	Secret         string // HS256 对称密钥
	Issuer         string // iss
	Audience       string // aud
	ExpirationDays int    // 有效期（天），0 取默认
}

// DefaultExpirationDays 未配置时的有效期
const DefaultExpirationDays = 7

// ==================== Claims ====================

// Claims 会话令牌携带的身份断言
// sub=用户 ID, jti=令牌唯一标识（预留吊销，当前不实现）
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// ==================== Manager ====================

// Manager 无状态令牌的签发与校验，纯计算，不碰存储
type Manager struct {
	cfg    Config
	secret []byte
	ttl    time.Duration
}

func NewManager(cfg Config) *Manager {
	days := cfg.ExpirationDays
	if days <= 0 {
		days = DefaultExpirationDays
	}
	return &Manager{
		cfg:    cfg,
		secret: []byte(cfg.Secret),
		ttl:    time.Duration(days) * 24 * time.Hour,
	}
}

// Issue 签发令牌，返回令牌串和过期时间
func (m *Manager) Issue(userID uuid.UUID, email, name string) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(m.ttl)

	claims := &Claims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    m.cfg.Issuer,
			Audience:  jwt.ClaimStrings{m.cfg.Audience},
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Verify 校验签名/签发者/受众/有效期
// 所有失败统一折叠成 ErrInvalidToken，对外不暴露失败原因
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return m.secret, nil
		},
		jwt.WithIssuer(m.cfg.Issuer),
		jwt.WithAudience(m.cfg.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// UserID 解析 sub 里的用户 ID
func (c *Claims) UserID() (uuid.UUID, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return id, nil
}

// ==================== 错误定义 ====================

var ErrInvalidToken = errors.New("invalid or expired token")
