package service

import (
	"context"
	"errors"

	"pos_backoffice_v1/internal/api/dto"
	"pos_backoffice_v1/internal/model"
	"pos_backoffice_v1/internal/repository"
	"pos_backoffice_v1/internal/token"
	"pos_backoffice_v1/pkg/utils"
)

// ==================== AuthService 认证服务 ====================

// AuthService 登录/注册/身份识别编排
// 无状态：除了仓库和签发密钥，请求之间不共享任何东西
type AuthService struct {
	userRepo repository.UserRepository
	tokens   *token.Manager
}

// NewAuthService 创建认证服务
func NewAuthService(userRepo repository.UserRepository, tokens *token.Manager) *AuthService {
	return &AuthService{userRepo: userRepo, tokens: tokens}
}

// Login 用户登录
// 查无此人和密码不对走同一个错误，防止撞库探测邮箱
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	signed, expiresAt, err := s.tokens.Issue(user.ID, user.Email, user.Name)
	if err != nil {
		return nil, err
	}

	return dto.NewAuthResponse(user, signed, expiresAt), nil
}

// Register 注册新用户
// 预检查 + 存储层唯一约束双保险，并发注册最多成功一个
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Avatar:   req.Avatar,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	signed, expiresAt, err := s.tokens.Issue(user.ID, user.Email, user.Name)
	if err != nil {
		return nil, err
	}

	return dto.NewAuthResponse(user, signed, expiresAt), nil
}

// Identify 凭令牌识别当前用户
// 令牌里的声明只用来取 ID，用户状态永远以库里为准
func (s *AuthService) Identify(ctx context.Context, rawToken string) (*dto.UserInfo, error) {
	claims, err := s.tokens.Verify(rawToken)
	if err != nil {
		return nil, token.ErrInvalidToken
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, token.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// 令牌有效但用户已不存在（签发后被删）
		return nil, ErrUserNotFound
	}

	return dto.NewUserInfo(user), nil
}

// ==================== 错误定义 ====================

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
)
