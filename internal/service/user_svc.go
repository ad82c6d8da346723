package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"pos_backoffice_v1/internal/api/dto"
	"pos_backoffice_v1/internal/model"
	"pos_backoffice_v1/internal/repository"
	"pos_backoffice_v1/pkg/utils"
)

// ==================== UserService 用户服务 ====================

type UserService struct {
	userRepo     repository.UserRepository
	storeRepo    repository.StoreRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	saleRepo     repository.SaleRepository
}

func NewUserService(
	userRepo repository.UserRepository,
	storeRepo repository.StoreRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	saleRepo repository.SaleRepository,
) *UserService {
	return &UserService{
		userRepo:     userRepo,
		storeRepo:    storeRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		saleRepo:     saleRepo,
	}
}

// CreateUser 管理端创建用户（不签发令牌）
func (s *UserService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserInfo, error) {
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

	return dto.NewUserInfo(user), nil
}

// GetUserByID 用户详情
func (s *UserService) GetUserByID(ctx context.Context, id uuid.UUID) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return dto.NewUserInfo(user), nil
}

// GetAllUsers 用户列表，按创建时间排序
func (s *UserService) GetAllUsers(ctx context.Context) ([]*dto.UserInfo, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]*dto.UserInfo, len(users))
	for i := range users {
		list[i] = dto.NewUserInfo(&users[i])
	}
	return list, nil
}

// UpdateUser 更新资料，空字段不动
func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return dto.NewUserInfo(user), nil
}

// DeleteUser 删除用户
// 子表（门店/商品/客户/销售）还有引用时拒绝，RESTRICT 不级联
func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	checks := []struct {
		count func(context.Context, uuid.UUID) (int64, error)
	}{
		{s.storeRepo.CountByUser},
		{s.productRepo.CountByUser},
		{s.customerRepo.CountByUser},
		{s.saleRepo.CountByUser},
	}
	for _, c := range checks {
		n, err := c.count(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrUserHasChildren
		}
	}

	return s.userRepo.Delete(ctx, id)
}

// ==================== 错误定义 ====================

var ErrUserHasChildren = errors.New("user still owns stores, products, customers or sales")
