package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"pos_backoffice_v1/internal/api/dto"
	"pos_backoffice_v1/internal/model"
	"pos_backoffice_v1/internal/repository"
)

// ==================== ExpenseService 支出流水服务 ====================

// Expense 本身不挂 UserID，归属判断统一走门店
type ExpenseService struct {
	expenseRepo  repository.ExpenseRepository
	storeRepo    repository.StoreRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
}

func NewExpenseService(
	expenseRepo repository.ExpenseRepository,
	storeRepo repository.StoreRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
) *ExpenseService {
	return &ExpenseService{
		expenseRepo:  expenseRepo,
		storeRepo:    storeRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
	}
}

func (s *ExpenseService) CreateExpense(ctx context.Context, userID uuid.UUID, req *dto.CreateExpenseRequest) (*dto.ExpenseInfo, error) {
	if err := s.checkStoreOwned(ctx, userID, req.StoreID); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil || customer.UserID != userID {
		return nil, ErrCustomerNotFound
	}

	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.UserID != userID {
		return nil, ErrProductNotFound
	}

	expense := &model.Expense{
		CustomerID: req.CustomerID,
		StoreID:    req.StoreID,
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
		UnitPrice:  req.UnitPrice,
		TotalPrice: req.TotalPrice,
	}
	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return dto.NewExpenseInfo(expense), nil
}

func (s *ExpenseService) GetExpense(ctx context.Context, userID uuid.UUID, id int64) (*dto.ExpenseInfo, error) {
	expense, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return dto.NewExpenseInfo(expense), nil
}

// ListExpenses 按门店列支出，门店必须是本人的
func (s *ExpenseService) ListExpenses(ctx context.Context, userID uuid.UUID, filter repository.ExpenseFilter) (*dto.ListResponse, error) {
	if err := s.checkStoreOwned(ctx, userID, filter.StoreID); err != nil {
		return nil, err
	}

	expenses, total, err := s.expenseRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &dto.ListResponse{List: dto.NewExpenseList(expenses), Total: total}, nil
}

func (s *ExpenseService) DeleteExpense(ctx context.Context, userID uuid.UUID, id int64) error {
	expense, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return err
	}
	return s.expenseRepo.Delete(ctx, expense.ID)
}

func (s *ExpenseService) findOwned(ctx context.Context, userID uuid.UUID, id int64) (*model.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, ErrExpenseNotFound
	}
	if err := s.checkStoreOwned(ctx, userID, expense.StoreID); err != nil {
		if errors.Is(err, ErrStoreNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, err
	}
	return expense, nil
}

func (s *ExpenseService) checkStoreOwned(ctx context.Context, userID, storeID uuid.UUID) error {
	store, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return err
	}
	if store == nil || store.UserID != userID {
		return ErrStoreNotFound
	}
	return nil
}

// ==================== 错误定义 ====================

var ErrExpenseNotFound = errors.New("expense not found")
