package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"pos_backoffice_v1/internal/api/dto"
	"pos_backoffice_v1/internal/model"
	"pos_backoffice_v1/internal/repository"
)

// 门店/商品/分类服务共用的测试基座
type svcFixture struct {
	users      repository.UserRepository
	stores     *StoreService
	categories *CategoryService
	products   *ProductService
	userSvc    *UserService
}

func newSvcFixture(t *testing.T) *svcFixture {
	t.Helper()
	db := setupSvcTestDB(t)

	userRepo := repository.NewUserRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)

	return &svcFixture{
		users:      userRepo,
		stores:     NewStoreService(storeRepo, productRepo, customerRepo, saleRepo, expenseRepo),
		categories: NewCategoryService(categoryRepo, productRepo),
		products:   NewProductService(productRepo, storeRepo, categoryRepo, saleRepo, expenseRepo),
		userSvc:    NewUserService(userRepo, storeRepo, productRepo, customerRepo, saleRepo),
	}
}

func (f *svcFixture) createUser(t *testing.T, email string) *model.User {
	t.Helper()
	user := &model.User{Name: "Ann", Email: email, Password: "hash"}
	if err := f.users.Create(context.Background(), user); err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return user
}

// ==================== 单元测试 ====================

func TestStoreService_ForeignStoreHidden(t *testing.T) {
	f := newSvcFixture(t)
	ctx := context.Background()

	owner := f.createUser(t, "owner@x.com")
	other := f.createUser(t, "other@x.com")

	store, err := f.stores.CreateStore(ctx, owner.ID, &dto.CreateStoreRequest{Name: "Main"})
	if err != nil {
		t.Fatalf("create store failed: %v", err)
	}

	// 别人的门店一律按不存在处理
	if _, err := f.stores.GetStore(ctx, other.ID, store.ID); !errors.Is(err, ErrStoreNotFound) {
		t.Errorf("foreign GetStore error = %v, want ErrStoreNotFound", err)
	}
	if err := f.stores.DeleteStore(ctx, other.ID, store.ID); !errors.Is(err, ErrStoreNotFound) {
		t.Errorf("foreign DeleteStore error = %v, want ErrStoreNotFound", err)
	}

	// 本人照常可见
	got, err := f.stores.GetStore(ctx, owner.ID, store.ID)
	if err != nil || got.Name != "Main" {
		t.Fatalf("owner GetStore = %+v, err = %v", got, err)
	}
}

func TestStoreService_DeleteBlockedByProducts(t *testing.T) {
	f := newSvcFixture(t)
	ctx := context.Background()

	owner := f.createUser(t, "owner@x.com")
	store, err := f.stores.CreateStore(ctx, owner.ID, &dto.CreateStoreRequest{Name: "Main"})
	if err != nil {
		t.Fatalf("create store failed: %v", err)
	}
	category, err := f.categories.CreateCategory(ctx, &dto.CreateCategoryRequest{Name: "Drinks"})
	if err != nil {
		t.Fatalf("create category failed: %v", err)
	}

	product, err := f.products.CreateProduct(ctx, owner.ID, &dto.CreateProductRequest{
		Name:       "Cola",
		Quantity:   10,
		Price:      decimal.RequireFromString("2.50"),
		StoreID:    store.ID,
		CategoryID: category.ID,
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	if err := f.stores.DeleteStore(ctx, owner.ID, store.ID); !errors.Is(err, ErrStoreHasChildren) {
		t.Errorf("delete store with products error = %v, want ErrStoreHasChildren", err)
	}
	if err := f.categories.DeleteCategory(ctx, category.ID); !errors.Is(err, ErrCategoryHasProducts) {
		t.Errorf("delete category with products error = %v, want ErrCategoryHasProducts", err)
	}

	// 清掉商品后两者都能删
	if err := f.products.DeleteProduct(ctx, owner.ID, product.ID); err != nil {
		t.Fatalf("delete product failed: %v", err)
	}
	if err := f.stores.DeleteStore(ctx, owner.ID, store.ID); err != nil {
		t.Errorf("delete empty store failed: %v", err)
	}
	if err := f.categories.DeleteCategory(ctx, category.ID); err != nil {
		t.Errorf("delete empty category failed: %v", err)
	}
}

func TestUserService_DeleteBlockedByStores(t *testing.T) {
	f := newSvcFixture(t)
	ctx := context.Background()

	owner := f.createUser(t, "owner@x.com")
	store, err := f.stores.CreateStore(ctx, owner.ID, &dto.CreateStoreRequest{Name: "Main"})
	if err != nil {
		t.Fatalf("create store failed: %v", err)
	}

	if err := f.userSvc.DeleteUser(ctx, owner.ID); !errors.Is(err, ErrUserHasChildren) {
		t.Errorf("delete user with store error = %v, want ErrUserHasChildren", err)
	}

	if err := f.stores.DeleteStore(ctx, owner.ID, store.ID); err != nil {
		t.Fatalf("delete store failed: %v", err)
	}
	if err := f.userSvc.DeleteUser(ctx, owner.ID); err != nil {
		t.Errorf("delete childless user failed: %v", err)
	}
}

func TestProductService_CreateRequiresOwnedStore(t *testing.T) {
	f := newSvcFixture(t)
	ctx := context.Background()

	owner := f.createUser(t, "owner@x.com")
	other := f.createUser(t, "other@x.com")

	store, err := f.stores.CreateStore(ctx, owner.ID, &dto.CreateStoreRequest{Name: "Main"})
	if err != nil {
		t.Fatalf("create store failed: %v", err)
	}
	category, err := f.categories.CreateCategory(ctx, &dto.CreateCategoryRequest{Name: "Drinks"})
	if err != nil {
		t.Fatalf("create category failed: %v", err)
	}

	_, err = f.products.CreateProduct(ctx, other.ID, &dto.CreateProductRequest{
		Name:       "Cola",
		Quantity:   1,
		Price:      decimal.RequireFromString("2.50"),
		StoreID:    store.ID,
		CategoryID: category.ID,
	})
	if !errors.Is(err, ErrStoreNotFound) {
		t.Errorf("create product in foreign store error = %v, want ErrStoreNotFound", err)
	}
}
