package service

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pos_backoffice_v1/internal/api/dto"
	"pos_backoffice_v1/internal/model"
	"pos_backoffice_v1/internal/repository"
	"pos_backoffice_v1/internal/token"
)

// ==================== 测试辅助 ====================

func setupSvcTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	if err := db.AutoMigrate(
		&model.User{}, &model.Store{}, &model.ProductCategory{},
		&model.Product{}, &model.Customer{}, &model.Sale{}, &model.Expense{},
	); err != nil {
		t.Fatalf("自动建表失败: %v", err)
	}
	return db
}

func newTestAuthService(t *testing.T) (*AuthService, repository.UserRepository) {
	t.Helper()
	db := setupSvcTestDB(t)
	userRepo := repository.NewUserRepository(db)
	tokens := token.NewManager(token.Config{
		Secret:   "test-secret",
		Issuer:   "pos-backoffice",
		Audience: "pos-client",
	})
	return NewAuthService(userRepo, tokens), userRepo
}

func registerTestUser(t *testing.T, svc *AuthService, email string) *dto.AuthResponse {
	t.Helper()
	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Ann",
		Email:    email,
		Password: "secret-1",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	return resp
}

// ==================== 单元测试 ====================

func TestAuthService_RegisterLoginIdentify(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	reg := registerTestUser(t, svc, "ann@x.com")
	if reg.Token == "" {
		t.Fatal("register should issue a token")
	}
	if reg.Email != "ann@x.com" {
		t.Errorf("register email = %q", reg.Email)
	}

	login, err := svc.Login(ctx, &dto.LoginRequest{Email: "ann@x.com", Password: "secret-1"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if login.ID != reg.ID {
		t.Errorf("login ID = %v, want %v", login.ID, reg.ID)
	}

	me, err := svc.Identify(ctx, login.Token)
	if err != nil {
		t.Fatalf("identify failed: %v", err)
	}
	if me.ID != reg.ID || me.Email != "ann@x.com" {
		t.Errorf("identify = %+v, want registered user", me)
	}
}

func TestAuthService_LoginEmailCaseInsensitive(t *testing.T) {
	svc, _ := newTestAuthService(t)

	registerTestUser(t, svc, "Ann@X.Com")

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "ann@x.com", Password: "secret-1"})
	if err != nil {
		t.Fatalf("login with lowercased email failed: %v", err)
	}
}

func TestAuthService_LoginFailuresIndistinguishable(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	registerTestUser(t, svc, "ann@x.com")

	// 密码错 和 查无此人 必须是同一个错误值，不给探测邮箱的机会
	_, errWrongPwd := svc.Login(ctx, &dto.LoginRequest{Email: "ann@x.com", Password: "wrong"})
	_, errNoUser := svc.Login(ctx, &dto.LoginRequest{Email: "nobody@x.com", Password: "secret-1"})

	if !errors.Is(errWrongPwd, ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", errWrongPwd)
	}
	if !errors.Is(errNoUser, ErrInvalidCredentials) {
		t.Errorf("unknown email error = %v, want ErrInvalidCredentials", errNoUser)
	}
	if errWrongPwd != errNoUser {
		t.Error("both failure modes must yield the identical error value")
	}
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	registerTestUser(t, svc, "ann@x.com")

	// 大小写不同也算重复
	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Name:     "Ann2",
		Email:    "ANN@x.com",
		Password: "secret-2",
	})
	if !errors.Is(err, ErrEmailExists) {
		t.Errorf("duplicate register error = %v, want ErrEmailExists", err)
	}
}

func TestAuthService_RegisterStoresHashNotPlaintext(t *testing.T) {
	svc, userRepo := newTestAuthService(t)
	ctx := context.Background()

	registerTestUser(t, svc, "ann@x.com")

	user, err := userRepo.GetByEmail(ctx, "ann@x.com")
	if err != nil || user == nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if user.Password == "secret-1" {
		t.Error("password must not be stored in plaintext")
	}
	if user.Password == "" {
		t.Error("stored hash should not be empty")
	}
}

func TestAuthService_IdentifyRejectsGarbageToken(t *testing.T) {
	svc, _ := newTestAuthService(t)

	for _, raw := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := svc.Identify(context.Background(), raw)
		if !errors.Is(err, token.ErrInvalidToken) {
			t.Errorf("Identify(%q) error = %v, want ErrInvalidToken", raw, err)
		}
	}
}

func TestAuthService_IdentifyStaleUser(t *testing.T) {
	svc, userRepo := newTestAuthService(t)
	ctx := context.Background()

	reg := registerTestUser(t, svc, "ann@x.com")

	// 令牌签发后用户被删：令牌本身仍校验通过，但身份已失效
	if err := userRepo.Delete(ctx, reg.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	_, err := svc.Identify(ctx, reg.Token)
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("identify after delete error = %v, want ErrUserNotFound", err)
	}
}
