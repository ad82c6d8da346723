package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"pos_backoffice_v1/internal/controller"
	"pos_backoffice_v1/internal/model"
	"pos_backoffice_v1/internal/repository"
	"pos_backoffice_v1/internal/router"
	"pos_backoffice_v1/internal/service"
	"pos_backoffice_v1/internal/task"
	"pos_backoffice_v1/internal/token"
	"pos_backoffice_v1/pkg/database"
)

// @title POS Backoffice API
// @version 1.0
// @description 门店后台管理系统：认证、门店、商品、客户、流水
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// .env 不存在也不报错，容器环境直接用环境变量
	_ = godotenv.Load()

	// 1. 初始化数据库
	db := initDatabase()

	// 2. 初始化依赖
	deps := initDependencies(db)

	// 3. 启动定时任务
	initTasks(deps)

	// 4. 初始化路由
	r := gin.Default()
	router.InitRoutes(r, deps.Tokens, deps.Controllers)

	// 5. 启动服务
	startServer(r)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Tokens      *token.Manager
	Repos       *Repositories
	Services    *Services
	Controllers *router.Controllers
}

// Repositories 仓库集合
type Repositories struct {
	User     repository.UserRepository
	Store    repository.StoreRepository
	Category repository.CategoryRepository
	Product  repository.ProductRepository
	Customer repository.CustomerRepository
	Sale     repository.SaleRepository
	Expense  repository.ExpenseRepository
}

// Services 服务集合
type Services struct {
	Auth     *service.AuthService
	User     *service.UserService
	Store    *service.StoreService
	Category *service.CategoryService
	Product  *service.ProductService
	Customer *service.CustomerService
	Sale     *service.SaleService
	Expense  *service.ExpenseService
	Storage  *service.StorageService
}

// ==================== 初始化函数 ====================

// initDatabase 初始化数据库
func initDatabase() *gorm.DB {
	dsn := getEnv("DATABASE_DSN", fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_NAME", "pos_backoffice"),
		getEnv("DB_PORT", "5432"),
	))

	return database.InitDB(dsn,
		&model.User{}, &model.Store{}, &model.ProductCategory{},
		&model.Product{}, &model.Customer{}, &model.Sale{}, &model.Expense{},
	)
}

// initTokenManager 初始化令牌签发器
// 密钥没配置直接拒绝启动，不给默认值
func initTokenManager() *token.Manager {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET 未配置，拒绝启动")
	}

	days, _ := strconv.Atoi(getEnv("JWT_EXPIRATION_DAYS", ""))
	return token.NewManager(token.Config{
		Secret:         secret,
		Issuer:         getEnv("JWT_ISSUER", "pos-backoffice"),
		Audience:       getEnv("JWT_AUDIENCE", "pos-client"),
		ExpirationDays: days,
	})
}

// initDependencies 初始化所有依赖
func initDependencies(db *gorm.DB) *Dependencies {
	tokens := initTokenManager()

	// -------- Repo 层 --------
	repos := &Repositories{
		User:     repository.NewUserRepository(db),
		Store:    repository.NewStoreRepository(db),
		Category: repository.NewCategoryRepository(db),
		Product:  repository.NewProductRepository(db),
		Customer: repository.NewCustomerRepository(db),
		Sale:     repository.NewSaleRepository(db),
		Expense:  repository.NewExpenseRepository(db),
	}

	// -------- 业务服务 --------
	services := &Services{
		Auth:     service.NewAuthService(repos.User, tokens),
		User:     service.NewUserService(repos.User, repos.Store, repos.Product, repos.Customer, repos.Sale),
		Store:    service.NewStoreService(repos.Store, repos.Product, repos.Customer, repos.Sale, repos.Expense),
		Category: service.NewCategoryService(repos.Category, repos.Product),
		Product:  service.NewProductService(repos.Product, repos.Store, repos.Category, repos.Sale, repos.Expense),
		Customer: service.NewCustomerService(repos.Customer, repos.Store, repos.Sale, repos.Expense),
		Sale:     service.NewSaleService(repos.Sale, repos.Store, repos.Customer, repos.Product),
		Expense:  service.NewExpenseService(repos.Expense, repos.Store, repos.Customer, repos.Product),
		Storage:  initStorageService(),
	}

	// -------- Controller 层 --------
	controllers := &router.Controllers{
		Auth:     controller.NewAuthController(services.Auth),
		User:     controller.NewUserController(services.User),
		Store:    controller.NewStoreController(services.Store),
		Category: controller.NewCategoryController(services.Category),
		Product:  controller.NewProductController(services.Product),
		Customer: controller.NewCustomerController(services.Customer),
		Sale:     controller.NewSaleController(services.Sale),
		Expense:  controller.NewExpenseController(services.Expense),
	}
	if services.Storage != nil {
		controllers.Upload = controller.NewUploadController(services.Storage)
	}

	return &Dependencies{
		DB:          db,
		Tokens:      tokens,
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
	}
}

// initStorageService 初始化存储服务
// 没配置 bucket 就不启用上传功能，其余接口照常工作
func initStorageService() *service.StorageService {
	bucket := getEnv("AWS_BUCKET", "")
	if bucket == "" {
		log.Println("对象存储未配置，上传功能关闭")
		return nil
	}

	storageSvc, err := service.NewStorageService(&service.StorageConfig{
		Bucket:    bucket,
		Region:    getEnv("AWS_REGION", "us-east-1"),
		AccessKey: getEnv("AWS_ACCESS_KEY_ID", ""),
		SecretKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		CDNDomain: getEnv("AWS_CDN_DOMAIN", ""),
		BasePath:  getEnv("STORAGE_BASE_PATH", "pos-backoffice"),
	})
	if err != nil {
		log.Printf("警告: 存储服务初始化失败: %v", err)
		return nil
	}
	return storageSvc
}

// ==================== 定时任务 ====================

// initTasks 初始化定时任务
func initTasks(deps *Dependencies) {
	summaryTask := task.NewDailySummaryTask(deps.Repos.Sale, deps.Repos.Expense)
	summaryTask.Start()

	log.Println("定时任务已启动")
}

// ==================== 服务启动 ====================

// startServer 启动服务
func startServer(r *gin.Engine) {
	port := getEnv("SERVER_PORT", "8080")

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// 异步启动服务
	go func() {
		log.Printf("服务启动在 :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("正在关闭服务...")

	// 优雅关闭，最多等待 30 秒
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务强制关闭: %v", err)
	}

	log.Println("服务已退出")
}

// ==================== 工具函数 ====================

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
