package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pos_backoffice_v1/internal/controller"
	"pos_backoffice_v1/internal/middleware"
	"pos_backoffice_v1/internal/token"

	_ "pos_backoffice_v1/docs"
)

// Controllers 路由需要的全部控制器
type Controllers struct {
	Auth     *controller.AuthController
	User     *controller.UserController
	Store    *controller.StoreController
	Category *controller.CategoryController
	Product  *controller.ProductController
	Customer *controller.CustomerController
	Sale     *controller.SaleController
	Expense  *controller.ExpenseController
	Upload   *controller.UploadController
}

// InitRoutes 注册所有路由
func InitRoutes(r *gin.Engine, tokens *token.Manager, ctls *Controllers) {
	r.Use(cors.Default())

	// Swagger 文档路由
	// 访问 http://localhost:8080/swagger/index.html 即可查看
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		// auth 认证组，登录注册不挂中间件
		// /me 在处理器里自己解令牌，令牌有效但用户已删也能给出 404
		auth := api.Group("/auth")
		{
			auth.POST("/login", ctls.Auth.Login)
			auth.POST("/register", ctls.Auth.Register)
			auth.GET("/me", ctls.Auth.Me)
		}

		// 其余全部要求有效令牌
		authed := api.Group("")
		authed.Use(middleware.JWTAuth(tokens))
		{
			users := authed.Group("/users")
			{
				users.POST("", ctls.User.CreateUser)
				users.GET("", ctls.User.ListUsers)
				users.GET("/:id", ctls.User.GetUser)
				users.PUT("/:id", ctls.User.UpdateUser)
				users.DELETE("/:id", ctls.User.DeleteUser)
			}

			stores := authed.Group("/stores")
			{
				stores.POST("", ctls.Store.CreateStore)
				stores.GET("", ctls.Store.ListStores)
				stores.GET("/:id", ctls.Store.GetStore)
				stores.PUT("/:id", ctls.Store.UpdateStore)
				stores.DELETE("/:id", ctls.Store.DeleteStore)
			}

			categories := authed.Group("/categories")
			{
				categories.POST("", ctls.Category.CreateCategory)
				categories.GET("", ctls.Category.ListCategories)
				categories.GET("/:id", ctls.Category.GetCategory)
				categories.PUT("/:id", ctls.Category.UpdateCategory)
				categories.DELETE("/:id", ctls.Category.DeleteCategory)
			}

			products := authed.Group("/products")
			{
				products.POST("", ctls.Product.CreateProduct)
				products.GET("", ctls.Product.ListProducts)
				products.GET("/:id", ctls.Product.GetProduct)
				products.PUT("/:id", ctls.Product.UpdateProduct)
				products.DELETE("/:id", ctls.Product.DeleteProduct)
			}

			customers := authed.Group("/customers")
			{
				customers.POST("", ctls.Customer.CreateCustomer)
				customers.GET("", ctls.Customer.ListCustomers)
				customers.GET("/:id", ctls.Customer.GetCustomer)
				customers.PUT("/:id", ctls.Customer.UpdateCustomer)
				customers.DELETE("/:id", ctls.Customer.DeleteCustomer)
			}

			sales := authed.Group("/sales")
			{
				sales.POST("", ctls.Sale.CreateSale)
				sales.GET("", ctls.Sale.ListSales)
				sales.GET("/:id", ctls.Sale.GetSale)
				sales.PUT("/:id/status", ctls.Sale.UpdateSaleStatus)
				sales.DELETE("/:id", ctls.Sale.DeleteSale)
			}

			expenses := authed.Group("/expenses")
			{
				expenses.POST("", ctls.Expense.CreateExpense)
				expenses.GET("", ctls.Expense.ListExpenses)
				expenses.GET("/:id", ctls.Expense.GetExpense)
				expenses.DELETE("/:id", ctls.Expense.DeleteExpense)
			}

			// 对象存储没配置时不注册上传路由
			if ctls.Upload != nil {
				authed.POST("/uploads/image", ctls.Upload.UploadImage)
			}
		}
	}
}
