package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pos_backoffice_v1/internal/api/dto"
	"pos_backoffice_v1/internal/controller"
	"pos_backoffice_v1/internal/model"
	"pos_backoffice_v1/internal/repository"
	"pos_backoffice_v1/internal/router"
	"pos_backoffice_v1/internal/service"
	"pos_backoffice_v1/internal/token"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ==================== 测试环境搭建 ====================

// setupApp 组装完整应用：sqlite 内存库 + 全部路由
func setupApp(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "连接测试数据库失败")

	err = db.AutoMigrate(
		&model.User{}, &model.Store{}, &model.ProductCategory{},
		&model.Product{}, &model.Customer{}, &model.Sale{}, &model.Expense{},
	)
	require.NoError(t, err, "自动建表失败")

	tokens := token.NewManager(token.Config{
		Secret:   "integration-test-secret",
		Issuer:   "pos-backoffice",
		Audience: "pos-client",
	})

	userRepo := repository.NewUserRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)

	ctls := &router.Controllers{
		Auth:     controller.NewAuthController(service.NewAuthService(userRepo, tokens)),
		User:     controller.NewUserController(service.NewUserService(userRepo, storeRepo, productRepo, customerRepo, saleRepo)),
		Store:    controller.NewStoreController(service.NewStoreService(storeRepo, productRepo, customerRepo, saleRepo, expenseRepo)),
		Category: controller.NewCategoryController(service.NewCategoryService(categoryRepo, productRepo)),
		Product:  controller.NewProductController(service.NewProductService(productRepo, storeRepo, categoryRepo, saleRepo, expenseRepo)),
		Customer: controller.NewCustomerController(service.NewCustomerService(customerRepo, storeRepo, saleRepo, expenseRepo)),
		Sale:     controller.NewSaleController(service.NewSaleService(saleRepo, storeRepo, customerRepo, productRepo)),
		Expense:  controller.NewExpenseController(service.NewExpenseService(expenseRepo, storeRepo, customerRepo, productRepo)),
	}

	r := gin.New()
	router.InitRoutes(r, tokens, ctls)
	return r
}

func doJSON(r http.Handler, method, path, bearer string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) dto.ApiResponse {
	t.Helper()
	var resp dto.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "响应不是合法 JSON")
	return resp
}

func dataField(t *testing.T, w *httptest.ResponseRecorder, key string) string {
	t.Helper()
	resp := decode(t, w)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "data 不是对象: %s", w.Body.String())
	v, _ := data[key].(string)
	return v
}

// registerAndLogin 注册并返回令牌
func registerAndLogin(t *testing.T, app *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(app, "POST", "/api/auth/register", "", gin.H{
		"name":     "Tester",
		"email":    email,
		"password": "secret-1",
	})
	require.Equal(t, http.StatusCreated, w.Code, "注册失败: %s", w.Body.String())
	return dataField(t, w, "token")
}

// ==================== 集成测试 ====================

func TestIntegration_AuthFlow(t *testing.T) {
	app := setupApp(t)

	// 未登录访问受保护路由
	w := doJSON(app, "GET", "/api/stores", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	tokenStr := registerAndLogin(t, app, "ann@x.com")

	// /me 返回当前用户
	w = doJSON(app, "GET", "/api/auth/me", tokenStr, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ann@x.com", dataField(t, w, "email"))

	// 重复注册同邮箱
	w = doJSON(app, "POST", "/api/auth/register", "", gin.H{
		"name":     "Tester",
		"email":    "ANN@x.com",
		"password": "secret-2",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 错密码登录
	w = doJSON(app, "POST", "/api/auth/login", "", gin.H{
		"email":    "ann@x.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestIntegration_FullCrudFlow(t *testing.T) {
	app := setupApp(t)
	tokenStr := registerAndLogin(t, app, "owner@x.com")

	// 建门店
	w := doJSON(app, "POST", "/api/stores", tokenStr, gin.H{"name": "Main Store"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	storeID := dataField(t, w, "id")

	// 建分类
	w = doJSON(app, "POST", "/api/categories", tokenStr, gin.H{"name": "Drinks"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	categoryID := dataField(t, w, "id")

	// 建商品
	w = doJSON(app, "POST", "/api/products", tokenStr, gin.H{
		"name":        "Cola",
		"quantity":    50,
		"price":       "2.50",
		"store_id":    storeID,
		"category_id": categoryID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	productID := dataField(t, w, "id")

	// 建客户
	w = doJSON(app, "POST", "/api/customers", tokenStr, gin.H{
		"name":     "Bob",
		"store_id": storeID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	customerID := dataField(t, w, "id")

	// 记一笔销售
	w = doJSON(app, "POST", "/api/sales", tokenStr, gin.H{
		"customer_id": customerID,
		"store_id":    storeID,
		"product_id":  productID,
		"quantity":    2,
		"unit_price":  "2.50",
		"total_price": "5.00",
		"status":      "completed",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// 记一笔支出
	w = doJSON(app, "POST", "/api/expenses", tokenStr, gin.H{
		"customer_id": customerID,
		"store_id":    storeID,
		"product_id":  productID,
		"quantity":    1,
		"unit_price":  "10.00",
		"total_price": "10.00",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// 列表查询
	w = doJSON(app, "GET", "/api/products?store_id="+storeID, tokenStr, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	list := resp.Data.(map[string]interface{})
	assert.EqualValues(t, 1, list["total"])

	w = doJSON(app, "GET", fmt.Sprintf("/api/expenses?store_id=%s", storeID), tokenStr, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// 有流水引用时删除被拒
	for _, tc := range []struct {
		name string
		path string
	}{
		{"删门店", "/api/stores/" + storeID},
		{"删商品", "/api/products/" + productID},
		{"删客户", "/api/customers/" + customerID},
		{"删分类", "/api/categories/" + categoryID},
	} {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(app, "DELETE", tc.path, tokenStr, nil)
			assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
		})
	}
}

func TestIntegration_OwnershipIsolation(t *testing.T) {
	app := setupApp(t)
	ownerToken := registerAndLogin(t, app, "owner@x.com")
	otherToken := registerAndLogin(t, app, "other@x.com")

	w := doJSON(app, "POST", "/api/stores", ownerToken, gin.H{"name": "Main Store"})
	require.Equal(t, http.StatusCreated, w.Code)
	storeID := dataField(t, w, "id")

	// 他人访问按不存在处理
	w = doJSON(app, "GET", "/api/stores/"+storeID, otherToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// 他人的门店列表为空
	w = doJSON(app, "GET", "/api/stores", otherToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Empty(t, resp.Data)
}

func TestIntegration_SaleStatusTransition(t *testing.T) {
	app := setupApp(t)
	tokenStr := registerAndLogin(t, app, "owner@x.com")

	w := doJSON(app, "POST", "/api/stores", tokenStr, gin.H{"name": "Main"})
	storeID := dataField(t, w, "id")
	w = doJSON(app, "POST", "/api/categories", tokenStr, gin.H{"name": "Drinks"})
	categoryID := dataField(t, w, "id")
	w = doJSON(app, "POST", "/api/products", tokenStr, gin.H{
		"name": "Cola", "quantity": 5, "price": "2.50",
		"store_id": storeID, "category_id": categoryID,
	})
	productID := dataField(t, w, "id")
	w = doJSON(app, "POST", "/api/customers", tokenStr, gin.H{"name": "Bob", "store_id": storeID})
	customerID := dataField(t, w, "id")

	w = doJSON(app, "POST", "/api/sales", tokenStr, gin.H{
		"customer_id": customerID, "store_id": storeID, "product_id": productID,
		"quantity": 1, "unit_price": "2.50", "total_price": "2.50", "status": "pending",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp := decode(t, w)
	saleID := resp.Data.(map[string]interface{})["id"].(float64)

	// pending -> completed
	w = doJSON(app, "PUT", fmt.Sprintf("/api/sales/%d/status", int64(saleID)), tokenStr, gin.H{"status": "completed"})
	assert.Equal(t, http.StatusOK, w.Code)
	resp = decode(t, w)
	assert.Equal(t, "completed", resp.Data.(map[string]interface{})["status"])

	// 非法状态被验证层挡下
	w = doJSON(app, "PUT", fmt.Sprintf("/api/sales/%d/status", int64(saleID)), tokenStr, gin.H{"status": "shipped"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
