package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pos_backoffice_v1/internal/api/dto"
	"pos_backoffice_v1/internal/model"
	"pos_backoffice_v1/internal/repository"
	"pos_backoffice_v1/internal/service"
	"pos_backoffice_v1/internal/token"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ==================== 请求构造辅助 ====================

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}); err != nil {
		t.Fatalf("自动建表失败: %v", err)
	}

	tokens := token.NewManager(token.Config{
		Secret:   "test-secret",
		Issuer:   "pos-backoffice",
		Audience: "pos-client",
	})
	authSvc := service.NewAuthService(repository.NewUserRepository(db), tokens)
	authCtl := NewAuthController(authSvc)

	router := gin.New()
	auth := router.Group("/api/auth")
	{
		auth.POST("/login", authCtl.Login)
		auth.POST("/register", authCtl.Register)
		auth.GET("/me", authCtl.Me)
	}
	return router
}

func performRequest(r http.Handler, method, path string, body interface{}, bearer string) *httptest.ResponseRecorder {
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

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.ApiResponse {
	t.Helper()
	var resp dto.ApiResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("响应不是合法 JSON: %v", err)
	}
	return resp
}

// ==================== 单元测试 ====================

func TestAuth_RegisterThenLogin(t *testing.T) {
	router := setupAuthRouter(t)

	w := performRequest(router, "POST", "/api/auth/register", gin.H{
		"name":     "Ann",
		"email":    "ann@x.com",
		"password": "secret-1",
	}, "")
	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)

	w = performRequest(router, "POST", "/api/auth/login", gin.H{
		"email":    "ann@x.com",
		"password": "secret-1",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)
	resp = decodeResponse(t, w)
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	assert.Equal(t, "ann@x.com", data["email"])
}

func TestAuth_LoginWrongPassword(t *testing.T) {
	router := setupAuthRouter(t)

	performRequest(router, "POST", "/api/auth/register", gin.H{
		"name":     "Ann",
		"email":    "ann@x.com",
		"password": "secret-1",
	}, "")

	tests := []struct {
		name string
		body gin.H
	}{
		{"密码错误", gin.H{"email": "ann@x.com", "password": "wrong-pass"}},
		{"查无此人", gin.H{"email": "nobody@x.com", "password": "secret-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(router, "POST", "/api/auth/login", tt.body, "")
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			resp := decodeResponse(t, w)
			assert.False(t, resp.Success)
			// 两种失败对外口径一致
			assert.Equal(t, "invalid email or password", resp.Message)
		})
	}
}

func TestAuth_RegisterValidation(t *testing.T) {
	router := setupAuthRouter(t)

	tests := []struct {
		name string
		body gin.H
	}{
		{"空请求体", nil},
		{"邮箱格式错误", gin.H{"name": "Ann", "email": "not-an-email", "password": "secret-1"}},
		{"密码过短", gin.H{"name": "Ann", "email": "ann@x.com", "password": "short"}},
		{"缺少名字", gin.H{"email": "ann@x.com", "password": "secret-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body interface{}
			if tt.body != nil {
				body = tt.body
			}
			w := performRequest(router, "POST", "/api/auth/register", body, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestAuth_RegisterDuplicateEmail(t *testing.T) {
	router := setupAuthRouter(t)

	body := gin.H{"name": "Ann", "email": "ann@x.com", "password": "secret-1"}
	w := performRequest(router, "POST", "/api/auth/register", body, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(router, "POST", "/api/auth/register", body, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "email already exists", resp.Message)
}

func TestAuth_Me(t *testing.T) {
	router := setupAuthRouter(t)

	w := performRequest(router, "POST", "/api/auth/register", gin.H{
		"name":     "Ann",
		"email":    "ann@x.com",
		"password": "secret-1",
	}, "")
	resp := decodeResponse(t, w)
	tokenStr := resp.Data.(map[string]interface{})["token"].(string)

	w = performRequest(router, "GET", "/api/auth/me", nil, tokenStr)
	assert.Equal(t, http.StatusOK, w.Code)
	resp = decodeResponse(t, w)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "ann@x.com", data["email"])
	assert.Nil(t, data["password"])
}

func TestAuth_MeUnauthorized(t *testing.T) {
	router := setupAuthRouter(t)

	tests := []struct {
		name   string
		bearer string
	}{
		{"无令牌", ""},
		{"伪造令牌", "garbage.token.here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(router, "GET", "/api/auth/me", nil, tt.bearer)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
