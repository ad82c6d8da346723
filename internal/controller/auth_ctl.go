package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pos_backoffice_v1/internal/api/dto"
	"pos_backoffice_v1/internal/middleware"
	"pos_backoffice_v1/internal/service"
	"pos_backoffice_v1/internal/token"
)

type AuthController struct {
	authSvc *service.AuthService
}

func NewAuthController(authSvc *service.AuthService) *AuthController {
	return &AuthController{
		authSvc: authSvc,
	}
}

// Login 登录
// @Summary 用户登录
// @Description 邮箱 + 密码登录，成功返回 JWT 令牌
// @Tags Auth (认证)
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "登录参数"
// @Success 200 {object} dto.ApiResponse{data=dto.AuthResponse} "登录成功"
// @Failure 400 {object} dto.ApiResponse "参数错误"
// @Failure 401 {object} dto.ApiResponse "邮箱或密码不对"
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithErrors("Validation failed", err.Error()))
		return
	}

	resp, err := c.authSvc.Login(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("Login successful", resp))
}

// Register 注册
// @Summary 注册新用户
// @Description 注册成功即视为登录，直接带回令牌
// @Tags Auth (认证)
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "注册参数"
// @Success 201 {object} dto.ApiResponse{data=dto.AuthResponse} "注册成功"
// @Failure 400 {object} dto.ApiResponse "参数错误或邮箱已存在"
// @Router /api/auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithErrors("Validation failed", err.Error()))
		return
	}

	resp, err := c.authSvc.Register(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.OK("Registration successful", resp))
}

// Me 当前用户
// @Summary 当前登录用户
// @Description 凭 Bearer 令牌取当前用户资料，用户状态以库里为准
// @Tags Auth (认证)
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ApiResponse{data=dto.UserInfo} "当前用户"
// @Failure 401 {object} dto.ApiResponse "令牌无效或过期"
// @Failure 404 {object} dto.ApiResponse "令牌有效但用户已不存在"
// @Router /api/auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	raw, ok := middleware.BearerToken(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Fail(token.ErrInvalidToken.Error()))
		return
	}

	resp, err := c.authSvc.Identify(ctx.Request.Context(), raw)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("OK", resp))
}
