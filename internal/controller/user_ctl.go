package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pos_backoffice_v1/internal/api/dto"
	"pos_backoffice_v1/internal/service"
)

type UserController struct {
	userSvc *service.UserService
}

func NewUserController(userSvc *service.UserService) *UserController {
	return &UserController{
		userSvc: userSvc,
	}
}

// CreateUser 创建用户
// @Summary 创建用户
// @Description 管理端建用户，不签发令牌
// @Tags User (用户管理)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateUserRequest true "用户参数"
// @Success 201 {object} dto.ApiResponse{data=dto.UserInfo} "创建成功"
// @Failure 400 {object} dto.ApiResponse "参数错误或邮箱已存在"
// @Router /api/users [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithErrors("Validation failed", err.Error()))
		return
	}

	resp, err := c.userSvc.CreateUser(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.OK("User created", resp))
}

// GetUser 用户详情
// @Summary 用户详情
// @Tags User (用户管理)
// @Produce json
// @Security BearerAuth
// @Param id path string true "用户ID"
// @Success 200 {object} dto.ApiResponse{data=dto.UserInfo} "用户详情"
// @Failure 404 {object} dto.ApiResponse "用户不存在"
// @Router /api/users/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.userSvc.GetUserByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("OK", resp))
}

// ListUsers 用户列表
// @Summary 用户列表
// @Tags User (用户管理)
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ApiResponse{data=[]dto.UserInfo} "用户列表"
// @Router /api/users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	resp, err := c.userSvc.GetAllUsers(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("OK", resp))
}

// UpdateUser 更新用户
// @Summary 更新用户资料
// @Tags User (用户管理)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "用户ID"
// @Param request body dto.UpdateUserRequest true "更新参数"
// @Success 200 {object} dto.ApiResponse{data=dto.UserInfo} "更新成功"
// @Failure 404 {object} dto.ApiResponse "用户不存在"
// @Router /api/users/{id} [put]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithErrors("Validation failed", err.Error()))
		return
	}

	resp, err := c.userSvc.UpdateUser(ctx.Request.Context(), id, &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("User updated", resp))
}

// DeleteUser 删除用户
// @Summary 删除用户
// @Description 名下还有门店/商品/客户/销售时拒绝删除
// @Tags User (用户管理)
// @Produce json
// @Security BearerAuth
// @Param id path string true "用户ID"
// @Success 200 {object} dto.ApiResponse "删除成功"
// @Failure 404 {object} dto.ApiResponse "用户不存在"
// @Failure 409 {object} dto.ApiResponse "仍有子表引用"
// @Router /api/users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.userSvc.DeleteUser(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("User deleted", nil))
}
