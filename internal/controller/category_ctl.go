package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pos_backoffice_v1/internal/api/dto"
	"pos_backoffice_v1/internal/service"
)

type CategoryController struct {
	categorySvc *service.CategoryService
}

func NewCategoryController(categorySvc *service.CategoryService) *CategoryController {
	return &CategoryController{
		categorySvc: categorySvc,
	}
}

// CreateCategory 创建分类
// @Summary 创建商品分类
// @Tags Category (商品分类)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCategoryRequest true "分类参数"
// @Success 201 {object} dto.ApiResponse{data=dto.CategoryInfo} "创建成功"
// @Failure 400 {object} dto.ApiResponse "参数错误"
// @Router /api/categories [post]
func (c *CategoryController) CreateCategory(ctx *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithErrors("Validation failed", err.Error()))
		return
	}

	resp, err := c.categorySvc.CreateCategory(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.OK("Category created", resp))
}

// GetCategory 分类详情
// @Summary 分类详情
// @Tags Category (商品分类)
// @Produce json
// @Security BearerAuth
// @Param id path string true "分类ID"
// @Success 200 {object} dto.ApiResponse{data=dto.CategoryInfo} "分类详情"
// @Failure 404 {object} dto.ApiResponse "分类不存在"
// @Router /api/categories/{id} [get]
func (c *CategoryController) GetCategory(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.categorySvc.GetCategory(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("OK", resp))
}

// ListCategories 分类列表
// @Summary 分类列表
// @Tags Category (商品分类)
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ApiResponse{data=[]dto.CategoryInfo} "分类列表"
// @Router /api/categories [get]
func (c *CategoryController) ListCategories(ctx *gin.Context) {
	resp, err := c.categorySvc.ListCategories(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("OK", resp))
}

// UpdateCategory 更新分类
// @Summary 更新分类
// @Tags Category (商品分类)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "分类ID"
// @Param request body dto.UpdateCategoryRequest true "更新参数"
// @Success 200 {object} dto.ApiResponse{data=dto.CategoryInfo} "更新成功"
// @Failure 404 {object} dto.ApiResponse "分类不存在"
// @Router /api/categories/{id} [put]
func (c *CategoryController) UpdateCategory(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithErrors("Validation failed", err.Error()))
		return
	}

	resp, err := c.categorySvc.UpdateCategory(ctx.Request.Context(), id, &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("Category updated", resp))
}

// DeleteCategory 删除分类
// @Summary 删除分类
// @Description 分类下还有商品时拒绝删除
// @Tags Category (商品分类)
// @Produce json
// @Security BearerAuth
// @Param id path string true "分类ID"
// @Success 200 {object} dto.ApiResponse "删除成功"
// @Failure 404 {object} dto.ApiResponse "分类不存在"
// @Failure 409 {object} dto.ApiResponse "分类下仍有商品"
// @Router /api/categories/{id} [delete]
func (c *CategoryController) DeleteCategory(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.categorySvc.DeleteCategory(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("Category deleted", nil))
}
