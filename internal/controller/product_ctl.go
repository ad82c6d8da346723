package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pos_backoffice_v1/internal/api/dto"
	"pos_backoffice_v1/internal/middleware"
	"pos_backoffice_v1/internal/repository"
	"pos_backoffice_v1/internal/service"
)

type ProductController struct {
	productSvc *service.ProductService
}

func NewProductController(productSvc *service.ProductService) *ProductController {
	return &ProductController{
		productSvc: productSvc,
	}
}

// CreateProduct 创建商品
// @Summary 创建商品
// @Description 门店必须归属当前用户，分类必须存在
// @Tags Product (商品管理)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateProductRequest true "商品参数"
// @Success 201 {object} dto.ApiResponse{data=dto.ProductInfo} "创建成功"
// @Failure 400 {object} dto.ApiResponse "参数错误"
// @Failure 404 {object} dto.ApiResponse "门店或分类不存在"
// @Router /api/products [post]
func (c *ProductController) CreateProduct(ctx *gin.Context) {
	var req dto.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithErrors("Validation failed", err.Error()))
		return
	}

	resp, err := c.productSvc.CreateProduct(ctx.Request.Context(), middleware.GetUserID(ctx), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.OK("Product created", resp))
}

// GetProduct 商品详情
// @Summary 商品详情
// @Tags Product (商品管理)
// @Produce json
// @Security BearerAuth
// @Param id path string true "商品ID"
// @Success 200 {object} dto.ApiResponse{data=dto.ProductInfo} "商品详情"
// @Failure 404 {object} dto.ApiResponse "商品不存在"
// @Router /api/products/{id} [get]
func (c *ProductController) GetProduct(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.productSvc.GetProduct(ctx.Request.Context(), middleware.GetUserID(ctx), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("OK", resp))
}

// ListProducts 商品列表
// @Summary 商品列表
// @Description 当前用户的商品，支持门店/分类/关键词过滤
// @Tags Product (商品管理)
// @Produce json
// @Security BearerAuth
// @Param store_id query string false "门店ID"
// @Param category_id query string false "分类ID"
// @Param keyword query string false "名称关键词"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} dto.ApiResponse{data=dto.ListResponse} "商品列表"
// @Router /api/products [get]
func (c *ProductController) ListProducts(ctx *gin.Context) {
	filter := repository.ProductFilter{
		Keyword:  ctx.Query("keyword"),
		Page:     queryInt(ctx, "page"),
		PageSize: queryInt(ctx, "page_size"),
	}
	if raw := ctx.Query("store_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid store_id"))
			return
		}
		filter.StoreID = id
	}
	if raw := ctx.Query("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid category_id"))
			return
		}
		filter.CategoryID = id
	}

	resp, err := c.productSvc.ListProducts(ctx.Request.Context(), middleware.GetUserID(ctx), filter)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("OK", resp))
}

// UpdateProduct 更新商品
// @Summary 更新商品
// @Tags Product (商品管理)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "商品ID"
// @Param request body dto.UpdateProductRequest true "更新参数"
// @Success 200 {object} dto.ApiResponse{data=dto.ProductInfo} "更新成功"
// @Failure 404 {object} dto.ApiResponse "商品不存在"
// @Router /api/products/{id} [put]
func (c *ProductController) UpdateProduct(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithErrors("Validation failed", err.Error()))
		return
	}

	resp, err := c.productSvc.UpdateProduct(ctx.Request.Context(), middleware.GetUserID(ctx), id, &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("Product updated", resp))
}

// DeleteProduct 删除商品
// @Summary 删除商品
// @Description 商品还有销售/支出流水时拒绝删除
// @Tags Product (商品管理)
// @Produce json
// @Security BearerAuth
// @Param id path string true "商品ID"
// @Success 200 {object} dto.ApiResponse "删除成功"
// @Failure 404 {object} dto.ApiResponse "商品不存在"
// @Failure 409 {object} dto.ApiResponse "仍有流水引用"
// @Router /api/products/{id} [delete]
func (c *ProductController) DeleteProduct(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.productSvc.DeleteProduct(ctx.Request.Context(), middleware.GetUserID(ctx), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("Product deleted", nil))
}

// queryInt 查询参数转 int，解析失败按 0 处理（仓库层有默认值兜底）
func queryInt(ctx *gin.Context, name string) int {
	n, _ := strconv.Atoi(ctx.Query(name))
	return n
}
