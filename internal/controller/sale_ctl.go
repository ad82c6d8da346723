package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pos_backoffice_v1/internal/api/dto"
	"pos_backoffice_v1/internal/middleware"
	"pos_backoffice_v1/internal/model"
	"pos_backoffice_v1/internal/repository"
	"pos_backoffice_v1/internal/service"
)

type SaleController struct {
	saleSvc *service.SaleService
}

func NewSaleController(saleSvc *service.SaleService) *SaleController {
	return &SaleController{
		saleSvc: saleSvc,
	}
}

// CreateSale 记一笔销售
// @Summary 创建销售流水
// @Description 门店/客户/商品都必须归属当前用户
// @Tags Sale (销售流水)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSaleRequest true "销售参数"
// @Success 201 {object} dto.ApiResponse{data=dto.SaleInfo} "创建成功"
// @Failure 400 {object} dto.ApiResponse "参数错误"
// @Failure 404 {object} dto.ApiResponse "门店/客户/商品不存在"
// @Router /api/sales [post]
func (c *SaleController) CreateSale(ctx *gin.Context) {
	var req dto.CreateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithErrors("Validation failed", err.Error()))
		return
	}

	resp, err := c.saleSvc.CreateSale(ctx.Request.Context(), middleware.GetUserID(ctx), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.OK("Sale created", resp))
}

// GetSale 销售详情
// @Summary 销售详情
// @Tags Sale (销售流水)
// @Produce json
// @Security BearerAuth
// @Param id path int true "销售ID"
// @Success 200 {object} dto.ApiResponse{data=dto.SaleInfo} "销售详情"
// @Failure 404 {object} dto.ApiResponse "记录不存在"
// @Router /api/sales/{id} [get]
func (c *SaleController) GetSale(ctx *gin.Context) {
	id, ok := parseInt64Param(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.saleSvc.GetSale(ctx.Request.Context(), middleware.GetUserID(ctx), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("OK", resp))
}

// ListSales 销售列表
// @Summary 销售列表
// @Description 当前用户的销售流水，支持门店/客户/状态过滤
// @Tags Sale (销售流水)
// @Produce json
// @Security BearerAuth
// @Param store_id query string false "门店ID"
// @Param customer_id query string false "客户ID"
// @Param status query string false "状态" Enums(pending, completed, cancelled)
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} dto.ApiResponse{data=dto.ListResponse} "销售列表"
// @Router /api/sales [get]
func (c *SaleController) ListSales(ctx *gin.Context) {
	filter := repository.SaleFilter{
		Status:   model.SaleStatus(ctx.Query("status")),
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
	if raw := ctx.Query("customer_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid customer_id"))
			return
		}
		filter.CustomerID = id
	}

	resp, err := c.saleSvc.ListSales(ctx.Request.Context(), middleware.GetUserID(ctx), filter)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("OK", resp))
}

// UpdateSaleStatus 状态流转
// @Summary 更新销售状态
// @Tags Sale (销售流水)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "销售ID"
// @Param request body dto.UpdateSaleStatusRequest true "状态参数"
// @Success 200 {object} dto.ApiResponse{data=dto.SaleInfo} "更新成功"
// @Failure 404 {object} dto.ApiResponse "记录不存在"
// @Router /api/sales/{id}/status [put]
func (c *SaleController) UpdateSaleStatus(ctx *gin.Context) {
	id, ok := parseInt64Param(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateSaleStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithErrors("Validation failed", err.Error()))
		return
	}

	resp, err := c.saleSvc.UpdateSaleStatus(ctx.Request.Context(), middleware.GetUserID(ctx), id, &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("Sale updated", resp))
}

// DeleteSale 删除销售流水
// @Summary 删除销售流水
// @Tags Sale (销售流水)
// @Produce json
// @Security BearerAuth
// @Param id path int true "销售ID"
// @Success 200 {object} dto.ApiResponse "删除成功"
// @Failure 404 {object} dto.ApiResponse "记录不存在"
// @Router /api/sales/{id} [delete]
func (c *SaleController) DeleteSale(ctx *gin.Context) {
	id, ok := parseInt64Param(ctx, "id")
	if !ok {
		return
	}

	if err := c.saleSvc.DeleteSale(ctx.Request.Context(), middleware.GetUserID(ctx), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("Sale deleted", nil))
}

// parseInt64Param 解析路径里的整型自增 ID
func parseInt64Param(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid "+name))
		return 0, false
	}
	return id, true
}
