package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pos_backoffice_v1/internal/api/dto"
	"pos_backoffice_v1/internal/middleware"
	"pos_backoffice_v1/internal/service"
)

type StoreController struct {
	storeSvc *service.StoreService
}

func NewStoreController(storeSvc *service.StoreService) *StoreController {
	return &StoreController{
		storeSvc: storeSvc,
	}
}

// CreateStore 创建门店
// @Summary 创建门店
// @Description 门店归属当前登录用户
// @Tags Store (门店管理)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStoreRequest true "门店参数"
// @Success 201 {object} dto.ApiResponse{data=dto.StoreInfo} "创建成功"
// @Failure 400 {object} dto.ApiResponse "参数错误"
// @Router /api/stores [post]
func (c *StoreController) CreateStore(ctx *gin.Context) {
	var req dto.CreateStoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithErrors("Validation failed", err.Error()))
		return
	}

	resp, err := c.storeSvc.CreateStore(ctx.Request.Context(), middleware.GetUserID(ctx), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.OK("Store created", resp))
}

// GetStore 门店详情
// @Summary 门店详情
// @Description 只能看自己的门店，别人的按不存在处理
// @Tags Store (门店管理)
// @Produce json
// @Security BearerAuth
// @Param id path string true "门店ID"
// @Success 200 {object} dto.ApiResponse{data=dto.StoreInfo} "门店详情"
// @Failure 404 {object} dto.ApiResponse "门店不存在"
// @Router /api/stores/{id} [get]
func (c *StoreController) GetStore(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.storeSvc.GetStore(ctx.Request.Context(), middleware.GetUserID(ctx), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("OK", resp))
}

// ListStores 门店列表
// @Summary 当前用户门店列表
// @Tags Store (门店管理)
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ApiResponse{data=[]dto.StoreInfo} "门店列表"
// @Router /api/stores [get]
func (c *StoreController) ListStores(ctx *gin.Context) {
	resp, err := c.storeSvc.ListStores(ctx.Request.Context(), middleware.GetUserID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("OK", resp))
}

// UpdateStore 更新门店
// @Summary 更新门店
// @Tags Store (门店管理)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "门店ID"
// @Param request body dto.UpdateStoreRequest true "更新参数"
// @Success 200 {object} dto.ApiResponse{data=dto.StoreInfo} "更新成功"
// @Failure 404 {object} dto.ApiResponse "门店不存在"
// @Router /api/stores/{id} [put]
func (c *StoreController) UpdateStore(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateStoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithErrors("Validation failed", err.Error()))
		return
	}

	resp, err := c.storeSvc.UpdateStore(ctx.Request.Context(), middleware.GetUserID(ctx), id, &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("Store updated", resp))
}

// DeleteStore 删除门店
// @Summary 删除门店
// @Description 门店下还有商品/客户/流水时拒绝删除
// @Tags Store (门店管理)
// @Produce json
// @Security BearerAuth
// @Param id path string true "门店ID"
// @Success 200 {object} dto.ApiResponse "删除成功"
// @Failure 404 {object} dto.ApiResponse "门店不存在"
// @Failure 409 {object} dto.ApiResponse "仍有子表引用"
// @Router /api/stores/{id} [delete]
func (c *StoreController) DeleteStore(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.storeSvc.DeleteStore(ctx.Request.Context(), middleware.GetUserID(ctx), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("Store deleted", nil))
}
