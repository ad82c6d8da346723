package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pos_backoffice_v1/internal/api/dto"
	"pos_backoffice_v1/internal/middleware"
	"pos_backoffice_v1/internal/repository"
	"pos_backoffice_v1/internal/service"
)

type ExpenseController struct {
	expenseSvc *service.ExpenseService
}

func NewExpenseController(expenseSvc *service.ExpenseService) *ExpenseController {
	return &ExpenseController{
		expenseSvc: expenseSvc,
	}
}

// CreateExpense 记一笔支出
// @Summary 创建支出流水
// @Description 门店/客户/商品都必须归属当前用户
// @Tags Expense (支出流水)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateExpenseRequest true "支出参数"
// @Success 201 {object} dto.ApiResponse{data=dto.ExpenseInfo} "创建成功"
// @Failure 400 {object} dto.ApiResponse "参数错误"
// @Failure 404 {object} dto.ApiResponse "门店/客户/商品不存在"
// @Router /api/expenses [post]
func (c *ExpenseController) CreateExpense(ctx *gin.Context) {
	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithErrors("Validation failed", err.Error()))
		return
	}

	resp, err := c.expenseSvc.CreateExpense(ctx.Request.Context(), middleware.GetUserID(ctx), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.OK("Expense created", resp))
}

// GetExpense 支出详情
// @Summary 支出详情
// @Tags Expense (支出流水)
// @Produce json
// @Security BearerAuth
// @Param id path int true "支出ID"
// @Success 200 {object} dto.ApiResponse{data=dto.ExpenseInfo} "支出详情"
// @Failure 404 {object} dto.ApiResponse "记录不存在"
// @Router /api/expenses/{id} [get]
func (c *ExpenseController) GetExpense(ctx *gin.Context) {
	id, ok := parseInt64Param(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.expenseSvc.GetExpense(ctx.Request.Context(), middleware.GetUserID(ctx), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("OK", resp))
}

// ListExpenses 支出列表
// @Summary 支出列表
// @Description 按门店列支出，门店必须归属当前用户
// @Tags Expense (支出流水)
// @Produce json
// @Security BearerAuth
// @Param store_id query string true "门店ID"
// @Param customer_id query string false "客户ID"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} dto.ApiResponse{data=dto.ListResponse} "支出列表"
// @Failure 404 {object} dto.ApiResponse "门店不存在"
// @Router /api/expenses [get]
func (c *ExpenseController) ListExpenses(ctx *gin.Context) {
	storeID, err := uuid.Parse(ctx.Query("store_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid store_id"))
		return
	}

	filter := repository.ExpenseFilter{
		StoreID:  storeID,
		Page:     queryInt(ctx, "page"),
		PageSize: queryInt(ctx, "page_size"),
	}
	if raw := ctx.Query("customer_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid customer_id"))
			return
		}
		filter.CustomerID = id
	}

	resp, err := c.expenseSvc.ListExpenses(ctx.Request.Context(), middleware.GetUserID(ctx), filter)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("OK", resp))
}

// DeleteExpense 删除支出流水
// @Summary 删除支出流水
// @Tags Expense (支出流水)
// @Produce json
// @Security BearerAuth
// @Param id path int true "支出ID"
// @Success 200 {object} dto.ApiResponse "删除成功"
// @Failure 404 {object} dto.ApiResponse "记录不存在"
// @Router /api/expenses/{id} [delete]
func (c *ExpenseController) DeleteExpense(ctx *gin.Context) {
	id, ok := parseInt64Param(ctx, "id")
	if !ok {
		return
	}

	if err := c.expenseSvc.DeleteExpense(ctx.Request.Context(), middleware.GetUserID(ctx), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("Expense deleted", nil))
}
