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

type CustomerController struct {
	customerSvc *service.CustomerService
}

func NewCustomerController(customerSvc *service.CustomerService) *CustomerController {
	return &CustomerController{
		customerSvc: customerSvc,
	}
}

// CreateCustomer 创建客户
// @Summary 创建客户
// @Description 客户挂在当前用户的某个门店下
// @Tags Customer (客户管理)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCustomerRequest true "客户参数"
// @Success 201 {object} dto.ApiResponse{data=dto.CustomerInfo} "创建成功"
// @Failure 400 {object} dto.ApiResponse "参数错误"
// @Failure 404 {object} dto.ApiResponse "门店不存在"
// @Router /api/customers [post]
func (c *CustomerController) CreateCustomer(ctx *gin.Context) {
	var req dto.CreateCustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithErrors("Validation failed", err.Error()))
		return
	}

	resp, err := c.customerSvc.CreateCustomer(ctx.Request.Context(), middleware.GetUserID(ctx), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.OK("Customer created", resp))
}

// GetCustomer 客户详情
// @Summary 客户详情
// @Tags Customer (客户管理)
// @Produce json
// @Security BearerAuth
// @Param id path string true "客户ID"
// @Success 200 {object} dto.ApiResponse{data=dto.CustomerInfo} "客户详情"
// @Failure 404 {object} dto.ApiResponse "客户不存在"
// @Router /api/customers/{id} [get]
func (c *CustomerController) GetCustomer(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.customerSvc.GetCustomer(ctx.Request.Context(), middleware.GetUserID(ctx), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("OK", resp))
}

// ListCustomers 客户列表
// @Summary 客户列表
// @Tags Customer (客户管理)
// @Produce json
// @Security BearerAuth
// @Param store_id query string false "门店ID"
// @Param keyword query string false "名称关键词"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} dto.ApiResponse{data=dto.ListResponse} "客户列表"
// @Router /api/customers [get]
func (c *CustomerController) ListCustomers(ctx *gin.Context) {
	filter := repository.CustomerFilter{
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

	resp, err := c.customerSvc.ListCustomers(ctx.Request.Context(), middleware.GetUserID(ctx), filter)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("OK", resp))
}

// UpdateCustomer 更新客户
// @Summary 更新客户
// @Tags Customer (客户管理)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "客户ID"
// @Param request body dto.UpdateCustomerRequest true "更新参数"
// @Success 200 {object} dto.ApiResponse{data=dto.CustomerInfo} "更新成功"
// @Failure 404 {object} dto.ApiResponse "客户不存在"
// @Router /api/customers/{id} [put]
func (c *CustomerController) UpdateCustomer(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithErrors("Validation failed", err.Error()))
		return
	}

	resp, err := c.customerSvc.UpdateCustomer(ctx.Request.Context(), middleware.GetUserID(ctx), id, &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("Customer updated", resp))
}

// DeleteCustomer 删除客户
// @Summary 删除客户
// @Description 客户还有销售/支出流水时拒绝删除
// @Tags Customer (客户管理)
// @Produce json
// @Security BearerAuth
// @Param id path string true "客户ID"
// @Success 200 {object} dto.ApiResponse "删除成功"
// @Failure 404 {object} dto.ApiResponse "客户不存在"
// @Failure 409 {object} dto.ApiResponse "仍有流水引用"
// @Router /api/customers/{id} [delete]
func (c *CustomerController) DeleteCustomer(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.customerSvc.DeleteCustomer(ctx.Request.Context(), middleware.GetUserID(ctx), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("Customer deleted", nil))
}
