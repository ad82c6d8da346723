package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pos_backoffice_v1/internal/api/dto"
	"pos_backoffice_v1/internal/service"
	"pos_backoffice_v1/internal/token"
)

// ==================== 公共辅助 ====================

// parseUUIDParam 解析路径里的 UUID 参数
func parseUUIDParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid "+name))
		return uuid.Nil, false
	}
	return id, true
}

// respondError 业务错误到 HTTP 状态码的统一映射
// 没认出来的一律 500，不把内部细节吐给客户端
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, token.ErrInvalidToken):
		ctx.JSON(http.StatusUnauthorized, dto.Fail(err.Error()))

	case errors.Is(err, service.ErrEmailExists):
		ctx.JSON(http.StatusBadRequest, dto.Fail(err.Error()))

	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrStoreNotFound),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrCustomerNotFound),
		errors.Is(err, service.ErrSaleNotFound),
		errors.Is(err, service.ErrExpenseNotFound):
		ctx.JSON(http.StatusNotFound, dto.Fail(err.Error()))

	case errors.Is(err, service.ErrUserHasChildren),
		errors.Is(err, service.ErrStoreHasChildren),
		errors.Is(err, service.ErrCategoryHasProducts),
		errors.Is(err, service.ErrProductHasChildren),
		errors.Is(err, service.ErrCustomerHasChildren):
		ctx.JSON(http.StatusConflict, dto.Fail(err.Error()))

	case errors.Is(err, service.ErrUnsupportedImageType):
		ctx.JSON(http.StatusBadRequest, dto.Fail(err.Error()))

	default:
		ctx.JSON(http.StatusInternalServerError, dto.Fail("Internal server error"))
	}
}
