package controller

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"pos_backoffice_v1/internal/api/dto"
	"pos_backoffice_v1/internal/service"
)

// 单文件上限 5MB
const maxUploadSize = 5 << 20

type UploadController struct {
	storageSvc *service.StorageService
}

func NewUploadController(storageSvc *service.StorageService) *UploadController {
	return &UploadController{
		storageSvc: storageSvc,
	}
}

// UploadImage 上传图片
// @Summary 上传图片
// @Description 商品图/头像统一入口，返回公开访问 URL
// @Tags Upload (文件上传)
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "图片文件"
// @Success 200 {object} dto.ApiResponse{data=map[string]string} "上传成功"
// @Failure 400 {object} dto.ApiResponse "文件缺失或类型不支持"
// @Router /api/uploads/image [post]
func (c *UploadController) UploadImage(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Missing file"))
		return
	}
	if fileHeader.Size > maxUploadSize {
		ctx.JSON(http.StatusBadRequest, dto.Fail("File too large"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.Fail("Internal server error"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.Fail("Internal server error"))
		return
	}

	url, err := c.storageSvc.UploadImage(ctx.Request.Context(), data, fileHeader.Filename)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("Upload successful", gin.H{"url": url}))
}
